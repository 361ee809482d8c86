// Package config loads bfc settings from CUE files and the environment.
//
// Precedence, lowest first: schema defaults, the user's .cue file,
// BFC_* environment variables, command-line flags (applied by the CLI).
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/xyproto/env/v2"
)

//go:embed schema.cue
var schemaCUE string

// Environment variables consulted by FromEnv.
const (
	EnvBackend    = "BFC_BACKEND"
	EnvCC         = "BFC_CC"
	EnvHistory    = "BFC_HISTORY"
	EnvMaxSteps   = "BFC_MAX_STEPS"
	EnvMaxNesting = "BFC_MAX_NESTING"
)

// Config holds every tunable of the toolchain.
type Config struct {
	Optimize   bool   `json:"optimize"`
	Backend    string `json:"backend"`
	MaxNesting int    `json:"max_nesting"`
	MaxSteps   int64  `json:"max_steps"`
	CC         string `json:"cc"`
	History    string `json:"history"`
}

var (
	schemaOnce sync.Once
	cueCtx     *cue.Context
	schemaDef  cue.Value
	schemaErr  error
)

func schema() (*cue.Context, cue.Value, error) {
	schemaOnce.Do(func() {
		cueCtx = cuecontext.New()
		v := cueCtx.CompileString(schemaCUE, cue.Filename("schema.cue"))
		if err := v.Err(); err != nil {
			schemaErr = fmt.Errorf("compile config schema: %w", err)
			return
		}
		schemaDef = v.LookupPath(cue.ParsePath("#Config"))
		if !schemaDef.Exists() {
			schemaErr = fmt.Errorf("config schema has no #Config")
		}
	})
	return cueCtx, schemaDef, schemaErr
}

// Default returns the schema defaults.
func Default() Config {
	cfg, err := decode(nil, "")
	if err != nil {
		panic(fmt.Sprintf("config: embedded schema: %v", err))
	}
	return cfg
}

// Load reads the CUE file at path and returns it unified with the schema.
// An empty path yields Default(). Unknown fields are rejected.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return decode(data, path)
}

func decode(data []byte, filename string) (Config, error) {
	ctx, def, err := schema()
	if err != nil {
		return Config{}, err
	}

	v := def
	if data != nil {
		user := ctx.CompileBytes(data, cue.Filename(filename))
		if err := user.Err(); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", filename, err)
		}
		v = def.Unify(user)
	}
	if err := v.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", filename, err)
	}
	return cfg, nil
}

// FromEnv returns c with BFC_* environment overrides applied.
// Unset, empty or unparsable variables leave the field unchanged.
func (c Config) FromEnv() Config {
	c.Backend = env.Str(EnvBackend, c.Backend)
	c.CC = env.Str(EnvCC, c.CC)
	c.History = env.Str(EnvHistory, c.History)
	c.MaxSteps = int64(env.Int(EnvMaxSteps, int(c.MaxSteps)))
	c.MaxNesting = env.Int(EnvMaxNesting, c.MaxNesting)
	return c
}

// Validate checks c against the schema, for values that did not come
// through Load (environment and flags).
func (c Config) Validate() error {
	ctx, def, err := schema()
	if err != nil {
		return err
	}
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Resolve loads path, applies the environment, and validates the result.
func Resolve(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
