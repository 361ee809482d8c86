// Command bfc compiles, optimizes and runs tape machine programs.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/roach88/bfc/internal/cli"
)

func main() {
	// Program output is buffered; a failed final flush fails the process.
	out := bufio.NewWriter(os.Stdout)
	cmd := cli.NewRootCommand()
	cmd.SetOut(out)

	code := cli.Execute(cmd)
	if err := out.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: write stdout:", err)
		if code == cli.ExitSuccess {
			code = cli.ExitFailure
		}
	}
	atexit.Exit(code)
}
