package ir

// Version constants for the IR and the toolchain.
const (
	// IRVersion is the IR shape version. Bump when an Atom variant changes.
	IRVersion = "1"

	// ToolVersion is the bfc toolchain version.
	ToolVersion = "0.1.0"
)
