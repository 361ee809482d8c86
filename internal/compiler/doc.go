// Package compiler builds the initial IR from tape-machine source text.
//
// Build is a single scan with bracket matching. It performs no
// optimization; see package opt for the rewrite pipeline.
package compiler
