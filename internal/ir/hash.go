package ir

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefix for program fingerprints.
// Version suffix enables future algorithm migration.
const DomainProgram = "bfc/program/v1"

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte (0x00) separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint computes a content-addressed identity for a program.
// Structurally equal programs always have the same fingerprint; the
// hashed form is the Format listing, so it is stable across runs.
func Fingerprint(p Program) string {
	return hashWithDomain(DomainProgram, []byte(Format(p)))
}
