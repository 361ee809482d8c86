// Package store provides SQLite-backed run history for bfc.
//
// Every recorded run is one row in the runs table:
//   - seq: autoincrement logical order, the only ordering key
//   - id: UUIDv7 (or a test generator's IDs)
//   - program_hash: ir.Fingerprint of the program that ran
//   - backend, optimized, atoms: what ran
//   - input_bytes, output_bytes, steps, error_kind: how it went
//
// Queries order by seq ASC, id ASC COLLATE BINARY so listings are stable.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - user_version: incremental migrations on open
package store
