// Package store archives imported criterion records in SQLite. One row
// per (document, criterion) pair, with the full typed record serialized
// as JSON. The store is an archive, not a query engine: retrieval is by
// document id, optionally narrowed to one criterion.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
