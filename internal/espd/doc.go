// Package espd defines the typed criterion records produced by the
// import engine: one record variant per criterion family, each with a
// fixed set of optional fields, plus the DynamicGroup used to capture
// occurrences of unbounded requirement groups.
//
// Field assignment is configuration-driven: definitions name target
// fields as strings, and each variant carries a compile-time setter
// table mapping those names to typed setters. There is no reflection;
// an unmapped name is reported as UnknownFieldError and the write is
// skipped by the caller.
package espd
