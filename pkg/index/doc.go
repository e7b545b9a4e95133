// Package index provides the Index Provider symdex queries: a read-only
// source of entries supporting prefix completion and exact lookup.
//
// Indexes are built elsewhere from compiled module artifacts. This package
// only reads the resulting index files (YAML or TOML) into memory; every
// derived entry field (signature, doc, locations) stays unparsed until a
// caller asks for it.
package index
