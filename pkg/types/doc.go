// Package types defines the core data model shared by symdex's packages:
// index entries and their kinds, source locations, open scopes, and the
// Lazy cell used to memoize derived entry fields.
package types
