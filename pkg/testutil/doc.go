// Package testutil provides fixtures and helpers shared by symdex tests.
//
// Key components:
//   - SampleIndexYAML / SampleProvider: a small standard-library index
//   - CountingProvider: wraps a provider and records every call
//   - NewEntry: builds an entry inline with computed fields
//   - CreateFile / CreateDir: filesystem setup under t.TempDir()
//
// Test data is defined inline; no test reads fixtures from external files.
package testutil
