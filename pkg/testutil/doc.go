// Package testutil provides fixtures for testing xf components.
//
// Key components:
//   - NewEntry: builds an entry.Entry without touching any filesystem
//   - MemTree: declares an in-memory afero tree from a list of paths
//   - DiskTree: materializes the same declaration under t.TempDir
//   - Shuffled: a seeded permutation for order-independence checks
//
// Usage guidelines:
//   - Prefer MemTree; use DiskTree only where real permissions or symlinks matter
//   - All test data should be defined inline, not in external files
package testutil
