// Package id provides unique identifier generation utilities.
//
// This is the canonical source for ID generation across the postkit codebase.
// It provides several ID formats for different use cases:
//
//   - UUID: Standard UUID v4 (random) for general-purpose unique identifiers
//   - Short: 16-character hex IDs for user-facing contexts where brevity matters
//   - Resource: "req_"-prefixed base36 ids matching the export resource id style
//
// Export converters take a Source rather than calling Resource directly, so
// tests can substitute a deterministic Sequence and compare whole documents.
package id
