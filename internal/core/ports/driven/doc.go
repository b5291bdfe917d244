// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SearchIndex: Full-text lookups against the four content indexes (SQLite FTS5)
//   - IndexAdmin: Index lifecycle (create, rebuild, optimize) and row upserts
//   - HistoryStore: Search history persistence (full-snapshot writes)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TextExtractor: Plain-text extraction from local book files. Without it,
//     indexing from a source path is disabled; metadata-only updates still work.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
