// Package domain defines the core business entities for Stacks.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchQuery: A validated search request with filters, sort and pagination
//   - SearchResult: A single hit from one of the four content indexes
//   - SearchResponse: A paginated, merged result page with totals
//   - RecentSearch: One entry of the bounded search history
//   - BookMetadata: Searchable metadata fields for an indexed book
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
