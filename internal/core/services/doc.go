// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// SearchService runs the search pipeline: validation, concurrent fan-out
// over the content indexes, score normalization, merge, snippet
// extraction and pagination. IndexService manages index lifecycle and
// keeps rebuilds mutually exclusive with searches through the shared
// Availability gate.
package services
