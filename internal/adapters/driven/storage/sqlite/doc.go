// Package sqlite implements the driven storage ports on an embedded
// SQLite database. The four content indexes are FTS5 virtual tables
// queried with MATCH and ranked by bm25(); auxiliary tables (history,
// settings) are plain tables created through embedded migrations.
//
// One Store owns the single shared connection handle. Schema-altering
// operations (rebuild) must not run concurrently with searches or
// indexing; the index service enforces that exclusion.
package sqlite
