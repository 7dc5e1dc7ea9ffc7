// Package schema checks that the database holds the tables the diagnostics read.
//
// The gorm tags of medusa.User and medusa.Store are the source of truth: every
// `column:` must exist, and columns declaring a `type:` must report a compatible
// type. Postgres, MySQL and SQLite are inspected through core/database.
//
// # HTTP Endpoints
//
//   - GET /diagnostics/schema : returns the per-table report.
package schema
