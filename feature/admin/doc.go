// Package admin implements the admin panel diagnostic.
//
// It is a pure reporting tool: nothing it finds is fatal and it never returns an error.
//
// # Checks
//
//   - Environment: logs the six backend flags as they are set.
//   - Disabled: DISABLE_MEDUSA_ADMIN=true is recorded as an error and ends the run
//     before any query is made.
//   - Users: lists users, warns when there are none, errors when none is an admin.
//   - Store: logs the id and name of the store, errors when it cannot be read.
//   - Storage: checks the file storage bucket when an endpoint is configured.
//
// # HTTP Endpoints
//
//   - GET /diagnostics/admin : runs the diagnostic and returns the report.
package admin
