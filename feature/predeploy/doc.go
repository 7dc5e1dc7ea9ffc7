// Package predeploy implements the predeploy validation.
//
// The validation is a linear sequence of gates:
//
//	disabled admin -> users (check or seed) -> admin role -> store -> build outputs -> file storage
//
// Three failures halt a deployment and are returned from Run:
//   - DISABLE_MEDUSA_ADMIN=true returns ErrAdminDisabled (an *Error of type invalid_data).
//   - A failure to query or create users returns a *GateError for GateUsers.
//   - A failure to read the store (including no store at all) returns a *GateError for GateStore.
//
// Everything else is logged and the next gate runs. When the registry has no users and
// MEDUSA_CREATE_ADMIN_USER=true, exactly one admin user is created using
// MEDUSA_ADMIN_EMAIL (or admin@medusa-test.com).
//
// # HTTP Endpoints
//
//   - POST /diagnostics/predeploy : runs the validation (412 when a gate fails).
package predeploy
