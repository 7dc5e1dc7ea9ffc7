// Package medusa models the parts of the commerce backend the diagnostics look at.
//
// The backend normally hands its scripts a service container. Here the same
// capabilities are small interfaces (UserQuery, UserModule, StoreModule) bundled in
// Services and passed explicitly into every check. Repository implements all of them
// over the backend database with GORM; core/medusa/mocks provides testify mocks.
//
// Config carries the backend's environment flags (PORT, DISABLE_MEDUSA_ADMIN, ...)
// under the exact names the backend reads.
package medusa
