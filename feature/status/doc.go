// Package status implements the server status probe.
//
// The probe issues GET /health against the backend and, once that request has
// completed, GET /app (the admin UI root). Requests run one at a time, each bounded
// by a timeout that cancels the in-flight request.
//
// # Classification
//
//   - /health 200: info. Any other status: warning.
//   - /app 200 or 302: info. Any other status: warning.
//   - Connection refused, other network errors, timeouts: error, and Run returns it.
//
// The CLI turns a returned error into exit code 1. A warning on /app still exits 0;
// only the health endpoint is a hard gate.
//
// # HTTP Endpoints
//
//   - GET /diagnostics/status : runs the probe (503 when it fails).
package status
