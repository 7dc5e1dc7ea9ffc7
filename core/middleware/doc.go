// Package middleware contains HTTP middleware for the diagnostics API.
//
// # Components
//
//   - auth: API key validation in front of every diagnostics route.
//   - rayid: a RayID (uuid) per request, stored in Locals and echoed in the
//     X-Ray-ID response header so API-triggered runs can be found in the logs.
package middleware
