// Package report records check results.
//
// Every diagnostic step yields a (label, severity, message) Result. The Recorder
// logs it through zap at the matching level the moment it is produced and appends
// it to a Report, which the CLI discards and the diagnostics API returns as JSON.
package report
