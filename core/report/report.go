package report

import (
	"time"

	"go.uber.org/zap"
)

// Severity classifies a check result.
type Severity string

const (
	// SeverityInfo is an expected state.
	SeverityInfo Severity = "info"
	// SeverityWarn is suspicious but does not block anything.
	SeverityWarn Severity = "warn"
	// SeverityError is a failed check.
	SeverityError Severity = "error"
)

// Result is the outcome of one verification step.
type Result struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report collects the results of one diagnostic run.
type Report struct {
	Name       string    `json:"name"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Results    []Result  `json:"results"`
	Error      string    `json:"error,omitempty"`
}

// Count returns the number of results with the given severity.
func (r *Report) Count(severity Severity) int {
	n := 0
	for _, res := range r.Results {
		if res.Severity == severity {
			n++
		}
	}
	return n
}

// Labels returns the labels of results with the given severity, in order.
func (r *Report) Labels(severity Severity) []string {
	var labels []string
	for _, res := range r.Results {
		if res.Severity == severity {
			labels = append(labels, res.Label)
		}
	}
	return labels
}

// Has reports whether a result with label and severity was recorded.
func (r *Report) Has(label string, severity Severity) bool {
	for _, res := range r.Results {
		if res.Label == label && res.Severity == severity {
			return true
		}
	}
	return false
}

// Passed reports whether the run finished without a fatal error.
func (r *Report) Passed() bool {
	return r.Error == ""
}

// Recorder logs each result as it is produced and keeps it in a Report.
type Recorder struct {
	logger *zap.Logger
	report *Report
}

// NewRecorder starts a report called name.
func NewRecorder(name string, logger *zap.Logger) *Recorder {
	return &Recorder{
		logger: logger,
		report: &Report{Name: name, StartedAt: time.Now(), Results: []Result{}},
	}
}

// Info records an expected state.
func (r *Recorder) Info(label, message string, fields ...zap.Field) {
	r.add(SeverityInfo, label, message)
	r.logger.Info(message, append(fields, zap.String("check", label))...)
}

// Warn records a suspicious but non-blocking state.
func (r *Recorder) Warn(label, message string, fields ...zap.Field) {
	r.add(SeverityWarn, label, message)
	r.logger.Warn(message, append(fields, zap.String("check", label))...)
}

// Error records a failed check.
func (r *Recorder) Error(label, message string, fields ...zap.Field) {
	r.add(SeverityError, label, message)
	r.logger.Error(message, append(fields, zap.String("check", label))...)
}

// Fail marks the run as aborted by err.
func (r *Recorder) Fail(err error) {
	if err != nil {
		r.report.Error = err.Error()
	}
}

// Finish stamps the report and returns it.
func (r *Recorder) Finish() *Report {
	r.report.FinishedAt = time.Now()
	return r.report
}

func (r *Recorder) add(severity Severity, label, message string) {
	r.report.Results = append(r.report.Results, Result{
		Label:    label,
		Severity: severity,
		Message:  message,
	})
}
