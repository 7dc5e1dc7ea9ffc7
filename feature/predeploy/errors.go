package predeploy

import "fmt"

// ErrorType classifies a predeploy Error.
type ErrorType string

// ErrorTypeInvalidData means the deployment is configured in a way that cannot work.
const ErrorTypeInvalidData ErrorType = "invalid_data"

// Error is a typed predeploy failure.
type Error struct {
	Type    ErrorType
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrAdminDisabled halts a deployment that expects the admin panel while it is switched off.
var ErrAdminDisabled = &Error{
	Type:    ErrorTypeInvalidData,
	Message: "admin panel is disabled but you're trying to access it",
}

// Gates whose failures halt the deployment.
const (
	GateUsers = "users"
	GateStore = "store"
)

// GateError wraps the failure of a fatal gate.
type GateError struct {
	Gate string
	Err  error
}

func (e *GateError) Error() string {
	return fmt.Sprintf("%s gate: %v", e.Gate, e.Err)
}

func (e *GateError) Unwrap() error {
	return e.Err
}
