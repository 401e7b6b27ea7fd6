// Package model defines the domain types for the devlaunch CLI.
//
// All entities in this package are small value objects passed between the
// CLI layer and the launcher/project/config packages. There is no
// persistent state: every value is computed fresh on each invocation.
package model

import (
	"fmt"
)

// ServiceTarget is the enumerated choice of which downstream dev server
// an invocation launches. Exactly one target is selected per run; once
// selected, the process either exits or is replaced by the target's
// start command.
type ServiceTarget string

const (
	// TargetBackend launches the backend dev server. Selecting it
	// requires the backend's virtualenv activation script to exist.
	TargetBackend ServiceTarget = "backend"

	// TargetFrontend launches the frontend dev server. No environment
	// activation is performed for this target.
	TargetFrontend ServiceTarget = "frontend"
)

// String returns the string representation of ServiceTarget.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI messages and verbose logging.
func (t ServiceTarget) String() string {
	return string(t)
}

// IsValid checks whether the ServiceTarget value is one of the
// predefined valid targets.
func (t ServiceTarget) IsValid() bool {
	switch t {
	case TargetBackend, TargetFrontend:
		return true
	default:
		return false
	}
}

// ParseServiceTarget converts a command-line argument to a ServiceTarget.
//
// Matching is on the exact literal value, not case-insensitive: the
// launcher's CLI contract accepts only the documented spellings.
// "server" is an accepted historical alias for the backend target,
// kept for compatibility with older wrapper scripts.
func ParseServiceTarget(s string) (ServiceTarget, error) {
	switch s {
	case "backend", "server":
		return TargetBackend, nil
	case "frontend":
		return TargetFrontend, nil
	default:
		return "", fmt.Errorf("unknown service %q (valid: backend, frontend)", s)
	}
}

// ServiceState represents the observed state of a dev server as reported
// by the status command. The state is derived from two cheap probes:
// the service directory's existence and a TCP dial to its dev port.
type ServiceState string

const (
	// StateRunning indicates something is accepting connections on the
	// service's dev port. devlaunch does not verify that the listener is
	// actually the dev server — any listener on the port counts.
	StateRunning ServiceState = "running"

	// StateStopped indicates the service directory exists but nothing
	// is listening on the service's dev port.
	StateStopped ServiceState = "stopped"

	// StateMissing indicates the service directory does not exist under
	// the project root, so the service cannot be launched at all.
	StateMissing ServiceState = "missing"
)

// String returns the string representation of ServiceState.
func (s ServiceState) String() string {
	return string(s)
}

// ServiceStatus is the per-service result row produced by the status
// command. It pairs a service's identity with its observed state.
type ServiceStatus struct {
	// Name is the service name ("backend" or "frontend").
	Name string `json:"name"`

	// Dir is the absolute path to the service directory.
	Dir string `json:"dir"`

	// Port is the TCP port the service's dev server is expected to
	// listen on (taken from configuration).
	Port int `json:"port"`

	// State is the observed lifecycle state.
	State ServiceState `json:"state"`
}

// ExitCode defines the CLI process exit codes.
//
// The launcher deliberately exposes a narrow code surface: 0 for success
// (including an explicit "exit" menu choice) and 1 for every failure
// class — usage errors, a missing activation artifact, launch failures,
// and cancelled menu input. Shell wrappers only need to test for
// non-zero, and the human-readable message on stderr carries the detail.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError is the exit code for all failures.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
