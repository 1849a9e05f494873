package analyzer

import "fmt"

// LaunchError is returned when the analyzer process could not be started.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch analyzer %q: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ProtocolError is returned when the analyzer ran but its output could not be
// used: it only wrote to stderr, its stdout was not a JSON array, or it timed out.
type ProtocolError struct {
	Reason string
	Stderr string
	Err    error
}

func (e *ProtocolError) Error() string {
	msg := "analyzer protocol: " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += " (stderr: " + e.Stderr + ")"
	}
	return msg
}

func (e *ProtocolError) Unwrap() error { return e.Err }
