package ucsm

import "fmt"

// ConnectionError indicates that a session could not be established with a
// UCS Manager endpoint: unreachable host, TLS failure, or rejected
// credentials. It is fatal for the target; callers do not retry.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError indicates that a class query failed after a session was
// established. The in-progress report must be abandoned: a partial snapshot
// would mix controller states.
type QueryError struct {
	Endpoint string
	Kind     string
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s on %s failed: %v", e.Kind, e.Endpoint, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// apiError is a fault returned by the controller itself, carried in the
// errorCode/errorDescr attributes of a response element.
type apiError struct {
	Code  string
	Descr string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("ucs api error %s: %s", e.Code, e.Descr)
}
