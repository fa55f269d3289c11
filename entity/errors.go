package entity

import "fmt"

// ValidationError reports a malformed or inverted input, typically a bad
// date range.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// ConcurrencyError reports that a recalculation is already running. Callers
// must re-invoke later; the request is never queued.
type ConcurrencyError struct{}

func (e *ConcurrencyError) Error() string {
	return "a cash blotter recalculation is already in progress"
}

// DataSourceError reports a failed read from the transaction source or the
// blotter store.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source failure during %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// PersistenceError reports a failed blotter write or commit.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ConfigurationError reports invalid threshold or type-mapping configuration
// detected at startup.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}
