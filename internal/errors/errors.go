// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// Kind separates a store that cannot be reached from one that rejected a query.
type Kind int

const (
	KindConnectivity Kind = iota + 1
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// DataSourceError reports that advocate data could not be read from its source.
type DataSourceError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source unavailable (%s) during %s: %v", e.Kind, e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Helper constructors
func NewConnectivityError(op string, err error) error {
	return &DataSourceError{Kind: KindConnectivity, Op: op, Err: err}
}

func NewQueryError(op string, err error) error {
	return &DataSourceError{Kind: KindQuery, Op: op, Err: err}
}

// IsDataSourceUnavailable reports whether err, or anything it wraps, is a DataSourceError.
func IsDataSourceUnavailable(err error) bool {
	var dsErr *DataSourceError
	return errors.As(err, &dsErr)
}

// KindOf returns the kind of the wrapped DataSourceError, or 0.
func KindOf(err error) Kind {
	var dsErr *DataSourceError
	if errors.As(err, &dsErr) {
		return dsErr.Kind
	}
	return 0
}

// ErrInvalidMessage marks a queued advocate that can never be imported.
var ErrInvalidMessage = errors.New("invalid advocate message")
