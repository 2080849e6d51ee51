package query

import "fmt"

// QueryError is any failure of the remote query interface. Message is the
// provider's text and is shown to users as-is.
type QueryError struct {
	Table   string
	Message string
	Err     error
}

func (e *QueryError) Error() string {
	return e.Message
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func newQueryError(table string, err error) *QueryError {
	return &QueryError{Table: table, Message: err.Error(), Err: err}
}

func decodeError(table string, err error) *QueryError {
	return &QueryError{
		Table:   table,
		Message: fmt.Sprintf("could not process %s data: %v", table, err),
		Err:     err,
	}
}
