package errs

import (
	"errors"
	"fmt"
)

// Kind buckets pipeline failures so callers can decide whether a stage
// aborts the run or degrades gracefully.
type Kind string

const (
	KindConfiguration  Kind = "configuration_error"
	KindDataCollection Kind = "data_collection_error"
	KindAnalysis       Kind = "analysis_error"
	KindStorage        Kind = "storage_error"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Configuration(msg string, err error) *Error {
	return New(KindConfiguration, msg, err)
}

func DataCollection(msg string, err error) *Error {
	return New(KindDataCollection, msg, err)
}

func Analysis(msg string, err error) *Error {
	return New(KindAnalysis, msg, err)
}

func Storage(msg string, err error) *Error {
	return New(KindStorage, msg, err)
}

// KindOf reports the taxonomy bucket of err, or empty when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
