// Package errors provides error handling for aienum.
//
// It re-exports github.com/cockroachdb/errors so callers get stack traces,
// wrapping and user hints from a single import, and it declares the sentinel
// errors shared by the CLI, the resolvers and the HTTP server.
//
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//	return errors.WithHint(errors.ErrNoEnum, "number each item, e.g. 1 red, 2 green, 3 blue")
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is           = crdb.Is
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapAll    = crdb.UnwrapAll
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Sentinel errors. Wrap them to add context; match with Is.
var (
	// ErrNoEnum means the description did not yield any usable entry.
	ErrNoEnum = New("no enum could be extracted from the description")

	// ErrMissingAPIKey means the selected provider needs a key that is not set.
	ErrMissingAPIKey = New("missing API key")

	// ErrInvalidRequest indicates malformed input (HTTP body, flags).
	ErrInvalidRequest = New("invalid request")

	// ErrUnknownFormat indicates an unsupported render format.
	ErrUnknownFormat = New("unknown output format")

	// ErrUnknownProvider indicates an unsupported AI provider name.
	ErrUnknownProvider = New("unknown provider")
)

// WrapInvalidRequest marks err as an invalid-request error with context.
func WrapInvalidRequest(err error, context string) error {
	return Wrap(Wrap(ErrInvalidRequest, err.Error()), context)
}

// UserMessage renders err followed by its hints, one per line.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if hint := FlattenHints(err); hint != "" {
		msg += "\nhint: " + hint
	}
	return msg
}
