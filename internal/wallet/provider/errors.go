package provider

import (
	"fmt"
)

// Code classifies provider errors
type Code string

const (
	CodeUnknownProvider        Code = "UNKNOWN_PROVIDER"
	CodeInvalidPlugin          Code = "INVALID_PLUGIN"
	CodeDerivationFailure      Code = "DERIVATION_FAILURE"
	CodeAddressEncodingFailure Code = "ADDRESS_ENCODING_FAILURE"
	CodeInvalidRequest         Code = "INVALID_REQUEST"
)

// Sentinels for errors.Is
var (
	ErrUnknownProvider        = &Error{Code: CodeUnknownProvider}
	ErrInvalidPlugin          = &Error{Code: CodeInvalidPlugin}
	ErrDerivationFailure      = &Error{Code: CodeDerivationFailure}
	ErrAddressEncodingFailure = &Error{Code: CodeAddressEncodingFailure}
	ErrInvalidRequest         = &Error{Code: CodeInvalidRequest}
)

// Error is a classified error. Messages never include key material.
type Error struct {
	Code     Code
	Provider string
	Op       string
	Err      error
}

func (e *Error) Error() string {
	msg := "[" + string(e.Code) + "]"
	if e.Provider != "" {
		msg += " " + e.Provider
	}
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// UnknownProvider reports a provider id that is not registered
func UnknownProvider(id string) error {
	return &Error{Code: CodeUnknownProvider, Provider: id, Op: "not registered"}
}

// InvalidPlugin reports a plugin candidate rejected before registration
func InvalidPlugin(id string, reason string) error {
	return &Error{Code: CodeInvalidPlugin, Provider: id, Op: reason}
}

// DerivationFailure reports a key or address that could not be derived
func DerivationFailure(id string, op string, err error) error {
	return &Error{Code: CodeDerivationFailure, Provider: id, Op: op, Err: err}
}

// AddressEncodingFailure reports one address template failing after key derivation
func AddressEncodingFailure(id string, format string, err error) error {
	return &Error{Code: CodeAddressEncodingFailure, Provider: id, Op: fmt.Sprintf("encode %s address", format), Err: err}
}

// InvalidRequest reports structurally invalid input to the factory
func InvalidRequest(reason string) error {
	return &Error{Code: CodeInvalidRequest, Op: reason}
}
