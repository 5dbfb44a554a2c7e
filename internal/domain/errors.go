package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure by what the caller can do about it.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfiguration
	KindPrecondition
	KindValidation
	KindInsufficientFunds
	KindTransient
	KindRejection
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindPrecondition:
		return "precondition"
	case KindValidation:
		return "validation"
	case KindInsufficientFunds:
		return "insufficient funds"
	case KindTransient:
		return "transient backend"
	case KindRejection:
		return "rejection"
	default:
		return "unknown"
	}
}

// Error is the typed error surfaced by every core operation.
//
// A sentinel with an empty Message matches any Error of the same Kind (and the
// same Code, when the sentinel sets one) through errors.Is.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

var (
	ErrConfiguration     = &Error{Kind: KindConfiguration}
	ErrPrecondition      = &Error{Kind: KindPrecondition}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds}
	ErrTransient         = &Error{Kind: KindTransient}
	ErrRejection         = &Error{Kind: KindRejection}

	ErrUnsupportedChain = &Error{Kind: KindValidation, Code: CodeUnsupportedChain}
	ErrSessionClosed    = &Error{Kind: KindPrecondition, Code: CodeSessionClosed}
)

const (
	CodeUnsupportedChain  = "unsupported_chain"
	CodeSessionClosed     = "session_closed"
	CodeExpiredPlan       = "expired_plan"
	CodeSignatureMismatch = "signature_mismatch"
	CodeAlreadySubmitted  = "already_submitted"
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String() + " error"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" || t.Err != nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

func NewError(kind ErrorKind, code string, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first Error in err's chain.
func KindOf(err error) ErrorKind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return KindUnknown
}

// Retryable reports whether rebuilding and resubmitting may succeed.
func Retryable(err error) bool {
	return KindOf(err) == KindTransient
}

// CallerError reports whether the caller must change its input or setup first.
func CallerError(err error) bool {
	switch KindOf(err) {
	case KindConfiguration, KindPrecondition, KindValidation, KindInsufficientFunds, KindRejection:
		return true
	default:
		return false
	}
}

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrSecretNotFound  = errors.New("secret not found")
)
