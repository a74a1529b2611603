package httperr

import "errors"

// Kind classifies a DomainError so transports can map it to a status code
// without string-matching on codes.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindInvalidTransition Kind = "invalid_transition"
	KindTransport         Kind = "transport"
)

type DomainError struct {
	Kind Kind
	Code string

	// Status carries the upstream HTTP status for transport errors. Zero
	// otherwise.
	Status int
}

func (e DomainError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return DomainError{Kind: KindValidation, Code: code}
}

func ErrNotFound(code string) error {
	return DomainError{Kind: KindNotFound, Code: code}
}

func ErrInvalidTransition(code string) error {
	return DomainError{Kind: KindInvalidTransition, Code: code}
}

func ErrTransport(code string, status int) error {
	return DomainError{Kind: KindTransport, Code: code, Status: status}
}

func IsKind(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
