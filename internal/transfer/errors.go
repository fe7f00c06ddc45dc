package transfer

import "errors"

// Kind classifies an engine failure so the API layer can pick an HTTP status
// without inspecting messages.
type Kind int

// Failure kinds
const (
	KindNotFound   Kind = iota + 1 // Entity absent
	KindForbidden                  // Ownership violation
	KindValidation                 // Malformed input
	KindConflict                   // Business-rule violation, carries a custom code
	KindInternal                   // Unexpected persistence failure
)

// Custom codes returned alongside conflict failures so clients can branch
// programmatically instead of string-matching messages.
const (
	CodeNoTeam              = 1500 // Buyer has no team
	CodeNotListed           = 1501 // Player is not on the market
	CodePriceMismatch       = 1502 // Offer does not match the asking price
	CodeSelfTrade           = 1503 // Team tried to buy its own player
	CodeInsufficientCapital = 1504 // Buyer cannot afford the asking price
)

// Error is the typed failure returned by every engine operation.
type Error struct {
	Kind    Kind   // Failure classification
	Code    int    // Custom code, zero unless the failure is a conflict
	Message string // Human-readable message
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// AsError unwraps err into an engine *Error if it is one
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func invalid(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func conflict(code int, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}
