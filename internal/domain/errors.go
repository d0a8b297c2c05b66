package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameExists     = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotOwner           = errors.New("not the owner of this resource")
)

// ErrorKind tags an Error so the boundary can match on it exhaustively
// instead of sniffing for optional fields.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuthentication
	KindNotFound
)

// Error is the tagged error variant every handler failure is mapped to
// before rendering. Status and Message are the only things a client sees.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func ValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Status: 400, Message: message}
}

func AuthenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, Status: 401, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: 404, Message: message}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Status: 500, Message: "Something went wrong!", cause: cause}
}
