package errs

import "net/http"

// Client-facing messages, centralized to avoid hardcoding strings across layers.
const (
	MsgInvalidID          = "Invalid id"
	MsgUserNotFound       = "User not found"
	MsgNoteNotFound       = "Note not found"
	MsgUserDTONull        = "User to update/create cannot be null"
	MsgNoteDTONull        = "Note to update/create cannot be null"
	MsgPasswordTooShort   = "Password must be at least 8 characters"
	MsgTitleTooLong       = "Title must be less than 255 characters"
	MsgUsernameTaken      = "Username already exists"
	MsgEmailTaken         = "Email already exists"
	MsgInvalidCredentials = "Invalid username or password"
	MsgInvalidBody        = "Invalid request body"
	MsgAccessDenied       = "Access denied"
	MsgUnauthorized       = "Unauthorized"
	MsgGenericError       = "An error occurred, please try again later or contact us for support"
)

// Unique constraint names as declared in the schema. The classifier matches
// violation messages against these to pick the client message.
const (
	UsernameUniqueConstraint = "username_unique"
	EmailUniqueConstraint    = "email_unique"
)

// TestingMarker tags errors raised on purpose by automated tests so the
// classifier logs them at debug level instead of error.
const TestingMarker = "synthetic failure"

// Error is a domain failure that already carries the message and HTTP status
// safe to send to the client. Services return these directly instead of
// letting callers inspect raw persistence errors.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// New builds a domain error with an explicit message and status.
func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

func InvalidID() *Error          { return New(MsgInvalidID, http.StatusBadRequest) }
func UserNotFound() *Error       { return New(MsgUserNotFound, http.StatusNotFound) }
func NoteNotFound() *Error       { return New(MsgNoteNotFound, http.StatusNotFound) }
func UserDTONull() *Error        { return New(MsgUserDTONull, http.StatusBadRequest) }
func NoteDTONull() *Error        { return New(MsgNoteDTONull, http.StatusBadRequest) }
func PasswordTooShort() *Error   { return New(MsgPasswordTooShort, http.StatusBadRequest) }
func TitleTooLong() *Error       { return New(MsgTitleTooLong, http.StatusBadRequest) }
func InvalidCredentials() *Error { return New(MsgInvalidCredentials, http.StatusUnauthorized) }

// ValidateID rejects ids that are zero, negative, or absent before any
// persistence access happens.
func ValidateID(id int64) error {
	if id <= 0 {
		return InvalidID()
	}
	return nil
}
