package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/petrkoval/notes-api/internal/logger"
)

// Family tells the classifier which entity a failed operation belongs to.
// Unique-constraint handling only applies to the user family.
type Family int

const (
	FamilyUser Family = iota
	FamilyNote
)

// ErrNilPageable signals that a paginated operation was called without a page
// request. Classified as 400.
var ErrNilPageable = errors.New("pageable is nil")

// UnknownSortPropertyError is produced when a page request names a sort field
// that does not exist on the entity.
type UnknownSortPropertyError struct {
	Property string
	Entity   string
}

func (e *UnknownSortPropertyError) Error() string {
	return fmt.Sprintf("No property '%s' found for type '%s'", e.Property, e.Entity)
}

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// unhandledRecorder, when set, receives every error that falls through to the
// default 500 path. Wired to the audit sink in main; nil in tests.
var unhandledRecorder func(error)

// SetUnhandledRecorder installs the hook invoked for unclassified errors.
func SetUnhandledRecorder(fn func(error)) { unhandledRecorder = fn }

// Classify maps an arbitrary failure from a service operation to the
// (message, status) pair that should reach the client. Rules apply in a fixed
// priority order and only the first match sets the message; a blank message at
// the end degrades to the generic one. Classify never panics: any failure
// while classifying collapses to (generic, 500).
func Classify(err error, family Family) (msg string, status int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorw("panic while classifying error", "panic", r, "error", err)
			msg, status = MsgGenericError, http.StatusInternalServerError
		}
	}()

	// 1. field/format validation failures
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && msg == "" {
		status = http.StatusBadRequest
		if len(ve) > 0 {
			msg = violationMessage(ve[0])
		}
	}

	// 2. pre-classified domain errors
	var de *Error
	if errors.As(err, &de) && msg == "" {
		status = de.Status
		msg = de.Message
	}

	// 3. missing pagination argument
	if errors.Is(err, ErrNilPageable) && msg == "" {
		status = http.StatusBadRequest
	}

	// 4. unknown property in a sort expression
	var spe *UnknownSortPropertyError
	if errors.As(err, &spe) && msg == "" {
		status = http.StatusBadRequest
		full := spe.Error()
		if i := strings.Index(full, "for type"); i >= 0 {
			msg = strings.TrimSpace(full[:i])
		}
	}

	// 5. unique constraint violations, user family only
	if family == FamilyUser && msg == "" {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			status = http.StatusConflict
			inUsername := containsFold(pgErr.ConstraintName+" "+pgErr.Message, UsernameUniqueConstraint)
			inEmail := containsFold(pgErr.ConstraintName+" "+pgErr.Message, EmailUniqueConstraint)
			switch {
			case inUsername:
				msg = MsgUsernameTaken
			case inEmail:
				msg = MsgEmailTaken
			}
		}
	}

	// 6. default: anything that set no status is unhandled
	if status == 0 {
		status = http.StatusInternalServerError
		logUnhandled(err)
	} else {
		logger.Log.Debugw("handled exception", "error", err)
	}
	if msg == "" {
		msg = MsgGenericError
	}
	return msg, status
}

// StatusLabel renders a status code the way the error body expects it,
// e.g. 409 -> "409 CONFLICT", 400 -> "400 BAD_REQUEST".
func StatusLabel(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return fmt.Sprintf("%d", status)
	}
	return fmt.Sprintf("%d %s", status, strings.ToUpper(strings.ReplaceAll(text, " ", "_")))
}

// violationMessage converts a single field violation into the product wording.
func violationMessage(fe validator.FieldError) string {
	switch fe.Field() + "." + fe.Tag() {
	case "Username.required":
		return "Username mustn't be blank"
	case "Username.max":
		return "Username must be less than 20 characters"
	case "Email.required":
		return "Email is required"
	case "Email.email":
		return "Email is invalid"
	case "Password.required":
		return "Password mustn't be blank"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// containsFold reports whether msg contains sub, ignoring case and
// surrounding whitespace.
func containsFold(msg, sub string) bool {
	if msg == "" || sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(strings.TrimSpace(msg)), strings.ToLower(strings.TrimSpace(sub)))
}

// logUnhandled logs the original failure with full detail for operators.
// Errors carrying the testing marker are expected noise from automated tests
// and go to debug instead.
func logUnhandled(err error) {
	if err != nil && containsFold(err.Error(), TestingMarker) {
		logger.Log.Debugw("unhandled exception raised for testing", "error", err)
		return
	}
	logger.Log.Errorw("unhandled exception", "error", err)
	if unhandledRecorder != nil && err != nil {
		unhandledRecorder(err)
	}
}
