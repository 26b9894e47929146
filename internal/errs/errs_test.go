package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantMsg    string
		wantStatus int
	}{
		{"InvalidID", InvalidID(), MsgInvalidID, http.StatusBadRequest},
		{"UserNotFound", UserNotFound(), MsgUserNotFound, http.StatusNotFound},
		{"NoteNotFound", NoteNotFound(), MsgNoteNotFound, http.StatusNotFound},
		{"UserDTONull", UserDTONull(), MsgUserDTONull, http.StatusBadRequest},
		{"NoteDTONull", NoteDTONull(), MsgNoteDTONull, http.StatusBadRequest},
		{"PasswordTooShort", PasswordTooShort(), MsgPasswordTooShort, http.StatusBadRequest},
		{"TitleTooLong", TitleTooLong(), MsgTitleTooLong, http.StatusBadRequest},
		{"InvalidCredentials", InvalidCredentials(), MsgInvalidCredentials, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.Equal(t, tt.wantStatus, tt.err.Status)
		})
	}
}

func TestDomainError_As(t *testing.T) {
	// Wrapped domain errors must remain recognizable by errors.As
	wrapped := errors.Join(errors.New("outer"), UserNotFound())

	var de *Error
	assert.True(t, errors.As(wrapped, &de))
	assert.Equal(t, MsgUserNotFound, de.Message)
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID(1))
	assert.NoError(t, ValidateID(9223372036854775807))

	for _, id := range []int64{0, -1, -9999} {
		err := ValidateID(id)
		assert.Error(t, err)

		var de *Error
		assert.True(t, errors.As(err, &de))
		assert.Equal(t, MsgInvalidID, de.Message)
		assert.Equal(t, http.StatusBadRequest, de.Status)
	}
}
