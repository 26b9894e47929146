package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/jwt"
	"github.com/petrkoval/notes-api/internal/models"
)

func TestCreateNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: 5, Roles: []string{models.RoleUser}}

	t.Run("created with location header", func(t *testing.T) {
		mockSvc := NewMockNoteCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), &models.CreateNoteDTO{Title: "groceries", Content: "milk"}, int64(5)).
			Return(int64(20), nil)

		body, _ := json.Marshal(models.CreateNoteDTO{Title: "groceries", Content: "milk"})
		req := withClaims(httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader(body)), claims)
		w := httptest.NewRecorder()

		NewCreateNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/notes/20", w.Header().Get("Location"))
	})

	t.Run("missing claims", func(t *testing.T) {
		mockSvc := NewMockNoteCreator(ctrl)

		body, _ := json.Marshal(models.CreateNoteDTO{Title: "groceries"})
		req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader(body))
		w := httptest.NewRecorder()

		NewCreateNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, errs.MsgUnauthorized, decodeErrorBody(t, w).Message)
	})

	t.Run("title too long", func(t *testing.T) {
		mockSvc := NewMockNoteCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), gomock.Any(), int64(5)).
			Return(int64(0), errs.TitleTooLong())

		body, _ := json.Marshal(models.CreateNoteDTO{Title: "way too long"})
		req := withClaims(httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader(body)), claims)
		w := httptest.NewRecorder()

		NewCreateNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.MsgTitleTooLong, decodeErrorBody(t, w).Message)
	})

	t.Run("invalid body", func(t *testing.T) {
		mockSvc := NewMockNoteCreator(ctrl)

		req := withClaims(httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader([]byte("not json"))), claims)
		w := httptest.NewRecorder()

		NewCreateNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.MsgInvalidBody, decodeErrorBody(t, w).Message)
	})
}

func TestGetNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: 5, Roles: []string{models.RoleUser}}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockNoteGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(20), int64(5)).
			Return(&models.PublicNote{ID: 20, Title: "groceries", Content: "milk"}, nil)

		req := withClaims(withURLParam(httptest.NewRequest(http.MethodGet, "/api/notes/20", nil), "id", "20"), claims)
		w := httptest.NewRecorder()

		NewGetNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var note models.PublicNote
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
		assert.Equal(t, "groceries", note.Title)
	})

	t.Run("foreign or missing note", func(t *testing.T) {
		mockSvc := NewMockNoteGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(20), int64(5)).
			Return(nil, errs.NoteNotFound())

		req := withClaims(withURLParam(httptest.NewRequest(http.MethodGet, "/api/notes/20", nil), "id", "20"), claims)
		w := httptest.NewRecorder()

		NewGetNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, errs.MsgNoteNotFound, decodeErrorBody(t, w).Message)
	})

	t.Run("malformed id reaches the service as zero", func(t *testing.T) {
		mockSvc := NewMockNoteGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(0), int64(5)).
			Return(nil, errs.InvalidID())

		req := withClaims(withURLParam(httptest.NewRequest(http.MethodGet, "/api/notes/abc", nil), "id", "abc"), claims)
		w := httptest.NewRecorder()

		NewGetNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.MsgInvalidID, decodeErrorBody(t, w).Message)
	})
}

func TestPutNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: 5, Roles: []string{models.RoleUser}}

	t.Run("stores at the given id", func(t *testing.T) {
		mockSvc := NewMockNotePutter(ctrl)
		mockSvc.EXPECT().
			Put(gomock.Any(), int64(20), &models.CreateNoteDTO{Title: "title", Content: "body"}, int64(5)).
			Return(nil)

		body, _ := json.Marshal(models.CreateNoteDTO{Title: "title", Content: "body"})
		req := withClaims(withURLParam(httptest.NewRequest(http.MethodPut, "/api/notes/20", bytes.NewReader(body)), "id", "20"), claims)
		w := httptest.NewRecorder()

		NewPutNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("id held by someone else", func(t *testing.T) {
		mockSvc := NewMockNotePutter(ctrl)
		mockSvc.EXPECT().
			Put(gomock.Any(), int64(20), gomock.Any(), int64(5)).
			Return(errs.NoteNotFound())

		body, _ := json.Marshal(models.CreateNoteDTO{Title: "title"})
		req := withClaims(withURLParam(httptest.NewRequest(http.MethodPut, "/api/notes/20", bytes.NewReader(body)), "id", "20"), claims)
		w := httptest.NewRecorder()

		NewPutNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: 5, Roles: []string{models.RoleUser}}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockNoteDeleter(ctrl)
		mockSvc.EXPECT().DeleteByID(gomock.Any(), int64(20), int64(5)).Return(nil)

		req := withClaims(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/notes/20", nil), "id", "20"), claims)
		w := httptest.NewRecorder()

		NewDeleteNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockNoteDeleter(ctrl)
		mockSvc.EXPECT().DeleteByID(gomock.Any(), int64(20), int64(5)).Return(errs.NoteNotFound())

		req := withClaims(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/notes/20", nil), "id", "20"), claims)
		w := httptest.NewRecorder()

		NewDeleteNoteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListNotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: 5, Roles: []string{models.RoleUser}}

	t.Run("passes the parsed page request", func(t *testing.T) {
		mockSvc := NewMockNoteLister(ctrl)
		mockSvc.EXPECT().
			GetPage(gomock.Any(), &models.PageRequest{Page: 1, Size: 5, Sort: "title", Dir: "desc"}, int64(5)).
			Return([]models.PublicNote{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}}, nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/api/notes?page=1&size=5&sort=title&dir=desc", nil), claims)
		w := httptest.NewRecorder()

		NewListNotesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var notes []models.PublicNote
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
		assert.Len(t, notes, 2)
	})

	t.Run("defaults when query is empty", func(t *testing.T) {
		mockSvc := NewMockNoteLister(ctrl)
		mockSvc.EXPECT().
			GetPage(gomock.Any(), &models.PageRequest{Page: 0, Size: 10}, int64(5)).
			Return([]models.PublicNote{}, nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/api/notes", nil), claims)
		w := httptest.NewRecorder()

		NewListNotesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("missing claims", func(t *testing.T) {
		mockSvc := NewMockNoteLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		w := httptest.NewRecorder()

		NewListNotesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDeleteAllNotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockNoteBulkDeleter(ctrl)
		mockSvc.EXPECT().DeleteAll(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/notes", nil)
		w := httptest.NewRecorder()

		NewDeleteAllNotesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc := NewMockNoteBulkDeleter(ctrl)
		mockSvc.EXPECT().DeleteAll(gomock.Any()).Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/notes", nil)
		w := httptest.NewRecorder()

		NewDeleteAllNotesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, errs.MsgGenericError, decodeErrorBody(t, w).Message)
	})
}
