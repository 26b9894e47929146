package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/logger"
	"github.com/petrkoval/notes-api/internal/models"
)

// NoteReader defines read operations for notes, always owner-scoped.
type NoteReader interface {
	GetByIDAndUser(ctx context.Context, id, userID int64) (*models.NoteDB, error)
	GetPageByUser(ctx context.Context, page *models.PageRequest, userID int64) ([]models.NoteDB, error)
}

// NoteWriter defines write operations for notes.
type NoteWriter interface {
	Save(ctx context.Context, userID int64, title, content string) (int64, error)
	Upsert(ctx context.Context, id, userID int64, title, content string) (int64, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// UserChecker verifies that a note's owner exists.
type UserChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// NoteService validates business rules and orchestrates persistence calls
// for notes.
type NoteService struct {
	reader NoteReader
	writer NoteWriter
	users  UserChecker
}

// NewNoteService creates a new NoteService instance.
func NewNoteService(reader NoteReader, writer NoteWriter, users UserChecker) *NoteService {
	return &NoteService{
		reader: reader,
		writer: writer,
		users:  users,
	}
}

// Create stores a new note for ownerID and returns the new note id.
func (svc *NoteService) Create(ctx context.Context, dto *models.CreateNoteDTO, ownerID int64) (int64, error) {
	if err := errs.ValidateID(ownerID); err != nil {
		return 0, err
	}
	title, content, err := normalizeNote(dto)
	if err != nil {
		return 0, err
	}
	if err := svc.ownerMustExist(ctx, ownerID); err != nil {
		return 0, err
	}

	id, err := svc.writer.Save(ctx, ownerID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to save note", "ownerID", ownerID, "err", err)
		return 0, err
	}
	return id, nil
}

// Get returns the public projection of the note identified by noteID, as
// long as ownerID owns it.
func (svc *NoteService) Get(ctx context.Context, noteID, ownerID int64) (*models.PublicNote, error) {
	if err := errs.ValidateID(noteID); err != nil {
		return nil, err
	}
	if err := errs.ValidateID(ownerID); err != nil {
		return nil, err
	}

	note, err := svc.reader.GetByIDAndUser(ctx, noteID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get note", "noteID", noteID, "ownerID", ownerID, "err", err)
		return nil, err
	}
	if note == nil {
		return nil, errs.NoteNotFound()
	}

	return &models.PublicNote{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		UpdatedAt: note.UpdatedAt,
	}, nil
}

// Put creates the note with the given id if absent, otherwise replaces its
// title, content and updated_at while preserving id and owner. The outward
// contract is the same either way.
func (svc *NoteService) Put(ctx context.Context, noteID int64, dto *models.CreateNoteDTO, ownerID int64) error {
	if err := errs.ValidateID(noteID); err != nil {
		return err
	}
	if err := errs.ValidateID(ownerID); err != nil {
		return err
	}
	title, content, err := normalizeNote(dto)
	if err != nil {
		return err
	}
	if err := svc.ownerMustExist(ctx, ownerID); err != nil {
		return err
	}

	rows, err := svc.writer.Upsert(ctx, noteID, ownerID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to put note", "noteID", noteID, "ownerID", ownerID, "err", err)
		return err
	}
	if rows == 0 {
		// id exists but belongs to a different owner
		return errs.NoteNotFound()
	}
	return nil
}

// DeleteByID removes the note if ownerID owns it.
func (svc *NoteService) DeleteByID(ctx context.Context, noteID, ownerID int64) error {
	if err := errs.ValidateID(noteID); err != nil {
		return err
	}
	if err := errs.ValidateID(ownerID); err != nil {
		return err
	}

	rows, err := svc.writer.Delete(ctx, noteID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete note", "noteID", noteID, "ownerID", ownerID, "err", err)
		return err
	}
	if rows == 0 {
		return errs.NoteNotFound()
	}
	return nil
}

// GetPage returns one page of the owner's notes.
func (svc *NoteService) GetPage(ctx context.Context, page *models.PageRequest, ownerID int64) ([]models.PublicNote, error) {
	if err := errs.ValidateID(ownerID); err != nil {
		return nil, err
	}
	if page == nil {
		return nil, errs.ErrNilPageable
	}
	if err := svc.ownerMustExist(ctx, ownerID); err != nil {
		return nil, err
	}

	notes, err := svc.reader.GetPageByUser(ctx, page, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get note page", "ownerID", ownerID, "err", err)
		return nil, err
	}

	public := make([]models.PublicNote, 0, len(notes))
	for _, n := range notes {
		public = append(public, models.PublicNote{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			UpdatedAt: n.UpdatedAt,
		})
	}
	return public, nil
}

// DeleteAll removes every note. Administrative.
func (svc *NoteService) DeleteAll(ctx context.Context) error {
	if _, err := svc.writer.DeleteAll(ctx); err != nil {
		logger.Log.Errorw("failed to delete all notes", "err", err)
		return err
	}
	return nil
}

func (svc *NoteService) ownerMustExist(ctx context.Context, ownerID int64) error {
	exists, err := svc.users.ExistsByID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to check note owner", "ownerID", ownerID, "err", err)
		return err
	}
	if !exists {
		return errs.UserNotFound()
	}
	return nil
}

// normalizeNote coerces blank or absent title/content to the empty string
// and enforces the hard title length cap.
func normalizeNote(dto *models.CreateNoteDTO) (title, content string, err error) {
	if dto == nil {
		return "", "", errs.NoteDTONull()
	}

	title = dto.Title
	if strings.TrimSpace(title) == "" {
		title = ""
	}
	content = dto.Content
	if strings.TrimSpace(content) == "" {
		content = ""
	}

	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return "", "", errs.TitleTooLong()
	}
	return title, content, nil
}
