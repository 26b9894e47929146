package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/logger"
	"github.com/petrkoval/notes-api/internal/models"
)

// minPasswordLength is checked on the plaintext, before hashing.
const minPasswordLength = 8

// UserReader defines read operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetRoles(ctx context.Context, userID int64) ([]string, error)
	GetPage(ctx context.Context, page *models.PageRequest) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (int64, error)
	UpdateUsername(ctx context.Context, id int64, username string) (int64, error)
	UpdateEmail(ctx context.Context, id int64, email string) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// RoleWriter creates roles lazily and assigns them to users.
type RoleWriter interface {
	Ensure(ctx context.Context, name string) (int64, error)
	Assign(ctx context.Context, userID, roleID int64) error
}

// UserCache caches public user projections.
type UserCache interface {
	GetByID(ctx context.Context, id int64) (*models.PublicUser, error)
	SetByID(ctx context.Context, user *models.PublicUser) error
	Invalidate(ctx context.Context, id int64) error
}

// UserService validates business rules and orchestrates persistence calls
// for user accounts.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	roles    RoleWriter
	cache    UserCache
	validate *validator.Validate
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, roles RoleWriter, cache UserCache) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		roles:    roles,
		cache:    cache,
		validate: validator.New(),
	}
}

// Create registers a new account with the given default role and returns the
// new id. The password is hashed before it reaches the store; uniqueness
// races are decided by the database constraints.
func (svc *UserService) Create(ctx context.Context, dto *models.CreateUserDTO, defaultRole string) (int64, error) {
	if dto == nil {
		return 0, errs.UserDTONull()
	}
	if err := svc.validate.Struct(dto); err != nil {
		return 0, err
	}
	if len(dto.Password) < minPasswordLength {
		return 0, errs.PasswordTooShort()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, dto.Username, dto.Email, string(hashed))
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", dto.Username, "err", err)
		return 0, err
	}

	roleID, err := svc.roles.Ensure(ctx, defaultRole)
	if err != nil {
		logger.Log.Errorw("failed to ensure role", "role", defaultRole, "err", err)
		return 0, err
	}
	if err := svc.roles.Assign(ctx, id, roleID); err != nil {
		logger.Log.Errorw("failed to assign role", "userID", id, "role", defaultRole, "err", err)
		return 0, err
	}

	return id, nil
}

// GetByID returns the public projection of a user, served from cache when
// possible.
func (svc *UserService) GetByID(ctx context.Context, id int64) (*models.PublicUser, error) {
	if err := errs.ValidateID(id); err != nil {
		return nil, err
	}

	if cached, err := svc.cache.GetByID(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, errs.UserNotFound()
	}

	roles, err := svc.reader.GetRoles(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user roles", "userID", id, "err", err)
		return nil, err
	}

	public := &models.PublicUser{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Roles:     roles,
	}

	if err := svc.cache.SetByID(ctx, public); err != nil {
		logger.Log.Warnw("failed to cache user", "userID", id, "err", err)
	}

	return public, nil
}

// PatchUsernameByID replaces the username and refreshes updated_at.
func (svc *UserService) PatchUsernameByID(ctx context.Context, id int64, dto *models.PatchUsernameDTO) error {
	if err := errs.ValidateID(id); err != nil {
		return err
	}
	if dto == nil {
		return errs.UserDTONull()
	}
	if err := svc.validate.Struct(dto); err != nil {
		return err
	}

	return svc.applyPatch(ctx, id, func() (int64, error) {
		return svc.writer.UpdateUsername(ctx, id, dto.Username)
	})
}

// PatchEmailByID replaces the email and refreshes updated_at.
func (svc *UserService) PatchEmailByID(ctx context.Context, id int64, dto *models.PatchEmailDTO) error {
	if err := errs.ValidateID(id); err != nil {
		return err
	}
	if dto == nil {
		return errs.UserDTONull()
	}
	if err := svc.validate.Struct(dto); err != nil {
		return err
	}

	return svc.applyPatch(ctx, id, func() (int64, error) {
		return svc.writer.UpdateEmail(ctx, id, dto.Email)
	})
}

// PatchPasswordByID re-hashes the given plaintext and stores the new hash.
func (svc *UserService) PatchPasswordByID(ctx context.Context, id int64, dto *models.PatchPasswordDTO) error {
	if err := errs.ValidateID(id); err != nil {
		return err
	}
	if dto == nil {
		return errs.UserDTONull()
	}
	if err := svc.validate.Struct(dto); err != nil {
		return err
	}
	if len(dto.Password) < minPasswordLength {
		return errs.PasswordTooShort()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.applyPatch(ctx, id, func() (int64, error) {
		return svc.writer.UpdatePassword(ctx, id, string(hashed))
	})
}

// DeleteByID removes the user. The persistence boundary cascades the delete
// to the user's notes in the same unit of work.
func (svc *UserService) DeleteByID(ctx context.Context, id int64) error {
	if err := errs.ValidateID(id); err != nil {
		return err
	}

	rows, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "userID", id, "err", err)
		return err
	}
	if rows == 0 {
		return errs.UserNotFound()
	}

	if err := svc.cache.Invalidate(ctx, id); err != nil {
		logger.Log.Warnw("failed to invalidate cached user", "userID", id, "err", err)
	}
	return nil
}

// GetPage returns one page of users. Admin only; enforced at the routing
// layer.
func (svc *UserService) GetPage(ctx context.Context, page *models.PageRequest) ([]models.PublicUser, error) {
	if page == nil {
		return nil, errs.ErrNilPageable
	}

	users, err := svc.reader.GetPage(ctx, page)
	if err != nil {
		logger.Log.Errorw("failed to get user page", "err", err)
		return nil, err
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, models.PublicUser{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return public, nil
}

func (svc *UserService) applyPatch(ctx context.Context, id int64, update func() (int64, error)) error {
	rows, err := update()
	if err != nil {
		logger.Log.Errorw("failed to patch user", "userID", id, "err", err)
		return err
	}
	if rows == 0 {
		return errs.UserNotFound()
	}

	if err := svc.cache.Invalidate(ctx, id); err != nil {
		logger.Log.Warnw("failed to invalidate cached user", "userID", id, "err", err)
	}
	return nil
}
