package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/logger"
	"github.com/petrkoval/notes-api/internal/models"
)

// CredentialsReader looks up accounts during authentication.
type CredentialsReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetRoles(ctx context.Context, userID int64) ([]string, error)
}

// TokenGenerator defines an interface for generating JWT tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, roles []string) (string, error)
}

// AuditSink receives authentication outcomes.
type AuditSink interface {
	RecordAuthSuccess(ctx context.Context, username string)
	RecordAuthFailure(ctx context.Context, username, reason string)
}

// AuthService authenticates users and issues tokens.
type AuthService struct {
	reader CredentialsReader
	jwt    TokenGenerator
	audit  AuditSink
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader CredentialsReader, jwt TokenGenerator, audit AuditSink) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
		audit:  audit,
	}
}

// Login authenticates a user and returns a JWT carrying id and roles.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return "", err
	}
	if user == nil {
		svc.audit.RecordAuthFailure(ctx, username, "unknown username")
		return "", errs.InvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		svc.audit.RecordAuthFailure(ctx, username, "wrong password")
		return "", errs.InvalidCredentials()
	}

	roles, err := svc.reader.GetRoles(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to get user roles", "username", username, "err", err)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, roles)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	svc.audit.RecordAuthSuccess(ctx, username)
	return token, nil
}
