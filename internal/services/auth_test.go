package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/models"
	"github.com/petrkoval/notes-api/internal/services"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		loginPass string
		mockSetup func(r *services.MockCredentialsReader, j *services.MockTokenGenerator, a *services.MockAuditSink)
		wantToken string
		wantErr   string
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			mockSetup: func(r *services.MockCredentialsReader, j *services.MockTokenGenerator, a *services.MockAuditSink) {
				r.EXPECT().GetByUsername(gomock.Any(), "alice").
					Return(&models.UserDB{ID: 7, Username: "alice", PasswordHash: string(hashed)}, nil)
				r.EXPECT().GetRoles(gomock.Any(), int64(7)).
					Return([]string{models.RoleUser}, nil)
				j.EXPECT().Generate(gomock.Any(), int64(7), []string{models.RoleUser}).
					Return("token123", nil)
				a.EXPECT().RecordAuthSuccess(gomock.Any(), "alice")
			},
			wantToken: "token123",
		},
		{
			name:      "unknown username",
			username:  "ghost",
			loginPass: password,
			mockSetup: func(r *services.MockCredentialsReader, j *services.MockTokenGenerator, a *services.MockAuditSink) {
				r.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
				a.EXPECT().RecordAuthFailure(gomock.Any(), "ghost", "unknown username")
			},
			wantErr: errs.MsgInvalidCredentials,
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "wrongpass",
			mockSetup: func(r *services.MockCredentialsReader, j *services.MockTokenGenerator, a *services.MockAuditSink) {
				r.EXPECT().GetByUsername(gomock.Any(), "alice").
					Return(&models.UserDB{ID: 7, Username: "alice", PasswordHash: string(hashed)}, nil)
				a.EXPECT().RecordAuthFailure(gomock.Any(), "alice", "wrong password")
			},
			wantErr: errs.MsgInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			mockSetup: func(r *services.MockCredentialsReader, j *services.MockTokenGenerator, a *services.MockAuditSink) {
				r.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: "db error",
		},
		{
			name:      "token generation error",
			username:  "alice",
			loginPass: password,
			mockSetup: func(r *services.MockCredentialsReader, j *services.MockTokenGenerator, a *services.MockAuditSink) {
				r.EXPECT().GetByUsername(gomock.Any(), "alice").
					Return(&models.UserDB{ID: 7, Username: "alice", PasswordHash: string(hashed)}, nil)
				r.EXPECT().GetRoles(gomock.Any(), int64(7)).
					Return([]string{models.RoleUser}, nil)
				j.EXPECT().Generate(gomock.Any(), int64(7), []string{models.RoleUser}).
					Return("", errors.New("sign error"))
			},
			wantErr: "sign error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockCredentialsReader(ctrl)
			mockJWT := services.NewMockTokenGenerator(ctrl)
			mockAudit := services.NewMockAuditSink(ctrl)
			tt.mockSetup(mockReader, mockJWT, mockAudit)

			svc := services.NewAuthService(mockReader, mockJWT, mockAudit)

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Login_CredentialFailuresIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)

	mockReader := services.NewMockCredentialsReader(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	mockAudit := services.NewMockAuditSink(ctrl)
	svc := services.NewAuthService(mockReader, mockJWT, mockAudit)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	mockAudit.EXPECT().RecordAuthFailure(gomock.Any(), "ghost", gomock.Any())
	_, errUnknown := svc.Login(context.Background(), "ghost", "whatever")

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)}, nil)
	mockAudit.EXPECT().RecordAuthFailure(gomock.Any(), "alice", gomock.Any())
	_, errWrongPass := svc.Login(context.Background(), "alice", "wrongpass")

	assert.EqualError(t, errUnknown, errWrongPass.Error())
}
