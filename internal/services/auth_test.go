package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temmu/temmu-api/internal/models"
	"github.com/temmu/temmu-api/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	existing := &models.UserDB{UserID: uuid.New()}

	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		byUsername  *models.UserDB
		byEmail     *models.UserDB
		readerErr   error
		expectSave  bool
		writerErr   error
		recheckUser *models.UserDB
		wantReasons []string
		wantErr     error
	}{
		{
			name:       "successful registration",
			username:   "alice",
			email:      "alice@example.com",
			password:   "Passw0rd!",
			expectSave: true,
		},
		{
			name:       "non-ASCII letter counts as non alphanumeric",
			username:   "ines",
			email:      "ines@example.com",
			password:   "Abcdé1",
			expectSave: true,
		},
		{
			name:     "weak password",
			username: "bob",
			email:    "bob@example.com",
			password: "pass",
			wantReasons: []string{
				"Passwords must be at least 6 characters.",
				"Passwords must have at least one non alphanumeric character.",
				"Passwords must have at least one digit ('0'-'9').",
				"Passwords must have at least one uppercase ('A'-'Z').",
			},
		},
		{
			name:        "duplicate email",
			username:    "carol",
			email:       "carol@example.com",
			password:    "Passw0rd!",
			byEmail:     existing,
			wantReasons: []string{"Email 'carol@example.com' is already taken."},
		},
		{
			name:       "duplicate username and email with weak password",
			username:   "dan",
			email:      "dan@example.com",
			password:   "Password1",
			byUsername: existing,
			byEmail:    existing,
			wantReasons: []string{
				"Passwords must have at least one non alphanumeric character.",
				"Username 'dan' is already taken.",
				"Email 'dan@example.com' is already taken.",
			},
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "Passw0rd!",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:       "writer error",
			username:   "frank",
			email:      "frank@example.com",
			password:   "Passw0rd!",
			expectSave: true,
			writerErr:  errors.New("save error"),
			wantErr:    errors.New("save error"),
		},
		{
			name:        "registered concurrently",
			username:    "grace",
			email:       "grace@example.com",
			password:    "Passw0rd!",
			expectSave:  true,
			writerErr:   models.ErrConflict,
			recheckUser: existing,
			wantReasons: []string{"Username 'grace' is already taken."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			mockReader.EXPECT().GetByUsername(gomock.Any(), tt.username).Return(tt.byUsername, tt.readerErr)
			if tt.readerErr == nil {
				mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.byEmail, nil)
			}

			if tt.expectSave {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, hash string) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return tt.writerErr
					})
			}
			if errors.Is(tt.writerErr, models.ErrConflict) {
				mockReader.EXPECT().GetByUsername(gomock.Any(), tt.username).Return(tt.recheckUser, nil)
				mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(nil, nil)
			}
			mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			err := svc.Register(context.Background(), tt.username, tt.email, tt.password)

			switch {
			case tt.wantReasons != nil:
				var regErr *services.RegistrationError
				require.ErrorAs(t, err, &regErr)
				assert.Equal(t, tt.wantReasons, regErr.Reasons)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_PasswordLongerThanBcryptLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "Aa1!" + strings.Repeat("x", 80)
	// same first 72 bytes, different tail
	otherPassword := "Aa1!" + strings.Repeat("x", 79) + "y"

	var storedHash string
	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", "alice@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, hash string) error {
			storedHash = hash
			return nil
		})

	require.NoError(t, svc.Register(context.Background(), "alice", "alice@example.com", password))
	require.NotEmpty(t, storedHash)

	user := &models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: storedHash}
	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil).Times(2)
	mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, "alice").Return("token123", nil)

	token, err := svc.Login(context.Background(), "alice@example.com", password)
	require.NoError(t, err)
	assert.Equal(t, "token123", token)

	_, err = svc.Login(context.Background(), "alice@example.com", otherPassword)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestRegistrationError_Error(t *testing.T) {
	err := &services.RegistrationError{Reasons: []string{"first", "second"}}
	assert.Equal(t, "first, second", err.Error())
}

func TestAuthService_Login(t *testing.T) {
	password := "Secret1!"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.UserDB
		readerErr error
		expectJWT bool
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			expectJWT: true,
			wantToken: "token123",
		},
		{
			name:      "unknown email",
			email:     "missing@user.com",
			loginPass: "anything",
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "carol@example.com",
			loginPass: "wrongpass",
			user:      &models.UserDB{UserID: uuid.New(), Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "JWT generation error",
			email:     "dan@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Username: "dan", PasswordHash: string(hashed)},
			expectJWT: true,
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.user, tt.readerErr)
			if tt.expectJWT {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID, tt.user.Username).
					Return(tt.wantToken, tt.jwtErr)
			} else {
				mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Login_SameFailureForUnknownAndWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT)

	hashed, err := bcrypt.GenerateFromPassword([]byte("Secret1!"), bcrypt.MinCost)
	require.NoError(t, err)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "missing@user.com").Return(nil, nil)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").
		Return(&models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: string(hashed)}, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, unknownErr := svc.Login(context.Background(), "missing@user.com", "anything")
	_, wrongErr := svc.Login(context.Background(), "alice@example.com", "anything")

	assert.ErrorIs(t, unknownErr, services.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}
