package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 6

// bcryptMaxInput is the longest input bcrypt accepts.
const bcryptMaxInput = 72

// RegistrationError lists every reason the identity store rejected a registration.
type RegistrationError struct {
	Reasons []string
}

func (e *RegistrationError) Error() string {
	return strings.Join(e.Reasons, ", ")
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, email string, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new identity. It returns a *RegistrationError when the password
// policy is violated or the username or email is taken. No token is issued.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) error {
	log := logger.FromContext(ctx)

	reasons := passwordPolicyViolations(password)

	duplicates, err := svc.duplicateReasons(ctx, username, email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return err
	}
	reasons = append(reasons, duplicates...)

	if len(reasons) > 0 {
		log.Warnw("registration rejected", "username", username, "email", email, "reasons", reasons)
		return &RegistrationError{Reasons: reasons}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return err
	}

	err = svc.writer.Save(ctx, username, email, string(hashedPassword))
	if errors.Is(err, models.ErrConflict) {
		// registered concurrently between the check and the insert
		duplicates, checkErr := svc.duplicateReasons(ctx, username, email)
		if checkErr != nil || len(duplicates) == 0 {
			duplicates = []string{"Username or email is already taken."}
		}
		log.Warnw("registration rejected", "username", username, "email", email, "reasons", duplicates)
		return &RegistrationError{Reasons: duplicates}
	}
	if err != nil {
		log.Errorw("failed to save user", "err", err)
		return err
	}

	log.Infow("user registered", "username", username)
	return nil
}

func (svc *AuthService) duplicateReasons(ctx context.Context, username, email string) ([]string, error) {
	var reasons []string

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user != nil {
		reasons = append(reasons, fmt.Sprintf("Username '%s' is already taken.", username))
	}

	user, err = svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		reasons = append(reasons, fmt.Sprintf("Email '%s' is already taken.", email))
	}

	return reasons, nil
}

func passwordPolicyViolations(password string) []string {
	var reasons []string
	var hasDigit, hasLower, hasUpper, hasNonAlphanumeric bool

	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		default:
			// only ASCII letters and digits count as alphanumeric
			hasNonAlphanumeric = true
		}
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		reasons = append(reasons, fmt.Sprintf("Passwords must be at least %d characters.", minPasswordLength))
	}
	if !hasNonAlphanumeric {
		reasons = append(reasons, "Passwords must have at least one non alphanumeric character.")
	}
	if !hasDigit {
		reasons = append(reasons, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasLower {
		reasons = append(reasons, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !hasUpper {
		reasons = append(reasons, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	return reasons
}

// bcryptInput returns the bytes hashed for password. Passwords longer than bcrypt's limit
// are reduced to a base64 SHA-256 digest so every byte still affects the hash.
func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxInput {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// Login authenticates a user by email and returns a JWT token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), bcryptInput(password)); err != nil {
		log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
