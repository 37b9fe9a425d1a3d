package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/agroassist/engine/internal/models"
	"github.com/agroassist/engine/internal/repository"
	"github.com/agroassist/engine/internal/token"
	appErr "github.com/agroassist/engine/pkg/errors"
	"github.com/agroassist/engine/pkg/logger"
	"github.com/agroassist/engine/pkg/utils"
)

// invalidCredentials is the single failure returned for both unknown email
// and wrong password, so responses cannot be used to enumerate accounts.
const invalidCredentials = "invalid credentials"

// dummyHash is compared against when the email is unknown so that lookup
// misses cost roughly the same as a real password check.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthService interface {
	// Signup creates a new account and returns its public view plus a
	// signed session token.
	Signup(ctx context.Context, name, email, password string) (models.PublicUser, string, error)
	// Login verifies credentials and returns the public view plus a
	// signed session token.
	Login(ctx context.Context, email, password string) (models.PublicUser, string, error)
}

type authService struct {
	users      repository.UserRepository
	issuer     token.Issuer
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, issuer token.Issuer, bcryptCost int) AuthService {
	return &authService{users: users, issuer: issuer, bcryptCost: bcryptCost}
}

// NormalizeEmail canonicalizes an email for storage and lookup. Uniqueness is
// case-insensitive on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (models.PublicUser, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return models.PublicUser{}, "", appErr.New(appErr.CodeInvalid, "email and password are required")
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return models.PublicUser{}, "", appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	user := models.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return models.PublicUser{}, "", err
		}
		return models.PublicUser{}, "", appErr.Wrap(err, appErr.CodeInternal, "create user failed")
	}

	signed, err := s.issuer.Issue(user.ID.String())
	if err != nil {
		return models.PublicUser{}, "", appErr.Wrap(err, appErr.CodeInternal, "issue token failed")
	}

	logger.L().Info("user signed up", zap.String("user_id", user.ID.String()))
	return user.Public(), signed, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (models.PublicUser, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return models.PublicUser{}, "", appErr.New(appErr.CodeInvalid, "email and password are required")
	}

	var user models.User
	if err := s.users.GetByEmail(ctx, email, &user); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			// Burn a compare so the miss is not observably faster.
			utils.CheckPassword(password, dummyHash)
			return models.PublicUser{}, "", appErr.New(appErr.CodeUnauthorized, invalidCredentials)
		}
		return models.PublicUser{}, "", appErr.Wrap(err, appErr.CodeInternal, "get user failed")
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return models.PublicUser{}, "", appErr.New(appErr.CodeUnauthorized, invalidCredentials)
	}

	signed, err := s.issuer.Issue(user.ID.String())
	if err != nil {
		return models.PublicUser{}, "", appErr.Wrap(err, appErr.CodeInternal, "issue token failed")
	}

	logger.L().Info("user logged in", zap.String("user_id", user.ID.String()))
	return user.Public(), signed, nil
}
