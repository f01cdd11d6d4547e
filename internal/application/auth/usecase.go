// Package auth holds the authentication use case: login against a staff
// account and JWT issuance.
package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
	"github.com/emiratefm/airtime-billing/pkg/jwt"
)

// JWTConfig token-generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase authentication flows for staff accounts.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies the credentials and returns a signed token plus the user
// profile. Wrong username and wrong password are indistinguishable to the
// caller: both come back as ErrUnauthorized.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	// Best effort: a failed last-login write must not block the session.
	_ = uc.userRepo.UpdateLastLogin(user.ID, now)
	user.LastLogin = &now

	resp := &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			Active:   user.Active,
		},
	}
	if user.LastLogin != nil {
		resp.User.LastLogin = user.LastLogin.Format(time.RFC3339)
	}
	return resp, nil
}

// Me returns the profile for an authenticated user ID (the /auth/me
// endpoint behind the JWT middleware).
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Active:   user.Active,
	}
	if user.LastLogin != nil {
		out.LastLogin = user.LastLogin.Format(time.RFC3339)
	}
	return out, nil
}
