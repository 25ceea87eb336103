package services

import (
	"context"
	"crypto/subtle"

	"github.com/fixtureapp/fixture-backend/utils"
)

// AuthService checks the single admin identity configured at startup. The
// engine itself never sees credentials; everything behind this is the
// boundary's concern.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
}

type authService struct {
	adminUsername     string
	adminPasswordHash string
}

func NewAuthService(adminUsername, adminPasswordHash string) AuthService {
	return &authService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

func (s *authService) Login(_ context.Context, username, password string) error {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passwordOK := utils.CheckPasswordHash(password, s.adminPasswordHash)
	if !usernameOK || !passwordOK {
		return ErrAuthInvalidCredentials
	}
	return nil
}
