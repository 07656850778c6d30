package auth

import (
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service authenticates the storefront owner. There is a single admin
// identity, configured through ADMIN_PASSWORD_HASH (a bcrypt hash).
type Service struct {
	passwordHash func() string
}

func NewService() *Service {
	return &Service{
		passwordHash: func() string { return os.Getenv("ADMIN_PASSWORD_HASH") },
	}
}

// Login checks the password and issues a session token.
func (s *Service) Login(password string) (string, error) {
	hash := s.passwordHash()
	if hash == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateToken("admin")
}
