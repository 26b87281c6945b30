package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/kasonde/distrohub-backend/internal/modules/staff"
)

type service struct {
	staffRepo staff.Repository
	secret    []byte
	tokenTTL  time.Duration
}

// NewService creates a new auth service.
func NewService(staffRepo staff.Repository, secret string, tokenTTL time.Duration) Service {
	return &service{staffRepo: staffRepo, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	member, err := s.staffRepo.GetStaffByEmail(ctx, email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	claims := &jwt.StandardClaims{
		Subject:   member.ID.String(),
		ExpiresAt: time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
