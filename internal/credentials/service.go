package credentials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avoronov/newshub/internal/common"
)

// Service implements registration and authentication on top of a Repository.
//
// Passwords are stored as bcrypt hashes; the observable contract is still an
// exact-match comparison on authenticate.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a credential record for a previously unused email and
// returns it with a freshly allocated id. A taken email yields
// common.ErrAlreadyExists and leaves the existing record unchanged.
func (s *Service) Register(ctx context.Context, email, name, password string, role Role) (*UserCredential, error) {
	if !role.Valid() {
		role = RoleUser
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrAlreadyExists
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	cred := &UserCredential{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, cred); err != nil {
		return nil, fmt.Errorf("error creating credential: %w", err)
	}

	return cred, nil
}

// Authenticate returns the credential record for email when password matches.
// An unknown email and a wrong password are reported identically as
// common.ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*UserCredential, error) {
	cred, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return cred, nil
}
