package service

import (
	"context"
	"errors"
	"strings"

	"adboard-service/internal/dto"
	"adboard-service/internal/errs"
	"adboard-service/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	store Store
}

func NewAuthService(store Store) *AuthService {
	return &AuthService{store: store}
}

// Login verifies the credentials and returns the user. An unknown
// email returns errs.ErrNotFound, a wrong password
// errs.ErrIncorrectPassword; neither case is collapsed into a bare
// boolean so the handler can report them distinctly.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.store.Users().ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errs.ErrIncorrectPassword
	}
	return user, nil
}

// Register creates a new user. The email is stored lower-cased and
// must be unique case-insensitively; a collision returns
// errs.ErrAlreadyExists. The role defaults to USER when the request
// does not carry a valid one.
func (s *AuthService) Register(ctx context.Context, reg dto.Register) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Username))

	_, err := s.store.Users().ByEmail(ctx, email)
	if err == nil {
		return nil, errs.ErrAlreadyExists
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := model.Role(reg.Role)
	if !role.Valid() {
		role = model.RoleUser
	}

	user := &model.User{
		Email:     email,
		Password:  string(hash),
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Phone:     reg.Phone,
		Role:      role,
	}
	if err := s.store.Users().Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
