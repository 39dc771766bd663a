package service

import (
	"context"

	"adboard-service/internal/dto"
	"adboard-service/internal/errs"
	"adboard-service/internal/mapper"
	"adboard-service/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// UserService manages the caller's own profile, password and avatar.
type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

// SetPassword replaces the caller's password after verifying the
// current one. On mismatch the stored hash is left untouched.
func (s *UserService) SetPassword(ctx context.Context, in dto.NewPassword, caller Principal) error {
	user, err := resolveCaller(ctx, s.store.Users(), caller)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)) != nil {
		return errs.ErrIncorrectPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return s.store.Users().Save(ctx, user)
}

// Get returns the caller's profile with the derived avatar URL.
func (s *UserService) Get(ctx context.Context, caller Principal) (dto.User, error) {
	user, err := resolveCaller(ctx, s.store.Users(), caller)
	if err != nil {
		return dto.User{}, err
	}
	return mapper.UserToDTO(user), nil
}

// UpdateInfo overwrites first name, last name and phone and echoes the
// update back.
func (s *UserService) UpdateInfo(ctx context.Context, in dto.UpdateUser, caller Principal) (dto.UpdateUser, error) {
	user, err := resolveCaller(ctx, s.store.Users(), caller)
	if err != nil {
		return dto.UpdateUser{}, err
	}
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Phone = in.Phone
	if err := s.store.Users().Save(ctx, user); err != nil {
		return dto.UpdateUser{}, err
	}
	return in, nil
}

// UpdateAvatar replaces the caller's avatar. The new row is attached
// before the old one is removed, inside one transaction. Users without
// a prior avatar are fine.
func (s *UserService) UpdateAvatar(ctx context.Context, image Upload, caller Principal) error {
	user, err := resolveCaller(ctx, s.store.Users(), caller)
	if err != nil {
		return err
	}

	oldAvatarID := user.AvatarID
	return s.store.Transaction(ctx, func(tx Store) error {
		avatar := &model.Avatar{
			FileSize:  image.Size,
			MediaType: image.ContentType,
			Data:      image.Data,
		}
		if err := tx.Avatars().Save(ctx, avatar); err != nil {
			return err
		}
		user.AvatarID = &avatar.ID
		user.Avatar = avatar
		if err := tx.Users().Save(ctx, user); err != nil {
			return err
		}
		if oldAvatarID != nil {
			return tx.Avatars().Delete(ctx, *oldAvatarID)
		}
		return nil
	})
}
