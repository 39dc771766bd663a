package mapper

import (
	"fmt"

	"adboard-service/internal/dto"
	"adboard-service/internal/model"
)

const avatarPrefix = "/users/image"

// UserToDTO maps a user to the profile wire shape.
func UserToDTO(u *model.User) dto.User {
	return dto.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Image:     AvatarURL(u.Avatar),
	}
}

// AvatarURL derives the public URL of a user avatar, or nil when the
// user has none.
func AvatarURL(a *model.Avatar) *string {
	if a == nil {
		return nil
	}
	url := fmt.Sprintf("%s/%d", avatarPrefix, a.ID)
	return &url
}
