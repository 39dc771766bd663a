package model

// Avatar is a user's profile picture, stored the same way as Image
// but in its own table so listing images and avatars can be replaced
// independently.
type Avatar struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FileSize  int64  `json:"file_size"`
	MediaType string `json:"media_type" gorm:"type:varchar(100)"`
	Data      []byte `json:"-" gorm:"type:bytea"`
}
