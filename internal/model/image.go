package model

// Image is the picture attached to a listing. The payload lives in the
// database row; there is no filesystem copy.
type Image struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FileSize  int64  `json:"file_size"`
	MediaType string `json:"media_type" gorm:"type:varchar(100)"`
	Data      []byte `json:"-" gorm:"type:bytea"`
}
