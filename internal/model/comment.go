package model

import "time"

// Comment belongs to a listing. CreatedAt is assigned by the server
// when the comment is added, never taken from the client.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:varchar(1000)"`
	CreatedAt time.Time `json:"created_at"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Author    *User     `json:"-" gorm:"foreignKey:AuthorID"`
	ListingID uint      `json:"listing_id" gorm:"index"`
	Listing   *Listing  `json:"-" gorm:"foreignKey:ListingID"`
}
