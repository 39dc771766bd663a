package model

import "time"

// Listing is a classified ad posted by a user.
type Listing struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(100)"`
	Description string    `json:"description" gorm:"type:varchar(1000)"`
	Price       int       `json:"price"`
	AuthorID    uint      `json:"author_id" gorm:"index"`
	Author      *User     `json:"-" gorm:"foreignKey:AuthorID"`
	ImageID     *uint     `json:"-"`
	Image       *Image    `json:"-" gorm:"foreignKey:ImageID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
