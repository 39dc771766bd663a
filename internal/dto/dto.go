// Package dto holds the wire shapes exchanged with clients. They are
// decoupled from the GORM models on purpose: server-controlled fields
// (ids, authors, timestamps, image references) never appear in the
// inbound shapes, so clients cannot override them.
package dto

import "time"

// Login is the credential payload for POST /login. Username carries
// the email address.
type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register is the payload for POST /register.
type Register struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role,omitempty"`
}

// NewPassword is the payload for POST /users/set_password.
type NewPassword struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreateOrUpdateListing is the client-supplied part of a listing.
type CreateOrUpdateListing struct {
	Title       string `json:"title"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// Listing is the summary shape returned in collections.
// Image is a URL (/ads/image/{id}) or null when the listing has none.
type Listing struct {
	Pk     uint    `json:"pk"`
	Author uint    `json:"author"`
	Image  *string `json:"image"`
	Price  int     `json:"price"`
	Title  string  `json:"title"`
}

// ExtendedListing embeds the summary shape and adds the author's
// contact fields. Composition, not inheritance: the detail shape is a
// summary plus extra fields.
type ExtendedListing struct {
	Listing
	Description     string `json:"description"`
	AuthorFirstName string `json:"authorFirstName"`
	AuthorLastName  string `json:"authorLastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

// Listings wraps a collection of listing summaries.
type Listings struct {
	Count   int       `json:"count"`
	Results []Listing `json:"results"`
}

// CreateOrUpdateComment is the client-supplied part of a comment.
type CreateOrUpdateComment struct {
	Text string `json:"text"`
}

// Comment is the wire shape of a comment. AuthorImage is the comment
// author's avatar URL (/users/image/{id}) or null.
type Comment struct {
	Pk              uint      `json:"pk"`
	Author          uint      `json:"author"`
	AuthorImage     *string   `json:"authorImage"`
	AuthorFirstName string    `json:"authorFirstName"`
	CreatedAt       time.Time `json:"createdAt"`
	Text            string    `json:"text"`
}

// Comments wraps a listing's comments.
type Comments struct {
	Count   int       `json:"count"`
	Results []Comment `json:"results"`
}

// UpdateUser is the payload for PATCH /users/me and is echoed back.
type UpdateUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// User is the profile shape for GET /users/me.
type User struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Role      string  `json:"role"`
	Image     *string `json:"image"`
}
