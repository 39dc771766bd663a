package mapper_test

import (
	"testing"
	"time"

	"adboard-service/internal/dto"
	"adboard-service/internal/mapper"
	"adboard-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingMapping(t *testing.T) {
	author := &model.User{ID: 42, Email: "owner@example.com", FirstName: "Anna", LastName: "Smith", Phone: "+100"}

	t.Run("summary DTO derives the image URL", func(t *testing.T) {
		l := &model.Listing{
			ID:       5,
			Title:    "Bike for sale",
			Price:    100,
			AuthorID: 42,
			Image:    &model.Image{ID: 7},
		}
		out := mapper.ListingToDTO(l)
		assert.Equal(t, uint(5), out.Pk)
		assert.Equal(t, uint(42), out.Author)
		require.NotNil(t, out.Image)
		assert.Equal(t, "/ads/image/7", *out.Image)
	})

	t.Run("nil image maps to a null URL", func(t *testing.T) {
		out := mapper.ListingToDTO(&model.Listing{ID: 5})
		assert.Nil(t, out.Image)
	})

	t.Run("extended DTO carries the author contact fields", func(t *testing.T) {
		l := &model.Listing{ID: 5, Title: "Bike", Description: "Barely used", AuthorID: 42, Author: author}
		out := mapper.ListingToExtendedDTO(l)
		assert.Equal(t, "Barely used", out.Description)
		assert.Equal(t, "Anna", out.AuthorFirstName)
		assert.Equal(t, "Smith", out.AuthorLastName)
		assert.Equal(t, "owner@example.com", out.Email)
		assert.Equal(t, "+100", out.Phone)
	})

	t.Run("round trip preserves the client fields", func(t *testing.T) {
		in := dto.CreateOrUpdateListing{Title: "Bike for sale", Price: 100, Description: "Barely used"}
		entity := mapper.ListingFromInput(in)
		out := mapper.ListingToDTO(&entity)
		assert.Equal(t, in.Title, out.Title)
		assert.Equal(t, in.Price, out.Price)
		assert.Equal(t, in.Description, entity.Description)
	})

	t.Run("inbound mapping never sets server-controlled fields", func(t *testing.T) {
		entity := mapper.ListingFromInput(dto.CreateOrUpdateListing{Title: "Bike"})
		assert.Zero(t, entity.ID)
		assert.Zero(t, entity.AuthorID)
		assert.Nil(t, entity.Author)
		assert.Nil(t, entity.ImageID)
		assert.Nil(t, entity.Image)
	})

	t.Run("collection wrapper counts its results", func(t *testing.T) {
		out := mapper.ListingsToDTO([]model.Listing{{ID: 1}, {ID: 2}})
		assert.Equal(t, 2, out.Count)
		assert.Len(t, out.Results, 2)
	})
}

func TestCommentMapping(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("DTO carries author name and avatar URL", func(t *testing.T) {
		cm := &model.Comment{
			ID:        3,
			Text:      "is it available?",
			CreatedAt: created,
			AuthorID:  42,
			Author: &model.User{
				ID:        42,
				FirstName: "Anna",
				Avatar:    &model.Avatar{ID: 9},
			},
		}
		out := mapper.CommentToDTO(cm)
		assert.Equal(t, uint(3), out.Pk)
		assert.Equal(t, uint(42), out.Author)
		assert.Equal(t, "Anna", out.AuthorFirstName)
		assert.Equal(t, created, out.CreatedAt)
		require.NotNil(t, out.AuthorImage)
		assert.Equal(t, "/users/image/9", *out.AuthorImage)
	})

	t.Run("author without avatar maps to a null URL", func(t *testing.T) {
		out := mapper.CommentToDTO(&model.Comment{Author: &model.User{ID: 42}})
		assert.Nil(t, out.AuthorImage)
	})
}

func TestUserMapping(t *testing.T) {
	t.Run("profile DTO derives the avatar URL", func(t *testing.T) {
		u := &model.User{
			ID:        42,
			Email:     "owner@example.com",
			FirstName: "Anna",
			Role:      model.RoleAdmin,
			Avatar:    &model.Avatar{ID: 9},
		}
		out := mapper.UserToDTO(u)
		assert.Equal(t, "ADMIN", out.Role)
		require.NotNil(t, out.Image)
		assert.Equal(t, "/users/image/9", *out.Image)
	})

	t.Run("no avatar maps to a null URL", func(t *testing.T) {
		out := mapper.UserToDTO(&model.User{ID: 42})
		assert.Nil(t, out.Image)
	})
}
