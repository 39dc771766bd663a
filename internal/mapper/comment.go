package mapper

import (
	"adboard-service/internal/dto"
	"adboard-service/internal/model"
)

// CommentToDTO maps a comment to its wire shape. The author must be
// preloaded; the author's avatar may be nil.
func CommentToDTO(c *model.Comment) dto.Comment {
	out := dto.Comment{
		Pk:        c.ID,
		Author:    c.AuthorID,
		CreatedAt: c.CreatedAt,
		Text:      c.Text,
	}
	if c.Author != nil {
		out.AuthorFirstName = c.Author.FirstName
		out.AuthorImage = AvatarURL(c.Author.Avatar)
	}
	return out
}

// CommentsToDTO wraps a slice of comments with its count.
func CommentsToDTO(comments []model.Comment) dto.Comments {
	results := make([]dto.Comment, 0, len(comments))
	for i := range comments {
		results = append(results, CommentToDTO(&comments[i]))
	}
	return dto.Comments{Count: len(results), Results: results}
}
