package api

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/anborhan/blog-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogPostHandler blogPostHandler
}

// AuthorPayload is the structured author shape accepted in request bodies.
type AuthorPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (p AuthorPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required.Error("author.firstName is required")),
		validation.Field(&p.LastName, validation.Required.Error("author.lastName is required")),
	)
}

func (p AuthorPayload) toModel() models.Author {
	return models.Author{FirstName: p.FirstName, LastName: p.LastName}
}

// CreatePostRequest is the body of POST /posts. All fields are required.
type CreatePostRequest struct {
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Author  *AuthorPayload `json:"author"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
	)
}

// UpdatePostRequest is the body of PUT /posts/{postID}. Only supplied fields
// are changed; a body id, when present, must match the path id.
type UpdatePostRequest struct {
	ID      string         `json:"id"`
	Title   *string        `json:"title"`
	Content *string        `json:"content"`
	Author  *AuthorPayload `json:"author"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty")),
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("content cannot be empty")),
		validation.Field(&r.Author),
	)
}

// PostResponse is the wire shape of a post. The author field is always the
// derived display name, never the stored structured name.
type PostResponse struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Created time.Time `json:"created"`
}

func newPostResponse(post *models.BlogPost) PostResponse {
	return PostResponse{
		ID:      post.ID.Hex(),
		Title:   post.Title,
		Content: post.Content,
		Author:  post.Author.DisplayName(),
		Created: post.Created,
	}
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
