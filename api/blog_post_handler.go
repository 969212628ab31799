package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anborhan/blog-backend/database"
	"github.com/anborhan/blog-backend/errs"
	"github.com/anborhan/blog-backend/models"
)

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     database.BlogPostStore
}

func newBlogPostHandler(store database.BlogPostStore) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// listPosts returns every stored post, each shaped with the author display name.
func (h blogPostHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.store.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog_posts", err))
			return
		}

		response := make([]PostResponse, 0, len(posts))
		for _, post := range posts {
			response = append(response, newPostResponse(post))
		}

		h.responder.WriteJSON(w, response)
	}
}

// createPost validates the payload, inserts a new post, and returns the shaped
// post including its assigned id and creation timestamp.
func (h blogPostHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog post", err))
			return
		}

		if err := request.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		post := models.BlogPost{
			Title:   request.Title,
			Content: request.Content,
			Author:  request.Author.toModel(),
		}

		if err := h.store.Insert(r.Context(), &post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, newPostResponse(&post))
	}
}

// updatePost applies a partial update to the post named by the path id. A body
// id, when present, must match the path id.
func (h blogPostHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("postID", "must be a valid object id"))
			return
		}

		var request UpdatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog post", err))
			return
		}

		if request.ID != "" && request.ID != postID.Hex() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("id", "body id does not match path id"))
			return
		}

		if err := request.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		update := database.BlogPostUpdate{
			Title:   request.Title,
			Content: request.Content,
		}
		if request.Author != nil {
			author := request.Author.toModel()
			update.Author = &author
		}

		if err := h.store.UpdateByID(r.Context(), postID, update); err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteError(w, err)
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog_post", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// deletePost removes the post named by the path id. Absence of the record is
// not a client error; the response is 204 either way.
func (h blogPostHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("postID", "must be a valid object id"))
			return
		}

		if err := h.store.DeleteByID(r.Context(), postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog_post", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
