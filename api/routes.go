package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes binds the route table to the resource handlers
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(requestIDMiddleware)
		r.Use(requestLoggerMiddleware)

		// Blog post endpoints
		r.Get("/posts", handlers.blogPostHandler.listPosts())
		r.Post("/posts", handlers.blogPostHandler.createPost())
		r.Put("/posts/{postID}", handlers.blogPostHandler.updatePost())
		r.Delete("/posts/{postID}", handlers.blogPostHandler.deletePost())
	})
}
