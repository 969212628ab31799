package api

import (
	"github.com/anborhan/blog-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(store database.BlogPostStore) *routeHandlers {
	return &routeHandlers{
		blogPostHandler: newBlogPostHandler(store),
	}
}
