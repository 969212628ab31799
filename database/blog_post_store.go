package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anborhan/blog-backend/models"
)

// BlogPostUpdate carries the mutable fields of a partial update. Nil fields
// are left untouched; ID and Created are never updatable.
type BlogPostUpdate struct {
	Title   *string
	Content *string
	Author  *models.Author
}

// BlogPostStore is the storage contract for blog posts. The production
// implementation is BlogPostRepo on MongoDB; MemoryBlogPostStore backs tests
// and local runs without a database.
type BlogPostStore interface {
	// Insert stores a single new post, assigning its ID and Created timestamp.
	Insert(ctx context.Context, post *models.BlogPost) error
	// InsertMany bulk-creates posts, assigning IDs and timestamps in place.
	// Used by fixture seeding rather than request handling.
	InsertMany(ctx context.Context, posts []*models.BlogPost) error
	// FindAll returns every post in natural store order.
	FindAll(ctx context.Context) ([]*models.BlogPost, error)
	// FindByID returns the matching post or an error satisfying errs.IsNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	// FindOne returns an arbitrary single post or an error satisfying errs.IsNotFound.
	FindOne(ctx context.Context) (*models.BlogPost, error)
	// UpdateByID applies the non-nil fields of update to the matching post.
	// Returns an error satisfying errs.IsNotFound when no post matches.
	UpdateByID(ctx context.Context, id primitive.ObjectID, update BlogPostUpdate) error
	// DeleteByID removes the matching post. Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	// Count returns the total number of stored posts.
	Count(ctx context.Context) (int64, error)
}
