package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anborhan/blog-backend/errs"
	"github.com/anborhan/blog-backend/models"
)

const blogPostCollection = "blogposts"

var _ BlogPostStore = (*BlogPostRepo)(nil)

// BlogPostRepo stores blog posts in a MongoDB collection.
type BlogPostRepo struct {
	collection *mongo.Collection
}

func NewBlogPostRepo(db *mongo.Database) *BlogPostRepo {
	return &BlogPostRepo{collection: db.Collection(blogPostCollection)}
}

// Insert stores a new blog post, assigning its id and creation timestamp
func (r *BlogPostRepo) Insert(ctx context.Context, post *models.BlogPost) error {
	stampNewPost(post)
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// InsertMany bulk-creates blog posts, assigning ids and creation timestamps in place
func (r *BlogPostRepo) InsertMany(ctx context.Context, posts []*models.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}
	docs := make([]interface{}, len(posts))
	for i, post := range posts {
		stampNewPost(post)
		docs[i] = post
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindAll returns all blog posts in natural store order
func (r *BlogPostRepo) FindAll(ctx context.Context) ([]*models.BlogPost, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByID returns a blog post by its id
func (r *BlogPostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NewNotFound("blog post")
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindOne returns an arbitrary single blog post
func (r *BlogPostRepo) FindOne(ctx context.Context) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NewNotFound("blog post")
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateByID applies a partial update to the blog post with the given id
func (r *BlogPostRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update BlogPostUpdate) error {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Author != nil {
		set["author"] = *update.Author
	}
	if len(set) == 0 {
		// Nothing to change, but the target must still exist.
		_, err := r.FindByID(ctx, id)
		return err
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("blog post")
	}
	return nil
}

// DeleteByID removes the blog post with the given id. Deleting an id that is
// no longer present is not an error.
func (r *BlogPostRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count returns the total number of stored blog posts
func (r *BlogPostRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// stampNewPost assigns the store-owned fields of a new document
func stampNewPost(post *models.BlogPost) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.Created.IsZero() {
		post.Created = time.Now().UTC().Truncate(time.Millisecond)
	}
}
