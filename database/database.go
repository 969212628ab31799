package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database owns the shared MongoDB client and hands out repositories bound to
// it. The client is opened once at startup and closed only on shutdown.
type Database struct {
	client       *mongo.Client
	blogPostRepo *BlogPostRepo
}

// Connect opens the client, verifies the connection with a ping, and wires up
// each repository against the named database.
func Connect(ctx context.Context, uri, name string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(name)
	return &Database{
		client:       client,
		blogPostRepo: NewBlogPostRepo(db),
	}, nil
}

func (d *Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

// Close releases the shared client. Safe to call once during shutdown.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
