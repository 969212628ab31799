package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anborhan/blog-backend/errs"
	"github.com/anborhan/blog-backend/models"
)

// seedBlogPosts bulk-creates count fixture posts through the store under test.
func seedBlogPosts(t *testing.T, store BlogPostStore, count int) []*models.BlogPost {
	t.Helper()

	posts := make([]*models.BlogPost, count)
	for i := range posts {
		posts[i] = &models.BlogPost{
			Title:   fmt.Sprintf("title %d", i),
			Content: fmt.Sprintf("content %d", i),
			Author:  models.Author{FirstName: "First", LastName: fmt.Sprintf("Last%d", i)},
		}
	}
	require.NoError(t, store.InsertMany(context.Background(), posts))
	return posts
}

// testBlogPostStoreContract runs the storage contract shared by every
// BlogPostStore implementation. newStore must return an empty store.
func testBlogPostStoreContract(t *testing.T, newStore func(t *testing.T) BlogPostStore) {
	ctx := context.Background()

	t.Run("insert assigns id and created", func(t *testing.T) {
		store := newStore(t)

		post := &models.BlogPost{
			Title:   "a title",
			Content: "some content",
			Author:  models.Author{FirstName: "Ada", LastName: "Lovelace"},
		}
		require.NoError(t, store.Insert(ctx, post))

		assert.False(t, post.ID.IsZero())
		assert.False(t, post.Created.IsZero())

		found, err := store.FindByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.Title, found.Title)
		assert.Equal(t, post.Content, found.Content)
		assert.Equal(t, post.Author, found.Author)
		assert.WithinDuration(t, post.Created, found.Created, time.Millisecond)
	})

	t.Run("find by id reports missing posts", func(t *testing.T) {
		store := newStore(t)

		_, err := store.FindByID(ctx, primitive.NewObjectID())
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("find all returns every post", func(t *testing.T) {
		store := newStore(t)
		seeded := seedBlogPosts(t, store, 3)

		posts, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, posts, len(seeded))
	})

	t.Run("find one picks an arbitrary post", func(t *testing.T) {
		store := newStore(t)

		_, err := store.FindOne(ctx)
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))

		seedBlogPosts(t, store, 2)

		post, err := store.FindOne(ctx)
		require.NoError(t, err)
		assert.False(t, post.ID.IsZero())
	})

	t.Run("update touches only supplied fields", func(t *testing.T) {
		store := newStore(t)
		seeded := seedBlogPosts(t, store, 1)
		target := seeded[0]

		newTitle := "updated blog title"
		err := store.UpdateByID(ctx, target.ID, BlogPostUpdate{Title: &newTitle})
		require.NoError(t, err)

		found, err := store.FindByID(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, newTitle, found.Title)
		assert.Equal(t, target.Content, found.Content)
		assert.Equal(t, target.Author, found.Author)
		assert.WithinDuration(t, target.Created, found.Created, time.Millisecond)

		newContent := "this is new blog content"
		author := models.Author{FirstName: "Bob", LastName: "Smith"}
		err = store.UpdateByID(ctx, target.ID, BlogPostUpdate{Content: &newContent, Author: &author})
		require.NoError(t, err)

		found, err = store.FindByID(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, newTitle, found.Title)
		assert.Equal(t, newContent, found.Content)
		assert.Equal(t, author, found.Author)
	})

	t.Run("update reports missing posts", func(t *testing.T) {
		store := newStore(t)

		title := "anything"
		err := store.UpdateByID(ctx, primitive.NewObjectID(), BlogPostUpdate{Title: &title})
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := newStore(t)
		seeded := seedBlogPosts(t, store, 1)
		target := seeded[0]

		require.NoError(t, store.DeleteByID(ctx, target.ID))

		_, err := store.FindByID(ctx, target.ID)
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))

		// Deleting the same id again must not error.
		require.NoError(t, store.DeleteByID(ctx, target.ID))
	})

	t.Run("count tracks inserts and deletes", func(t *testing.T) {
		store := newStore(t)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		seeded := seedBlogPosts(t, store, 3)

		count, err = store.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, count)

		require.NoError(t, store.DeleteByID(ctx, seeded[0].ID))

		count, err = store.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})
}
