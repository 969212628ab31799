package database

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// The mongo-backed store runs the same contract as the in-memory store. It
// needs a reachable mongod, so it is skipped unless MONGO_TEST_URI is set,
// e.g. MONGO_TEST_URI=mongodb://localhost:27017 go test ./database/...
func TestBlogPostRepoContract(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	db, err := Connect(context.Background(), uri, "blog_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	testBlogPostStoreContract(t, func(t *testing.T) BlogPostStore {
		repo := db.BlogPostRepo()
		require.NoError(t, repo.collection.Drop(context.Background()))
		return repo
	})
}
