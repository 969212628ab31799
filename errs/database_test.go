package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseErrorClassifiesCauses(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"duplicate key", errors.New("E11000 duplicate key error collection"), http.StatusConflict},
		{"no documents", errors.New("mongo: no documents in result"), http.StatusNotFound},
		{"connection refused", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"server selection", errors.New("server selection error: context deadline exceeded"), http.StatusServiceUnavailable},
		{"generic failure", errors.New("write exception"), http.StatusInternalServerError},
		{"no cause", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("find blog posts", "blog_posts", tc.cause)
			assert.Equal(t, tc.wantStatus, err.StatusCode)
		})
	}
}

func TestNewDatabaseErrorKeepsSentinels(t *testing.T) {
	duplicate := NewDatabaseError("create blog post", "blog_post", errors.New("duplicate key"))
	assert.True(t, IsAlreadyExists(duplicate))

	missing := NewDatabaseError("update blog post", "blog_post", errors.New("not found"))
	assert.True(t, IsNotFound(missing))

	var apiErr *ApiErr
	require.True(t, errors.As(NewDatabaseError("count blog posts", "blog_posts", nil), &apiErr))
	assert.ErrorIs(t, apiErr, ErrDatabaseQuery)
}
