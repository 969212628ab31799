package database

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anborhan/blog-backend/errs"
	"github.com/anborhan/blog-backend/models"
)

var _ BlogPostStore = (*MemoryBlogPostStore)(nil)

// MemoryBlogPostStore is an in-memory BlogPostStore used by tests and local
// runs without a mongod. Documents are kept in insertion order so FindAll and
// FindOne behave like the natural-order reads of the real collection.
type MemoryBlogPostStore struct {
	mutex sync.RWMutex
	posts map[primitive.ObjectID]models.BlogPost
	order []primitive.ObjectID
}

func NewMemoryBlogPostStore() *MemoryBlogPostStore {
	return &MemoryBlogPostStore{
		posts: make(map[primitive.ObjectID]models.BlogPost),
	}
}

func (s *MemoryBlogPostStore) Insert(ctx context.Context, post *models.BlogPost) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	stampNewPost(post)
	if _, exists := s.posts[post.ID]; exists {
		return errs.NewAlreadyExists("blog post")
	}
	s.posts[post.ID] = *post
	s.order = append(s.order, post.ID)
	return nil
}

func (s *MemoryBlogPostStore) InsertMany(ctx context.Context, posts []*models.BlogPost) error {
	for _, post := range posts {
		if err := s.Insert(ctx, post); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryBlogPostStore) FindAll(ctx context.Context) ([]*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	posts := make([]*models.BlogPost, 0, len(s.order))
	for _, id := range s.order {
		post := s.posts[id]
		posts = append(posts, &post)
	}
	return posts, nil
}

func (s *MemoryBlogPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	post, exists := s.posts[id]
	if !exists {
		return nil, errs.NewNotFound("blog post")
	}
	return &post, nil
}

func (s *MemoryBlogPostStore) FindOne(ctx context.Context) (*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.order) == 0 {
		return nil, errs.NewNotFound("blog post")
	}
	post := s.posts[s.order[0]]
	return &post, nil
}

func (s *MemoryBlogPostStore) UpdateByID(ctx context.Context, id primitive.ObjectID, update BlogPostUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	post, exists := s.posts[id]
	if !exists {
		return errs.NewNotFound("blog post")
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Author != nil {
		post.Author = *update.Author
	}
	s.posts[id] = post
	return nil
}

func (s *MemoryBlogPostStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.posts[id]; !exists {
		return nil
	}
	delete(s.posts, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryBlogPostStore) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.posts)), nil
}
