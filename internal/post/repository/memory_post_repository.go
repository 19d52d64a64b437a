package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"devconnector-backend/internal/post/domain"

	"github.com/google/uuid"
)

type memoryPostRepository struct {
	mu    sync.RWMutex
	posts map[string]*domain.Post
}

// NewMemoryPostRepository creates an empty in-memory PostRepository.
func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{posts: make(map[string]*domain.Post)}
}

func (r *memoryPostRepository) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return post.Clone(), nil
}

func (r *memoryPostRepository) FindAll(_ context.Context) ([]*domain.Post, error) {
	r.mu.RLock()
	posts := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, p.Clone())
	}
	r.mu.RUnlock()

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

func (r *memoryPostRepository) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.Date = time.Now()
	r.posts[post.ID] = post.Clone()
	return nil
}

func (r *memoryPostRepository) Update(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts[post.ID] = post.Clone()
	return nil
}

func (r *memoryPostRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.posts, id)
	return nil
}
