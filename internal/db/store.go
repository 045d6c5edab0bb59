package db

import (
	"sort"
	"sync"

	"github.com/BorisDmv/blog-service-demo/internal/models"
)

// Store keeps posts in memory for the lifetime of the process.
type Store struct {
	mu     sync.RWMutex
	nextID int
	posts  map[int]models.Post
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		posts:  make(map[int]models.Post),
	}
}

// CreatePost stores a post and returns its id. Input is assumed valid.
func (s *Store) CreatePost(title, content string, categories []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.posts[id] = models.Post{
		ID:         id,
		Title:      title,
		Categories: copyStrings(categories),
		Content:    content,
	}
	return id
}

// AllPosts returns a snapshot of every post ordered by id.
func (s *Store) AllPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		post.Categories = copyStrings(post.Categories)
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})
	return posts
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
