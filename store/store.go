package store

import (
	"sync"

	"gorm.io/gorm"
)

// Store is the typed access layer over the database. One Store wraps
// the single process-wide connection and is passed by reference to
// every handler and job.
type Store struct {
	db *gorm.DB

	// postLocks serializes read-modify-write counter updates per post
	// so concurrent like/comment mutations cannot lose updates.
	postLocks sync.Map
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the raw handle for migrations and tests.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) lockPost(postID string) func() {
	v, _ := s.postLocks.LoadOrStore(postID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
