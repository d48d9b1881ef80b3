package server

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tilework/wordgrid/pkg/board"
)

// Layout is a stored layout result.
type Layout struct {
	ID       string             `json:"id"`
	Words    []string           `json:"words"`
	Size     int                `json:"size"`
	Empty    string             `json:"empty"`
	Grid     []string           `json:"grid"`
	Placed   []board.PlacedWord `json:"placed"`
	Unplaced []string           `json:"unplaced,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Store holds generated layouts in memory for the lifetime of the process.
type Store struct {
	mu      sync.RWMutex
	layouts map[string]*Layout
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{layouts: make(map[string]*Layout)}
}

// Save assigns the layout an ID and timestamp and stores it.
func (s *Store) Save(l *Layout) *Layout {
	l.ID = uuid.NewString()
	l.CreatedAt = time.Now()

	s.mu.Lock()
	s.layouts[l.ID] = l
	s.mu.Unlock()

	return l
}

// Get returns a layout by ID, or nil if not found.
func (s *Store) Get(id string) *Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layouts[id]
}

// List returns all layouts, most recent first.
func (s *Store) List() []*Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Layout, 0, len(s.layouts))
	for _, l := range s.layouts {
		list = append(list, l)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}
