package service

import (
	"fmt"
	"sync"

	"gameboard/internal/core"
	"gameboard/internal/game"
	"gameboard/internal/storage"

	"github.com/google/uuid"
)

// Service holds the games of a process and records them to an optional
// store. Each game is guarded by its own mutex so callers on different games
// never wait on each other.
type Service struct {
	games map[string]*session
	mu    sync.RWMutex
	store *storage.Store // nil if persistence disabled
}

type session struct {
	mu   sync.Mutex
	id   string
	game *game.Game
}

// New creates a new service instance with optional storage
func New(store *storage.Store) (*Service, error) {
	return &Service{
		games: make(map[string]*session),
		store: store,
	}, nil
}

// lookup returns the session of a game, holding the registry lock only for
// the map access
func (s *Service) lookup(gameID string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}
	return sess, nil
}

// generateGameID must be called with s.mu held
func (s *Service) generateGameID() string {
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// GameCount returns the number of live games
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// DeleteGame removes a game from memory and from the store
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}
	delete(s.games, gameID)

	if s.store != nil {
		s.store.DeleteGame(gameID)
	}
	return nil
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// Close drops all games and closes storage if enabled
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*session)

	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
