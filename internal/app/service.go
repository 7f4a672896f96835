package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

// Errors exposed by the service layer.
var ErrNotFound = errors.New("game not found")

// GameState is a read-only copy of one game handed to renderers.
type GameState struct {
	ID      string
	View    domain.Snapshot
	Created time.Time
	Updated time.Time
}

type session struct {
	game    *domain.Game
	created time.Time
	updated time.Time
}

// Service keeps one game per browser page. Every call holds the lock for its
// whole duration, so each click is fully applied before the next one starts.
type Service struct {
	mu    sync.Mutex
	games map[string]*session
	log   zerolog.Logger
	now   func() time.Time
}

// NewService creates an empty service.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		games: make(map[string]*session),
		log:   log.With().Str("component", "sessions").Logger(),
		now:   time.Now,
	}
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newGameID()
	if _, dup := s.games[id]; dup {
		return nil, errors.New("duplicate game id")
	}
	now := s.now()
	ss := &session{game: domain.New(), created: now, updated: now}
	s.games[id] = ss
	s.log.Debug().Str("game", id).Int("active", len(s.games)).Msg("game created")
	return ss.state(id), nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.games[id]
	if !ok {
		return nil, false
	}
	return ss.state(id), true
}

// Play applies a click on cell. A rejected click is not an error: the
// returned state is simply unchanged.
func (s *Service) Play(id string, cell int) (*GameState, error) {
	return s.apply(id, "play", cell, (*domain.Game).Play)
}

// JumpTo displays the board recorded at step.
func (s *Service) JumpTo(id string, step int) (*GameState, error) {
	return s.apply(id, "jump", step, (*domain.Game).JumpTo)
}

func (s *Service) apply(id, action string, arg int, fn func(*domain.Game, int) bool) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	ss.updated = s.now()
	if !fn(ss.game, arg) {
		s.log.Debug().Str("game", id).Str("action", action).Int("arg", arg).Msg("ignored")
	}
	return ss.state(id), nil
}

// Len returns the number of live games.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

// Sweep drops games untouched for longer than ttl and returns how many went.
func (s *Service) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	n := 0
	for id, ss := range s.games {
		if ss.updated.Before(cutoff) {
			delete(s.games, id)
			n++
		}
	}
	if n > 0 {
		s.log.Info().Int("evicted", n).Int("active", len(s.games)).Msg("swept idle games")
	}
	return n
}

// Janitor sweeps every interval until ctx is done.
func (s *Service) Janitor(ctx context.Context, every, ttl time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ttl)
		}
	}
}

func (ss *session) state(id string) *GameState {
	return &GameState{
		ID:      id,
		View:    ss.game.View(),
		Created: ss.created,
		Updated: ss.updated,
	}
}
