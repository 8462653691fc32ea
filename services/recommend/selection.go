package recommend

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/webtor-io/mood-anime/models"
)

var (
	ErrNoSelection = errors.New("no mood selected")
	ErrSuperseded  = errors.New("selection changed while fetching")
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Recommender resolves a mood into movies.
type Recommender interface {
	Fetch(ctx context.Context, mood string) ([]models.Movie, error)
}

type Snapshot struct {
	Mood   models.Mood
	State  State
	Movies []models.Movie
	Err    error
}

// Selection tracks the currently selected mood. Results that arrive for a
// mood which is no longer selected are dropped.
type Selection struct {
	mu     sync.Mutex
	r      Recommender
	mood   models.Mood
	gen    uint64
	state  State
	movies []models.Movie
	err    error
}

func NewSelection(r Recommender) *Selection {
	return &Selection{r: r}
}

// Select picks a mood. Picking the current mood again clears the selection.
// It returns the mood selected afterwards and whether there is one.
func (s *Selection) Select(mood models.Mood) (models.Mood, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.movies = nil
	s.err = nil
	s.state = StateIdle
	if mood == "" || mood == s.mood {
		s.mood = ""
		return "", false
	}
	s.mood = mood
	return mood, true
}

func (s *Selection) Current() (models.Mood, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mood, s.mood != ""
}

func (s *Selection) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Mood:   s.mood,
		State:  s.state,
		Movies: s.movies,
		Err:    s.err,
	}
}

// Resolve fetches recommendations for the current mood and returns the
// resulting snapshot.
func (s *Selection) Resolve(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if s.mood == "" {
		s.mu.Unlock()
		return Snapshot{State: StateIdle}, ErrNoSelection
	}
	mood := s.mood
	gen := s.gen
	s.state = StateLoading
	s.mu.Unlock()

	movies, err := s.r.Fetch(ctx, mood.String())

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return Snapshot{Mood: mood, State: StateIdle}, ErrSuperseded
	}
	if err != nil {
		s.state = StateFailure
		s.err = err
	} else {
		s.state = StateSuccess
		s.movies = movies
	}
	return Snapshot{
		Mood:   mood,
		State:  s.state,
		Movies: s.movies,
		Err:    s.err,
	}, err
}
