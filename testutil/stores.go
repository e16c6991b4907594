// Package testutil provides in-memory repository implementations so
// service and handler tests can run without a database.
package testutil

import (
	"context"
	"sync"
	"time"

	"movie-watchlist/models"
)

type UserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*models.User)}
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	cp.Movies = append([]string{}, user.Movies...)
	s.users[user.ID] = &cp
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			cp.Movies = append([]string{}, u.Movies...)
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *UserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *u
	cp.Movies = append([]string{}, u.Movies...)
	return &cp, nil
}

// AppendMovie mirrors the atomic $push: the id lands on the stored list
// under the lock, never via read-modify-write of a caller's copy.
func (s *UserStore) AppendMovie(_ context.Context, userID, movieID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	u.Movies = append(u.Movies, movieID)
	return nil
}

type MovieStore struct {
	mu     sync.Mutex
	movies map[string]*models.Movie
}

func NewMovieStore() *MovieStore {
	return &MovieStore{movies: make(map[string]*models.Movie)}
}

func (s *MovieStore) Insert(_ context.Context, movie *models.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *movie
	s.movies[movie.ID] = &cp
	return nil
}

func (s *MovieStore) FindByID(_ context.Context, id string) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

// FindByIDs returns matches in map iteration order, which is deliberately
// unordered, like the real $in query.
func (s *MovieStore) FindByIDs(_ context.Context, ids []string) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Movie
	for id, m := range s.movies {
		if want[id] {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *MovieStore) Update(_ context.Context, movie *models.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movies[movie.ID]; !ok {
		return models.ErrNotFound
	}
	cp := *movie
	s.movies[movie.ID] = &cp
	return nil
}

func (s *MovieStore) SetRating(_ context.Context, id string, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return models.ErrNotFound
	}
	m.Rating = rating
	return nil
}

func (s *MovieStore) SetLastWatched(_ context.Context, id string, watched time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return models.ErrNotFound
	}
	m.LastWatched = watched
	return nil
}
