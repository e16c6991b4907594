package services

import (
	"context"
	"time"

	"movie-watchlist/models"
)

// WatchlistUserStore is the slice of the user repository the movie flows
// need: resolving the acting user and growing their list.
type WatchlistUserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	AppendMovie(ctx context.Context, userID, movieID string) error
}

type MovieStore interface {
	Insert(ctx context.Context, movie *models.Movie) error
	FindByID(ctx context.Context, id string) (*models.Movie, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Movie, error)
	Update(ctx context.Context, movie *models.Movie) error
	SetRating(ctx context.Context, id string, rating int) error
	SetLastWatched(ctx context.Context, id string, watched time.Time) error
}

type MovieService struct {
	users  WatchlistUserStore
	movies MovieStore
}

func NewMovieService(users WatchlistUserStore, movies MovieStore) *MovieService {
	return &MovieService{users: users, movies: movies}
}

// ListForUser returns the user's watchlist in the order the movies were
// added. The batched $in fetch does not guarantee order, so the result is
// reordered against the user's stored id list.
func (s *MovieService) ListForUser(ctx context.Context, userID string) ([]models.Movie, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fetched, err := s.movies.FindByIDs(ctx, user.Movies)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Movie, len(fetched))
	for _, m := range fetched {
		byID[m.ID] = m
	}

	movies := make([]models.Movie, 0, len(fetched))
	for _, id := range user.Movies {
		if m, ok := byID[id]; ok {
			movies = append(movies, m)
		}
	}
	return movies, nil
}

// Add creates the movie and attaches it to the user's list. The attach is
// an atomic list push on the user document, not a read-modify-write.
func (s *MovieService) Add(ctx context.Context, userID, title, director string, year int) (*models.Movie, error) {
	movie := &models.Movie{
		ID:       newID(),
		Title:    title,
		Director: director,
		Year:     year,
		Cast:     []string{},
		Series:   []string{},
		Tags:     []string{},
	}

	if err := s.movies.Insert(ctx, movie); err != nil {
		return nil, err
	}
	if err := s.users.AppendMovie(ctx, userID, movie.ID); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (*models.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

// Edit overwrites every editable field of the movie and persists the full
// document. Rating and last-watched are untouched; they have dedicated
// operations.
func (s *MovieService) Edit(ctx context.Context, id string, form *models.Movie) (*models.Movie, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.Title = form.Title
	movie.Director = form.Director
	movie.Year = form.Year
	movie.Cast = form.Cast
	movie.Series = form.Series
	movie.Tags = form.Tags
	movie.Description = form.Description
	movie.VideoLink = form.VideoLink

	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Rate(ctx context.Context, id string, rating int) error {
	return s.movies.SetRating(ctx, id, rating)
}

func (s *MovieService) MarkWatched(ctx context.Context, id string) error {
	return s.movies.SetLastWatched(ctx, id, time.Now())
}
