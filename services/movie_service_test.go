package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"movie-watchlist/models"
	"movie-watchlist/testutil"
)

func newMovieFixture(t *testing.T) (*MovieService, *models.User, *testutil.UserStore) {
	t.Helper()
	users := testutil.NewUserStore()
	movies := testutil.NewMovieStore()
	user := &models.User{ID: "u1", Email: "u@example.com", Movies: []string{}}
	assert.NoError(t, users.Create(context.Background(), user))
	return NewMovieService(users, movies), user, users
}

func TestAddAttachesToUserOnce(t *testing.T) {
	svc, user, users := newMovieFixture(t)
	ctx := context.Background()

	movie, err := svc.Add(ctx, user.ID, "Dune", "Villeneuve", 2021)
	assert.NoError(t, err)
	assert.NotEmpty(t, movie.ID)

	stored, err := users.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{movie.ID}, stored.Movies)
}

func TestListForUserKeepsInsertionOrder(t *testing.T) {
	svc, user, _ := newMovieFixture(t)
	ctx := context.Background()

	titles := []string{"Alien", "Blade Runner", "Contact", "Dune", "Ex Machina"}
	for _, title := range titles {
		_, err := svc.Add(ctx, user.ID, title, "someone", 1990)
		assert.NoError(t, err)
	}

	movies, err := svc.ListForUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, movies, len(titles))
	for i, m := range movies {
		assert.Equal(t, titles[i], m.Title)
	}
}

func TestConcurrentAddsLoseNothing(t *testing.T) {
	svc, user, users := newMovieFixture(t)
	ctx := context.Background()

	const adds = 20
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(ctx, user.ID, "Movie", "Director", 2000)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := users.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, stored.Movies, adds)

	seen := make(map[string]bool)
	for _, id := range stored.Movies {
		assert.False(t, seen[id], "movie id %s appears twice", id)
		seen[id] = true
	}
}

func TestEditOverwritesEditableFieldsOnly(t *testing.T) {
	svc, user, _ := newMovieFixture(t)
	ctx := context.Background()

	movie, err := svc.Add(ctx, user.ID, "Dune", "Villeneuve", 2021)
	assert.NoError(t, err)
	assert.NoError(t, svc.Rate(ctx, movie.ID, 4))

	updated, err := svc.Edit(ctx, movie.ID, &models.Movie{
		Title:       "A",
		Director:    "B",
		Year:        2000,
		Cast:        []string{"x"},
		Series:      []string{},
		Tags:        []string{"t1", "t2"},
		Description: "d",
		VideoLink:   "http://x",
	})
	assert.NoError(t, err)

	got, err := svc.Get(ctx, movie.ID)
	assert.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "B", got.Director)
	assert.Equal(t, 2000, got.Year)
	assert.Equal(t, []string{"x"}, got.Cast)
	assert.Empty(t, got.Series)
	assert.Equal(t, []string{"t1", "t2"}, got.Tags)
	assert.Equal(t, "d", got.Description)
	assert.Equal(t, "http://x", got.VideoLink)
	assert.Equal(t, 4, got.Rating, "edit must not touch the rating")
}

func TestRateAndMarkWatched(t *testing.T) {
	svc, user, _ := newMovieFixture(t)
	ctx := context.Background()

	movie, err := svc.Add(ctx, user.ID, "Dune", "Villeneuve", 2021)
	assert.NoError(t, err)

	assert.NoError(t, svc.Rate(ctx, movie.ID, 5))
	assert.NoError(t, svc.MarkWatched(ctx, movie.ID))

	got, err := svc.Get(ctx, movie.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	assert.True(t, got.Watched())
}

func TestOperationsOnMissingMovie(t *testing.T) {
	svc, _, _ := newMovieFixture(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, svc.Rate(ctx, "missing", 3), models.ErrNotFound)
	assert.ErrorIs(t, svc.MarkWatched(ctx, "missing"), models.ErrNotFound)

	_, err = svc.Edit(ctx, "missing", &models.Movie{Title: "A"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
