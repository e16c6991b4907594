package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"movie-watchlist/middleware"
	"movie-watchlist/models"
	"movie-watchlist/services"
)

type MovieController struct {
	movieService *services.MovieService
}

func NewMovieController(movieService *services.MovieService) *MovieController {
	return &MovieController{movieService: movieService}
}

// Index renders the caller's watchlist in the order the movies were added.
func (mc *MovieController) Index(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	movies, err := mc.movieService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load watchlist")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"Title":  "Movie Watchlist",
		"Movies": movies,
	})
}

func (mc *MovieController) AddMoviePage(c *gin.Context) {
	render(c, http.StatusOK, "new_movie.html", gin.H{"Title": "Add Movie", "Form": models.MovieForm{}})
}

func (mc *MovieController) AddMovie(c *gin.Context) {
	var form models.MovieForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "new_movie.html", gin.H{
			"Title": "Add Movie",
			"Error": formMessage(err),
			"Form":  form,
		})
		return
	}

	userID := middleware.CurrentUserID(c)
	if _, err := mc.movieService.Add(c.Request.Context(), userID, form.Title, form.Director, form.Year); err != nil {
		c.String(http.StatusInternalServerError, "could not add movie")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (mc *MovieController) EditMoviePage(c *gin.Context) {
	movie, err := mc.movieService.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "movie not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load movie")
		return
	}

	render(c, http.StatusOK, "movie_form.html", gin.H{
		"Title":  "Edit " + movie.Title,
		"Movie":  movie,
		"Cast":   joinLines(movie.Cast),
		"Series": joinLines(movie.Series),
		"Tags":   joinLines(movie.Tags),
	})
}

func (mc *MovieController) EditMovie(c *gin.Context) {
	id := c.Param("id")

	var form models.ExtendedMovieForm
	if err := c.ShouldBind(&form); err != nil {
		movie, getErr := mc.movieService.Get(c.Request.Context(), id)
		if getErr != nil {
			c.String(http.StatusNotFound, "movie not found")
			return
		}
		render(c, http.StatusBadRequest, "movie_form.html", gin.H{
			"Title":  "Edit " + movie.Title,
			"Movie":  movie,
			"Cast":   form.Cast,
			"Series": form.Series,
			"Tags":   form.Tags,
			"Error":  formMessage(err),
		})
		return
	}

	_, err := mc.movieService.Edit(c.Request.Context(), id, &models.Movie{
		Title:       form.Title,
		Director:    form.Director,
		Year:        form.Year,
		Cast:        splitLines(form.Cast),
		Series:      splitLines(form.Series),
		Tags:        splitLines(form.Tags),
		Description: form.Description,
		VideoLink:   form.VideoLink,
	})
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "movie not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "could not update movie")
		return
	}

	c.Redirect(http.StatusFound, "/movie/"+id)
}

// MovieDetails is open to any caller who knows the movie id.
func (mc *MovieController) MovieDetails(c *gin.Context) {
	movie, err := mc.movieService.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "movie not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load movie")
		return
	}

	render(c, http.StatusOK, "movie_details.html", gin.H{
		"Title":   movie.Title,
		"Movie":   movie,
		"Ratings": []int{1, 2, 3, 4, 5},
	})
}

func (mc *MovieController) Rate(c *gin.Context) {
	id := c.Param("id")

	rating, err := strconv.Atoi(c.Query("rating"))
	if err != nil {
		c.String(http.StatusBadRequest, "rating must be an integer")
		return
	}

	if err := mc.movieService.Rate(c.Request.Context(), id, rating); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.String(http.StatusNotFound, "movie not found")
			return
		}
		c.String(http.StatusInternalServerError, "could not rate movie")
		return
	}

	c.Redirect(http.StatusFound, "/movie/"+id)
}

func (mc *MovieController) MarkWatched(c *gin.Context) {
	id := c.Param("id")

	if err := mc.movieService.MarkWatched(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.String(http.StatusNotFound, "movie not found")
			return
		}
		c.String(http.StatusInternalServerError, "could not update movie")
		return
	}

	c.Redirect(http.StatusFound, "/movie/"+id)
}

// ToggleTheme flips the session theme and sends the caller back to the
// page they came from. The redirect target is taken from the query as-is,
// matching the inherited behavior.
func (mc *MovieController) ToggleTheme(c *gin.Context) {
	session := sessions.Default(c)

	theme, _ := session.Get(middleware.SessionKeyTheme).(string)
	if theme == "dark" {
		session.Set(middleware.SessionKeyTheme, "light")
	} else {
		session.Set(middleware.SessionKeyTheme, "dark")
	}
	_ = session.Save()

	target := c.Query("current_page")
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}

// splitLines turns a textarea value into a list, one entry per line,
// trimming whitespace and dropping blanks.
func splitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
