package models

import "time"

type Movie struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Director    string    `bson:"director" json:"director"`
	Year        int       `bson:"year" json:"year"`
	Cast        []string  `bson:"cast" json:"cast"`
	Series      []string  `bson:"series" json:"series"`
	Tags        []string  `bson:"tags" json:"tags"`
	Description string    `bson:"description" json:"description"`
	VideoLink   string    `bson:"video_link" json:"video_link"`
	Rating      int       `bson:"rating" json:"rating"`
	LastWatched time.Time `bson:"last_watched,omitempty" json:"last_watched,omitempty"`
}

// Rated reports whether the movie has been given a rating yet.
func (m Movie) Rated() bool {
	return m.Rating > 0
}

// Watched reports whether the movie has ever been marked watched.
func (m Movie) Watched() bool {
	return !m.LastWatched.IsZero()
}
