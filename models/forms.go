package models

// Form DTOs bound from HTML form posts. Validation rules live in the
// binding tags and are enforced by gin's validator integration.

type RegisterForm struct {
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,max=20"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type MovieForm struct {
	Title    string `form:"title" binding:"required"`
	Director string `form:"director" binding:"required"`
	Year     int    `form:"year" binding:"required,min=1878"`
}

// ExtendedMovieForm covers the full edit page. Cast, Series and Tags
// arrive as newline-separated textarea values and are split by the
// controller before persisting.
type ExtendedMovieForm struct {
	Title       string `form:"title" binding:"required"`
	Director    string `form:"director" binding:"required"`
	Year        int    `form:"year" binding:"required,min=1878"`
	Cast        string `form:"cast"`
	Series      string `form:"series"`
	Tags        string `form:"tags"`
	Description string `form:"description"`
	VideoLink   string `form:"video_link" binding:"omitempty,url"`
}
