package controllers

import (
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"movie-watchlist/middleware"
)

// render draws a template with the ambient page state every view needs:
// the session theme, the logged-in email, pending flash messages and the
// current URL (used by the theme toggle to come back here).
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	session := sessions.Default(c)

	theme, _ := session.Get(middleware.SessionKeyTheme).(string)
	if theme == "" {
		theme = "light"
	}
	data["Theme"] = theme

	email, _ := session.Get(middleware.SessionKeyEmail).(string)
	data["LoggedIn"] = email != ""
	// Pages may have set Email to a submitted form value already.
	if _, ok := data["Email"]; !ok {
		data["Email"] = email
	}

	success := session.Flashes("success")
	danger := session.Flashes("danger")
	if len(success) > 0 || len(danger) > 0 {
		// Flashes are consumed on read; persist the removal.
		_ = session.Save()
	}
	data["Success"] = success
	data["Danger"] = danger

	data["CurrentPage"] = c.Request.URL.RequestURI()

	c.HTML(status, name, data)
}

// flash queues a one-shot message under the given category for the next
// rendered page.
func flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	_ = session.Save()
}

// formMessage converts a binding error into a single friendly message for
// the submitted form, first failing field wins.
func formMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid request format"
	}
	for _, e := range ve {
		switch e.Field() {
		case "Email":
			return "Please provide a valid email address"
		case "Password":
			if e.Tag() == "max" {
				return "Password must be at most 20 characters long"
			}
			return "Password is required"
		case "ConfirmPassword":
			return "Passwords do not match"
		case "Title":
			return "Title is required"
		case "Director":
			return "Director is required"
		case "Year":
			return "Please type the year in the format YYYY"
		case "VideoLink":
			return "Video link must be a valid URL"
		}
	}
	return "Invalid input data"
}
