package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"movie-watchlist/middleware"
	"movie-watchlist/models"
	"movie-watchlist/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// loggedIn reports whether the session already carries a login marker.
func loggedIn(c *gin.Context) bool {
	email, _ := sessions.Default(c).Get(middleware.SessionKeyEmail).(string)
	return email != ""
}

func (ac *AuthController) RegisterPage(c *gin.Context) {
	if loggedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Movie Watchlist | Register"})
}

func (ac *AuthController) Register(c *gin.Context) {
	if loggedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{
			"Title": "Movie Watchlist | Register",
			"Error": formMessage(err),
			"Email": form.Email,
		})
		return
	}

	_, err := ac.authService.Register(c.Request.Context(), form.Email, form.Password)
	if errors.Is(err, models.ErrEmailTaken) {
		render(c, http.StatusBadRequest, "register.html", gin.H{
			"Title": "Movie Watchlist | Register",
			"Error": err.Error(),
			"Email": form.Email,
		})
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "registration failed")
		return
	}

	flash(c, "success", "User registered successfully")
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) LoginPage(c *gin.Context) {
	if loggedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Movie Watchlist | Login"})
}

func (ac *AuthController) Login(c *gin.Context) {
	if loggedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"Title": "Movie Watchlist | Login",
			"Error": formMessage(err),
			"Email": form.Email,
		})
		return
	}

	user, err := ac.authService.Login(c.Request.Context(), form.Email, form.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		flash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "login failed")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyUserID, user.ID)
	session.Set(middleware.SessionKeyEmail, user.Email)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "login failed")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout clears the login markers. Deleting an absent key is a no-op, so
// an already logged-out caller just gets the redirect. The theme survives.
func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionKeyUserID)
	session.Delete(middleware.SessionKeyEmail)
	_ = session.Save()

	c.Redirect(http.StatusFound, "/login")
}
