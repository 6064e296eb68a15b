// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mark1william11/FlavorFind/internal/api"
	"github.com/Mark1william11/FlavorFind/internal/feature/auth/domain/entity"
	"github.com/Mark1william11/FlavorFind/internal/feature/auth/transport/http/dto"
	"github.com/Mark1william11/FlavorFind/internal/feature/auth/usecase"
	"github.com/Mark1william11/FlavorFind/internal/platform/session"
)

// AuthUsecase defines the auth operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	// Authenticate verifies an identifier/password pair.
	Authenticate(ctx context.Context, identifier, password string) (*entity.User, error)
	// StartSession issues a fresh session, clearing any prior one.
	StartSession(ctx context.Context, user *entity.User, priorToken string) (*entity.Session, error)
	// EndSession removes the session behind token.
	EndSession(ctx context.Context, token string) error
	// CurrentUser resolves a session token to its user, self-healing stale sessions.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for registration, login, logout and
// session status.
type AuthHandler struct {
	auth   AuthUsecase
	secret []byte
}

// NewAuthHandler creates a new AuthHandler. secret signs session cookies.
func NewAuthHandler(auth AuthUsecase, secret []byte) *AuthHandler {
	return &AuthHandler{auth: auth, secret: secret}
}

func publicUser(u *entity.User) dto.UserRes {
	return dto.UserRes{UserID: u.ID, Username: u.Username, Email: u.Email}
}

// Register handles POST /api/auth/register.
// - 400 with field detail on validation failure
// - 409 naming the conflicting field on duplicate username/email
// - 201 with the public user fields on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken), errors.Is(err, usecase.ErrEmailTaken):
			slog.Warn("registration conflict", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("registration failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed due to a server issue"})
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, dto.AuthRes{Message: "User registered successfully!", User: publicUser(user)})
}

// Login handles POST /api/auth/login.
// Both an unknown identifier and a wrong password produce the same 401, so
// responses cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if !errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Error("login lookup failed", "error", err, "remote_addr", c.ClientIP())
		} else {
			slog.Warn("login failed", "remote_addr", c.ClientIP())
		}
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid identifier or password"})
		return
	}

	// Hand any pre-login token to the usecase so it is cleared before a
	// new session is issued.
	priorToken, _ := session.TokenFromCookie(c, h.secret)
	s, err := h.auth.StartSession(c.Request.Context(), user, priorToken)
	if err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed due to a server issue"})
		return
	}

	session.SetCookie(c, s.ID, h.secret)
	slog.Info("user login successful", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusOK, dto.AuthRes{Message: "Login successful!", User: publicUser(user)})
}

// Logout handles POST /api/auth/logout.
// Logging out without an active session reports 401 "not logged in";
// repeating a logout therefore yields the same answer and never fails.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := session.TokenFromCookie(c, h.secret)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not logged in"})
		return
	}

	if err := h.auth.EndSession(c.Request.Context(), token); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			session.ClearCookie(c)
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not logged in"})
			return
		}
		slog.Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed due to a server issue"})
		return
	}

	session.ClearCookie(c)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logout successful!"})
}

// Status handles GET /api/auth/status.
// A cookie whose user no longer exists is cleared here and reported as an
// invalid session; a missing or unknown cookie is simply "not logged in".
func (h *AuthHandler) Status(c *gin.Context) {
	token, ok := session.TokenFromCookie(c, h.secret)
	if !ok {
		c.JSON(http.StatusOK, dto.StatusRes{LoggedIn: false})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			session.ClearCookie(c)
			c.JSON(http.StatusOK, dto.StatusRes{LoggedIn: false})
		case errors.Is(err, usecase.ErrSessionInvalid):
			session.ClearCookie(c)
			c.JSON(http.StatusUnauthorized, dto.StatusRes{LoggedIn: false, Error: "session invalid"})
		default:
			slog.Error("status check failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "status check failed due to a server issue"})
		}
		return
	}

	u := publicUser(user)
	c.JSON(http.StatusOK, dto.StatusRes{LoggedIn: true, User: &u})
}
