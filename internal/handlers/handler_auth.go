package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
	"github.com/SscSPs/healthcare_assistant_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles signup and login.
type authHandler struct {
	credentials portssvc.CredentialSvc
	tokens      portssvc.TokenSvc
}

func newAuthHandler(credentials portssvc.CredentialSvc, tokens portssvc.TokenSvc) *authHandler {
	return &authHandler{credentials: credentials, tokens: tokens}
}

// registerAuthRoutes sets up the public authentication routes behind limit.
func registerAuthRoutes(r *gin.Engine, limit gin.HandlerFunc, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Credential, services.Token)

	auth := r.Group("/api/v1/auth", limit)
	{
		auth.POST("/signup", h.signup)
		auth.POST("/login", h.login)
	}
}

// signup godoc
// @Summary Sign up
// @Description Creates an account and logs the new user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup form"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid username"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind signup request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	msg, err := h.credentials.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		respondError(c, err, "sign up")
		return
	}

	token, _, err := h.tokens.GenerateAccessToken(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, err, "generate token")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Message: string(msg), Username: req.Username, Token: token})
}

// login godoc
// @Summary Log in
// @Description Checks the credentials and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login form"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	msg, err := h.credentials.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "log in")
		return
	}

	token, _, err := h.tokens.GenerateAccessToken(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, err, "generate token")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Message: string(msg), Username: req.Username, Token: token})
}
