package handlers

import (
	"errors"
	"net/http"

	"github.com/gustavokauee/TaskFlex/internal/dto"
	"github.com/gustavokauee/TaskFlex/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userSvc *service.UserService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "missing required fields"})
		return
	}
	_, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "missing required fields"})
			return
		}
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, dto.MessageResponse{Message: "username or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "user created successfully"})
}

// Login godoc
// @Summary      Login
// @Description  Checks credentials and returns the user id the client must
// @Description  send on task operations. No token or cookie is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "invalid credentials"})
		return
	}
	user, err := h.userSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "login failed"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:  "login successful",
		UserID:   user.ID,
		Username: user.Username,
	})
}
