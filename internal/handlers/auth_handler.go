package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/shop-booking/internal/clock"
	"github.com/BruksfildServices01/shop-booking/internal/config"
	"github.com/BruksfildServices01/shop-booking/internal/domain/user"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/httpresp"
	"github.com/BruksfildServices01/shop-booking/internal/middleware"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/validators"
)

type AuthHandler struct {
	users  user.Repository
	config *config.Config
	clock  clock.Clock
}

func NewAuthHandler(users user.Repository, cfg *config.Config, clk clock.Clock) *AuthHandler {
	return &AuthHandler{users: users, config: cfg, clock: clk}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// --------- Handlers ---------

// Register opens a customer account. Staff seats are granted per shop.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Invalid e-mail address.")
		return
	}
	if h.config.CheckEmailDomain && !validators.IsEmailDomainValid(c.Request.Context(), email) {
		httperr.BadRequest(c, "invalid_email_domain", "The e-mail domain does not seem to exist.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	u := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         models.PlatformRoleCustomer,
	}
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		httperr.FromError(c, err)
		return
	}

	token, err := h.generateToken(u)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, AuthResponse{User: u, Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			err = user.ErrInvalidCredentials
		}
		httperr.FromError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		httperr.FromError(c, user.ErrInvalidCredentials)
		return
	}

	token, err := h.generateToken(u)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, AuthResponse{User: u, Token: token})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(u *models.User) (string, error) {
	return middleware.SignToken(h.config.JWTSecret, h.config.JWTTTL, u.ID, u.Role, h.clock.Now())
}
