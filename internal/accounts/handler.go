package accounts

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sherlinsilvia14/MKV-co/internal/auth"
	"github.com/Sherlinsilvia14/MKV-co/internal/db"
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/account"
)

type Store interface {
	Create(ctx context.Context, name, whatsapp, passwordHash, address, role string) (account.Account, error)
	ByWhatsApp(ctx context.Context, whatsapp string) (account.Account, error)
	Verify(ctx context.Context, whatsapp, password string) (account.Account, error)
}

type Handler struct {
	store Store
	jwt   *auth.JWTManager

	// adminWhatsApp gets the admin role at signup; the capability check for
	// adding products lives server-side, not in the client.
	adminWhatsApp string
}

func NewHandler(store Store, jwt *auth.JWTManager, adminWhatsApp string) *Handler {
	return &Handler{store: store, jwt: jwt, adminWhatsApp: adminWhatsApp}
}

type signupReq struct {
	Name     string `json:"name" binding:"required"`
	WhatsApp string `json:"whatsapp" binding:"required"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
}

type loginReq struct {
	WhatsApp string `json:"whatsapp" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.WhatsApp = strings.TrimSpace(req.WhatsApp)

	pwHash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password hash failed"})
		return
	}

	role := account.RoleUser
	if h.adminWhatsApp != "" && req.WhatsApp == h.adminWhatsApp {
		role = account.RoleAdmin
	}

	a, err := h.store.Create(c.Request.Context(), req.Name, req.WhatsApp, pwHash, req.Address, role)
	if errors.Is(err, ErrDuplicateWhatsApp) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User with this WhatsApp number already exists"})
		return
	}
	if err != nil {
		if db.Unavailable(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not connected. Please try again later."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during signup"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"user":    publicUser(a),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.store.Verify(c.Request.Context(), strings.TrimSpace(req.WhatsApp), req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		if db.Unavailable(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not connected. Please try again later."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during login"})
		return
	}

	access, exp, _ := h.jwt.SignAccess(a.ID, a.Role)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"user":         publicUser(a),
		"access_token": access,
		"access_exp":   exp,
	})
}

func (h *Handler) GetByWhatsApp(c *gin.Context) {
	a, err := h.store.ByWhatsApp(c.Request.Context(), c.Param("whatsapp"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		if db.Unavailable(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not connected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error fetching user"})
		return
	}
	c.JSON(http.StatusOK, publicUser(a))
}

func publicUser(a account.Account) gin.H {
	return gin.H{
		"name":     a.Name,
		"whatsapp": a.WhatsApp,
		"address":  a.Address,
	}
}
