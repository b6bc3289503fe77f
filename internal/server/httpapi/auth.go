package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"github.com/mdrrmo4516/mobile2026/internal/server/services"
)

type accountRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone"`
}

func (r accountRequest) input() services.AccountInput {
	return services.AccountInput{Email: r.Email, Password: r.Password, FullName: r.FullName, Phone: r.Phone}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        *models.Principal `json:"user"`
}

func newTokenResponse(res *services.AuthResult) tokenResponse {
	return tokenResponse{AccessToken: res.Token, TokenType: "bearer", User: res.User}
}

func (h *Handler) register(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.Users.Register(c.Request.Context(), req.input())
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, newTokenResponse(res))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, newTokenResponse(res))
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, principal(c))
}

// logout is acknowledged only. Tokens are stateless and stay valid until
// they expire.
func (h *Handler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// bootstrap is the one privileged mutation reachable without a token.
func (h *Handler) bootstrap(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.Users.Bootstrap(c.Request.Context(), req.input())
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, newTokenResponse(res))
}
