package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munchbox/munchbox/internal/auth"
	"github.com/munchbox/munchbox/internal/metrics"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	identity, err := s.authenticator.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := s.jwt.Generate(identity)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"isAdmin": identity.Admin,
		"user":    identity.User,
		"token":   token,
	})
}

func (s *Server) signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := s.authenticator.Signup(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	metrics.Signups.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}
