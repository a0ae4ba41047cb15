package stub

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hospitrack/ncs-console/internal/model"
)

func (s *Server) handleLogin(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := s.store.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"detail": "No active account found with the given credentials",
		})
		return
	}

	tokens, err := s.issuer.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to issue tokens")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Token generation failed."})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (s *Server) handleCurrentUser(c *gin.Context) {
	username := c.GetString(userKey)
	user, err := s.store.UserByName(username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "User inactive or deleted."})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleRegister(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.Role == "" {
		req.Role = model.RoleNurse
	}

	user, err := s.store.CreateUser(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{
				"username": []string{"A user with that username already exists."},
			})
			return
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Registration failed."})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (s *Server) handleChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	username := c.GetString(userKey)
	if !s.store.CheckPassword(username, req.OldPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"old_password": []string{"Wrong password."}})
		return
	}

	if err := s.store.SetPassword(username, req.NewPassword); err != nil {
		s.logger.Error().Err(err).Msg("failed to set password")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Password update failed."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Password updated successfully."})
}

func (s *Server) handleForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := s.store.UserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"email": "User not found."})
		return
	}

	token := s.resets.Issue(user.Username)
	if err := s.mailer.SendResetToken(user.Email, token); err != nil {
		s.logger.Error().Err(err).Msg("failed to deliver reset token")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to send reset email."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Reset token sent."})
}

func (s *Server) handleResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	username, ok := s.resets.Redeem(req.Token)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"token": "Invalid token."})
		return
	}

	if err := s.store.SetPassword(username, req.NewPassword); err != nil {
		s.logger.Error().Err(err).Msg("failed to reset password")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Password reset failed."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Password reset successful."})
}

// listHandler serves one resource collection.
func listHandler[T any](list func() []T) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, list())
	}
}
