package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

// IssueToken exchanges the admin password for a signed token that unlocks
// the mutation routes.
func (ctrl *Controller) IssueToken(c *gin.Context) {
	password := c.PostForm("password")
	if password == "" || ctrl.Auth.AdminPasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(ctrl.Auth.AdminPasswordHash), []byte(password)) != nil {
		ctrl.Log.Warn("Rejected token request", zap.String("ip", c.ClientIP()))
		ctrl.fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	now := time.Now()
	expiresAt := now.Add(ctrl.Auth.TokenTTL)
	token, err := SignToken(ctrl.Auth.JWTSecret, adminSubject, now, expiresAt)
	if err != nil {
		ctrl.Log.Error("Failed to sign token", zap.Error(err))
		ctrl.fail(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	ctrl.respond(c, http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

// SignToken returns an HS256 token for subject valid until expiresAt.
func SignToken(secret, subject string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
