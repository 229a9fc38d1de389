package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cardfolio/cardfolio/internal/auth"
	"github.com/cardfolio/cardfolio/internal/models"
)

// Login is the handler for POST /api/login (step 1 of the 2FA flow).
// A correct email/password pair gets a fresh 6-digit code persisted on the
// user row; re-running this step overwrites any pending code.
func (h *Handlers) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.DB.QueryRow(
		`SELECT id, email, password, role, otp_code, otp_expiry, created_at FROM users WHERE email = ?`,
		input.Email,
	).Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.OTPCode, &user.OTPExpiry, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Same response as a wrong password: the caller learns nothing
		// about which half was wrong.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		h.storageError(c, err)
		return
	}

	// Exact, case-sensitive comparison against the stored value.
	if user.Password != input.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	code, expiry := auth.GenerateOTP()

	if _, err := h.DB.Exec(
		`UPDATE users SET otp_code = ?, otp_expiry = ? WHERE email = ?`,
		code, expiry, input.Email,
	); err != nil {
		h.storageError(c, err)
		return
	}

	if err := h.Notifier.SendOTP(input.Email, code); err != nil && h.Logger != nil {
		h.Logger.Warn("otp delivery failed", zap.String("email", input.Email), zap.Error(err))
	}

	// simulatedCode stands in for a real email/SMS dispatch so the flow can
	// be tested end to end without a delivery provider.
	c.JSON(http.StatusOK, gin.H{
		"requires2FA":   true,
		"email":         input.Email,
		"simulatedCode": code,
	})
}

// VerifyOTP is the handler for POST /api/verify-otp (step 2 of the 2FA
// flow). The code is single use: both OTP columns are cleared on success.
func (h *Handlers) VerifyOTP(c *gin.Context) {
	var input models.VerifyOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.DB.QueryRow(
		`SELECT id, email, password, role, otp_code, otp_expiry, created_at FROM users WHERE email = ? AND otp_code = ? AND otp_expiry > NOW()`,
		input.Email, input.Code,
	).Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.OTPCode, &user.OTPExpiry, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
		return
	}
	if err != nil {
		h.storageError(c, err)
		return
	}

	if _, err := h.DB.Exec(
		`UPDATE users SET otp_code = NULL, otp_expiry = NULL WHERE id = ?`,
		user.ID,
	); err != nil {
		h.storageError(c, err)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign session token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   token,
	})
}
