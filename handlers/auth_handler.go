// SPX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"time"

	"fitburn-server/commons"
	"fitburn-server/crypto"
	"fitburn-server/db"
	"fitburn-server/models"
	"fitburn-server/verification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// LoginHandler godoc
// @Summary      Login a user
// @Description  Authenticates a user by identifier and password and returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  LoginRequest  true  "Login request payload"
// @Success      200 {object} LoginResponse 	 "Login successful"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/auth/login [post]
func LoginHandler(c echo.Context) error {
	logger := c.Logger()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request payload:", err)
		return echo.ErrBadRequest
	}

	mode := verification.SignupMode(req.Mode)
	var identifier string
	switch mode {
	case verification.EmailMode:
		identifier = req.Email
	case verification.PhoneMode:
		identifier = req.PhoneNumber
	default:
		logger.Error("Unknown login mode.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "mode field must be either 'email' or 'phone'",
		}
	}

	if identifier == "" {
		logger.Error("Identifier is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "identifier for the selected mode is required",
		}
	}
	if req.Password == "" {
		logger.Error("Password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required",
		}
	}

	// Single generic failure for any miss: the response must not reveal
	// whether the identifier or the password was wrong.
	invalidCredentials := &echo.HTTPError{
		Code:    http.StatusUnauthorized,
		Message: "Credentials are incorrect, please check your identifier and password",
	}

	digest := crypto.HashPassword(req.Password)
	user := models.User{}
	column := "email"
	if mode == verification.PhoneMode {
		column = "phone_number"
	}
	err := db.Conn.Where(column+" = ? AND password_digest = ?", identifier, digest).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Credential match failed.")
			return invalidCredentials
		}
		logger.Errorf("Failed to look up user: %v", err)
		return echo.ErrInternalServerError
	}

	sessionToken, err := crypto.GenerateRandomString("st_long_", 32, "hex")
	if err != nil {
		logger.Errorf("Failed to generate session token: %v", err)
		return echo.ErrInternalServerError
	}

	sessionExp := time.Now().Add(30 * 24 * time.Hour)
	sessionLastUsed := time.Now()
	session := models.Session{}

	if err := db.Conn.Where("user_id = ?", user.ID).Assign(models.Session{
		Token:      sessionToken,
		LastUsedAt: &sessionLastUsed,
		ExpiresAt:  &sessionExp,
	}).FirstOrCreate(&session).Error; err != nil {
		logger.Errorf("Failed to create session: %v", err)
		return echo.ErrInternalServerError
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "https://fitburn-server.com",
		"iat": time.Now().Unix(),
		"sub": user.ID,
		"jti": sessionToken,
		"sid": session.ID,
		"uid": user.ID,
		"exp": session.ExpiresAt.Unix(),
	})
	tokenString, err := token.SignedString([]byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key")))
	if err != nil {
		logger.Errorf("Failed to sign token: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, LoginResponse{SessionToken: tokenString, Message: "Login successful"})
}

// LogoutHandler godoc
// @Summary      Logout the current session
// @Description  Clears the active session for the authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object} GenericResponse "Logout successful"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/auth/logout [post]
func LogoutHandler(c echo.Context) error {
	logger := c.Logger()

	session, ok := c.Get("session").(models.Session)
	if !ok {
		logger.Error("No session in context.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired session token, please login again",
		}
	}

	if err := db.Conn.Delete(&session).Error; err != nil {
		logger.Errorf("Failed to delete session: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("User logged out successfully")
	return c.JSON(http.StatusOK, GenericResponse{Message: "Logout successful"})
}
