// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"fitburn-server/crypto"
	"fitburn-server/db"
	"fitburn-server/models"
	"fitburn-server/validation"
	"fitburn-server/verification"

	"github.com/labstack/echo/v4"
	"github.com/nyaruka/phonenumbers"
	"gorm.io/gorm"
)

// SignupHandler godoc
// @Summary      Start a signup attempt
// @Description  Validates the signup fields and issues a one-time verification challenge. No account is created until the challenge is answered.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signupRequest  body  SignupRequest  true  "Signup request payload"
// @Success      200 {object} SignupResponse 	 "Verification code issued"
// @Failure      400 {object} echo.HTTPError     "Bad request, malformed or missing fields"
// @Failure      409 {object} echo.HTTPError     "Duplicate identifier"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/auth/signup [post]
func SignupHandler(c echo.Context) error {
	logger := c.Logger()

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid signup request payload:", err)
		return echo.ErrBadRequest
	}

	mode := verification.SignupMode(req.Mode)
	var identifier string
	switch mode {
	case verification.EmailMode:
		if !validation.ValidateEmail(req.Email) {
			logger.Error("Invalid email format.")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Invalid email format",
			}
		}
		if req.PhoneNumber != "" {
			logger.Error("Phone number supplied in email mode.")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "phone_number must be empty in email mode",
			}
		}
		identifier = req.Email
	case verification.PhoneMode:
		if !validation.ValidatePhone(req.PhoneNumber) {
			logger.Error("Invalid phone number.")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Invalid phone number",
			}
		}
		if req.Email != "" {
			logger.Error("Email supplied in phone mode.")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "email must be empty in phone mode",
			}
		}
		identifier = req.PhoneNumber
	default:
		logger.Error("Unknown signup mode.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "mode field must be either 'email' or 'phone'",
		}
	}

	if validation.PasswordStrength(req.Password) == validation.Weak {
		logger.Error("Password too weak.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Password too weak",
		}
	}

	countryCodeNum := phonenumbers.GetCountryCodeForRegion(req.CountryCode)
	if countryCodeNum == 0 {
		logger.Error("Invalid country code.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "country_code field must be a valid ISO 3166-1 alpha-2 country code.",
		}
	}

	if req.Age == 0 {
		logger.Error("Age is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "age field must be a positive integer",
		}
	}
	if req.Height <= 0 {
		logger.Error("Height is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "height field must be a positive number of centimeters",
		}
	}
	gender := models.Gender(req.Gender)
	if gender != models.Male && gender != models.Female {
		logger.Error("Invalid gender.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "gender field must be either 'Male' or 'Female'",
		}
	}

	if err := findByIdentifier(mode, identifier, &models.User{}); err == nil {
		logger.Errorf("This %s is already registered.", mode)
		return &echo.HTTPError{
			Code:    http.StatusConflict,
			Message: "Email/Phone already exists, please try another one.",
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Errorf("Failed to check existing identifier: %v", err)
		return echo.ErrInternalServerError
	}

	challenge, err := verification.Challenges.Issue(verification.PendingSignup{
		Mode:           mode,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		CountryCode:    req.CountryCode,
		PasswordDigest: crypto.HashPassword(req.Password),
		Age:            req.Age,
		Height:         req.Height,
		Gender:         req.Gender,
	})
	if err != nil {
		logger.Errorf("Failed to issue verification challenge: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Verification challenge issued")
	return c.JSON(http.StatusOK, SignupResponse{
		ChallengeID:      challenge.ID,
		VerificationCode: challenge.Code,
		Message:          "Verification code issued, enter it to complete signup",
	})
}

// VerifySignupHandler godoc
// @Summary      Complete a signup attempt
// @Description  Checks the verification code and durably creates the account on a match. A mismatch keeps the challenge live for retry.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        verifySignupRequest  body  VerifySignupRequest  true  "Verification payload"
// @Success      201 {object} GenericResponse  "Signup successful"
// @Failure      400 {object} echo.HTTPError   "Bad request or code mismatch"
// @Failure      409 {object} echo.HTTPError   "Duplicate identifier"
// @Failure      410 {object} echo.HTTPError   "Challenge expired"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /v1/auth/verify [post]
func VerifySignupHandler(c echo.Context) error {
	logger := c.Logger()

	var req VerifySignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid verification request payload:", err)
		return echo.ErrBadRequest
	}

	if req.ChallengeID == "" {
		logger.Error("Challenge ID is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "challenge_id field is required",
		}
	}
	if req.Code == "" {
		logger.Error("Verification code is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "code field is required",
		}
	}

	challenge, err := verification.Challenges.Verify(req.ChallengeID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrCodeMismatch):
			logger.Error("Verification code mismatch.")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Invalid verification code, please try again",
			}
		case errors.Is(err, verification.ErrChallengeExpired):
			logger.Error("Verification challenge expired.")
			return &echo.HTTPError{
				Code:    http.StatusGone,
				Message: "Verification challenge has expired. Please start signup again.",
			}
		default:
			logger.Error("Verification challenge not found.")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Unknown or already completed verification challenge",
			}
		}
	}

	signup := challenge.Signup
	gender := models.Gender(signup.Gender)
	user := models.User{
		CountryCode:    signup.CountryCode,
		PasswordDigest: signup.PasswordDigest,
		Age:            &signup.Age,
		Height:         &signup.Height,
		Gender:         &gender,
	}
	if signup.Mode == verification.EmailMode {
		user.Email = &signup.Email
	} else {
		user.PhoneNumber = &signup.PhoneNumber
	}

	if err := db.Conn.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Error("Identifier registered while the challenge was pending.")
			return &echo.HTTPError{
				Code:    http.StatusConflict,
				Message: "Email/Phone already exists, please try another one.",
			}
		}
		logger.Errorf("Failed to create user: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("User signed up successfully")
	return c.JSON(http.StatusCreated, GenericResponse{Message: "Signup successful. Please login."})
}

// findByIdentifier looks a user up by the mode's unique identifier.
func findByIdentifier(mode verification.SignupMode, identifier string, user *models.User) error {
	if mode == verification.EmailMode {
		return db.Conn.Where("email = ?", identifier).First(user).Error
	}
	return db.Conn.Where("phone_number = ?", identifier).First(user).Error
}
