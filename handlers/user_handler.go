// SPX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"time"

	"fitburn-server/middlewares"

	"github.com/labstack/echo/v4"
)

// GetUserHandler godoc
// @Summary      Get user details
// @Description  Retrieves the profile of the authenticated user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object}  GetUserResponse 	 "User retrieved successfully"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/users/ [get]
func GetUserHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var gender *string
	if user.Gender != nil {
		g := string(*user.Gender)
		gender = &g
	}

	return c.JSON(http.StatusOK, GetUserResponse{
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		CountryCode: user.CountryCode,
		Age:         user.Age,
		Height:      user.Height,
		Gender:      gender,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		Message:     "User retrieved successfully",
	})
}
