// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"fitburn-server/db"
	"fitburn-server/fitness"
	"fitburn-server/middlewares"
	"fitburn-server/ml"
	"fitburn-server/models"

	"github.com/labstack/echo/v4"
)

// CreatePredictionHandler godoc
// @Summary      Predict and record calories burned
// @Description  Builds the feature vector from the stored profile and the submitted workout metrics, runs the calorie model and persists the result.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        createPredictionRequest  body  CreatePredictionRequest  true  "Workout metrics"
// @Success      201 {object} CreatePredictionResponse "Prediction saved"
// @Failure      400 {object} echo.HTTPError  "Bad request, non-positive metrics"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error or incomplete profile"
// @Router       /v1/predictions [post]
func CreatePredictionHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req CreatePredictionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid prediction request payload:", err)
		return echo.ErrBadRequest
	}

	for field, value := range map[string]float64{
		"weight":     req.Weight,
		"duration":   req.Duration,
		"heart_rate": req.HeartRate,
		"body_temp":  req.BodyTemp,
	} {
		if value <= 0 {
			logger.Errorf("Non-positive %s submitted.", field)
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("%s field must be a positive number", field),
			}
		}
	}

	// Signup guarantees these attributes; a hole here is a data error, never
	// something to default over.
	if user.Age == nil || user.Height == nil || user.Gender == nil {
		logger.Errorf("User %d is missing stored age/height/gender.", user.ID)
		return &echo.HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Account profile is incomplete; cannot run a prediction",
		}
	}

	heightMeters := *user.Height / 100.0
	features := ml.Features(
		float64(*user.Age),
		req.Weight,
		req.Duration,
		req.HeartRate,
		req.BodyTemp,
		*user.Gender == models.Male,
		heightMeters,
	)

	calories, err := ml.Calories.Estimate(features)
	if err != nil {
		logger.Errorf("Model inference failed: %v", err)
		return echo.ErrInternalServerError
	}

	prediction := models.Prediction{
		Weight:            req.Weight,
		Duration:          req.Duration,
		HeartRate:         req.HeartRate,
		BodyTemp:          req.BodyTemp,
		PredictedCalories: calories,
		UserID:            user.ID,
	}
	if err := db.Conn.Create(&prediction).Error; err != nil {
		logger.Errorf("Failed to save prediction: %v", err)
		return echo.ErrInternalServerError
	}

	bmi := fitness.BMI(req.Weight, heightMeters)
	category, advice := fitness.Advice(req.Weight, heightMeters)

	logger.Infof("Prediction saved successfully")
	return c.JSON(http.StatusCreated, CreatePredictionResponse{
		PredictionID: prediction.PID.String(),
		Calories:     calories,
		BMI:          bmi,
		BMICategory:  string(category),
		Advice:       advice,
		CreatedAt:    prediction.CreatedAt.Format(time.RFC3339),
		Message:      "Prediction saved successfully",
	})
}

// GetPredictionsHandler godoc
// @Summary      Get prediction history
// @Description  Retrieves the authenticated user's predictions, newest first. An account with no predictions gets an empty list.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        page      query   int  false  "Page number (default 1)"
// @Param        page_size query   int  false  "Page size (default 10, max 100)"
// @Success      200 {object} PredictionListResponse "Paginated prediction history"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/predictions [get]
func GetPredictionsHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	page := 1
	pageSize := 10
	if p := c.QueryParam("page"); p != "" {
		if _, err := fmt.Sscanf(p, "%d", &page); err != nil || page < 1 {
			page = 1
		}
	}
	if ps := c.QueryParam("page_size"); ps != "" {
		if _, err := fmt.Sscanf(ps, "%d", &pageSize); err != nil || pageSize < 1 {
			pageSize = 10
		}
	}
	if pageSize > 100 {
		pageSize = 100
	}

	var total int64
	if err := db.Conn.Model(&models.Prediction{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		logger.Errorf("Failed to count predictions: %v", err)
		return echo.ErrInternalServerError
	}

	var predictions []models.Prediction
	if err := db.Conn.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&predictions).Error; err != nil {
		logger.Errorf("Failed to fetch predictions: %v", err)
		return echo.ErrInternalServerError
	}

	data := make([]PredictionDetails, 0, len(predictions))
	for _, prediction := range predictions {
		data = append(data, PredictionDetails{
			PredictionID: prediction.PID.String(),
			Weight:       prediction.Weight,
			Duration:     prediction.Duration,
			HeartRate:    prediction.HeartRate,
			BodyTemp:     prediction.BodyTemp,
			Calories:     prediction.PredictedCalories,
			CreatedAt:    prediction.CreatedAt.Format(time.RFC3339),
		})
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return c.JSON(http.StatusOK, PredictionListResponse{
		Data: data,
		Pagination: PaginationDetails{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
		Message: "Predictions retrieved successfully",
	})
}

// GetPredictionTrendHandler godoc
// @Summary      Get weight and BMI trend series
// @Description  Computes the (dates, weights, bmis) series ascending by timestamp for external charting; nothing is rendered server-side.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object} TrendResponse   "Trend series"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error or incomplete profile"
// @Router       /v1/predictions/trend [get]
func GetPredictionTrendHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	if user.Height == nil {
		logger.Errorf("User %d is missing stored height.", user.ID)
		return &echo.HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Account profile is incomplete; cannot compute BMI trend",
		}
	}
	heightMeters := *user.Height / 100.0

	var predictions []models.Prediction
	if err := db.Conn.Where("user_id = ?", user.ID).
		Order("created_at ASC").
		Find(&predictions).Error; err != nil {
		logger.Errorf("Failed to fetch predictions: %v", err)
		return echo.ErrInternalServerError
	}

	dates := make([]string, 0, len(predictions))
	weights := make([]float64, 0, len(predictions))
	for _, prediction := range predictions {
		dates = append(dates, prediction.CreatedAt.Format(time.RFC3339))
		weights = append(weights, prediction.Weight)
	}

	return c.JSON(http.StatusOK, TrendResponse{
		Dates:   dates,
		Weights: weights,
		BMIs:    fitness.BMISeries(weights, heightMeters),
		Message: "Trend series retrieved successfully",
	})
}

// GetPredictionSummaryHandler godoc
// @Summary      Get prediction summary
// @Description  Aggregates the authenticated user's prediction history for the dashboard.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object} PredictionSummaryResponse "Prediction summary"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/predictions/summary [get]
func GetPredictionSummaryHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var totals struct {
		TotalCount      int64
		TotalCalories   float64
		AverageCalories float64
	}
	if err := db.Conn.Model(&models.Prediction{}).
		Select("COUNT(*) as total_count, COALESCE(SUM(predicted_calories), 0) as total_calories, COALESCE(AVG(predicted_calories), 0) as average_calories").
		Where("user_id = ?", user.ID).
		Scan(&totals).Error; err != nil {
		logger.Errorf("Failed to aggregate predictions: %v", err)
		return echo.ErrInternalServerError
	}

	var latestWeight *float64
	if totals.TotalCount > 0 {
		latest := models.Prediction{}
		if err := db.Conn.Where("user_id = ?", user.ID).
			Order("created_at DESC").
			First(&latest).Error; err != nil {
			logger.Errorf("Failed to fetch latest prediction: %v", err)
			return echo.ErrInternalServerError
		}
		latestWeight = &latest.Weight
	}

	return c.JSON(http.StatusOK, PredictionSummaryResponse{
		Data: PredictionSummaryData{
			TotalCount:      totals.TotalCount,
			TotalCalories:   totals.TotalCalories,
			AverageCalories: totals.AverageCalories,
			LatestWeight:    latestWeight,
		},
		Message: "Prediction summary retrieved successfully",
	})
}
