// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model SignupRequest
type SignupRequest struct {
	// Signup mode, either "email" or "phone"
	// required: true
	Mode string `json:"mode" example:"email"`
	// User's email address, required in email mode
	Email string `json:"email" example:"user@example.com"`
	// User's phone number (digits only), required in phone mode
	PhoneNumber string `json:"phone_number" example:"1234567890"`
	// User's ISO 3166-1 alpha-2 country code
	CountryCode string `json:"country_code" example:"EG"`
	// User's password
	// required: true
	Password string `json:"password" example:"MySecretPassword123"`
	// User's age in years
	// required: true
	Age uint `json:"age" example:"30"`
	// User's height in centimeters
	// required: true
	Height float64 `json:"height" example:"170"`
	// User's gender, either "Male" or "Female"
	// required: true
	Gender string `json:"gender" example:"Male"`
}

// swagger:model SignupResponse
type SignupResponse struct {
	// Identifier of the verification challenge to complete
	ChallengeID string `json:"challenge_id" example:"vch_a1b2c3d4e5f6789"`
	// 6-digit verification code. Displayed to the signing-up session directly;
	// no delivery channel exists.
	VerificationCode string `json:"verification_code" example:"482913"`
	// Message indicating the next step
	Message string `json:"message" example:"Verification code issued"`
}

// swagger:model VerifySignupRequest
type VerifySignupRequest struct {
	// Identifier of the challenge being answered
	// required: true
	ChallengeID string `json:"challenge_id" example:"vch_a1b2c3d4e5f6789"`
	// The code the user was shown
	// required: true
	Code string `json:"code" example:"482913"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// Login mode, either "email" or "phone"
	// required: true
	Mode string `json:"mode" example:"email"`
	// User's email address, used in email mode
	Email string `json:"email" example:"user@example.com"`
	// User's phone number, used in phone mode
	PhoneNumber string `json:"phone_number" example:"1234567890"`
	// User's password
	// required: true
	Password string `json:"password" example:"MySecretPassword123"`
}

// swagger:model LoginResponse
type LoginResponse struct {
	// Session token for subsequent authenticated requests, used in the
	// Authorization header as a Bearer token.
	SessionToken string `json:"session_token" example:"sample_session_token"`
	// Message indicating successful operation
	Message string `json:"message" example:"Login successful"`
}

// swagger:model GetUserResponse
type GetUserResponse struct {
	// Email address, set for email-mode accounts
	Email *string `json:"email" example:"user@example.com"`
	// Phone number, set for phone-mode accounts
	PhoneNumber *string `json:"phone_number" example:"1234567890"`
	// ISO 3166-1 alpha-2 country code
	CountryCode string `json:"country_code" example:"EG"`
	// Age in years
	Age *uint `json:"age" example:"30"`
	// Height in centimeters
	Height *float64 `json:"height" example:"170"`
	// Gender
	Gender *string `json:"gender" example:"Male"`
	// Account creation timestamp
	CreatedAt string `json:"created_at" example:"2023-10-01T12:00:00Z"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"User retrieved successfully"`
}

// swagger:model CreatePredictionRequest
type CreatePredictionRequest struct {
	// Body weight in kilograms at workout time
	// required: true
	Weight float64 `json:"weight" example:"70"`
	// Workout duration in minutes
	// required: true
	Duration float64 `json:"duration" example:"30"`
	// Average heart rate during the workout
	// required: true
	HeartRate float64 `json:"heart_rate" example:"120"`
	// Body temperature in celsius
	// required: true
	BodyTemp float64 `json:"body_temp" example:"37.5"`
}

// swagger:model CreatePredictionResponse
type CreatePredictionResponse struct {
	// Public identifier of the stored prediction
	PredictionID string `json:"prediction_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Predicted calories burned
	Calories float64 `json:"calories" example:"213.4"`
	// Body-mass index computed from the submitted weight and stored height
	BMI float64 `json:"bmi" example:"24.22"`
	// BMI category
	BMICategory string `json:"bmi_category" example:"Normal"`
	// Advisory message for the BMI category
	Advice string `json:"advice" example:"Normal: Maintain diet & workout."`
	// Timestamp of when the prediction was stored
	CreatedAt string `json:"created_at" example:"2023-10-01T12:00:00Z"`
	// Message indicating successful prediction
	Message string `json:"message" example:"Prediction saved successfully"`
}

// swagger:model PredictionDetails
type PredictionDetails struct {
	// Public identifier of the prediction
	PredictionID string `json:"prediction_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Body weight in kilograms
	Weight float64 `json:"weight" example:"70"`
	// Workout duration in minutes
	Duration float64 `json:"duration" example:"30"`
	// Average heart rate
	HeartRate float64 `json:"heart_rate" example:"120"`
	// Body temperature in celsius
	BodyTemp float64 `json:"body_temp" example:"37.5"`
	// Predicted calories burned
	Calories float64 `json:"calories" example:"213.4"`
	// Timestamp of when the prediction was stored
	CreatedAt string `json:"created_at" example:"2023-10-01T12:00:00Z"`
}

// swagger:model PaginationDetails
type PaginationDetails struct {
	// Current page number
	Page int `json:"page"`
	// Page size
	PageSize int `json:"page_size"`
	// Total number of items
	Total int64 `json:"total"`
	// Total number of pages
	TotalPages int `json:"total_pages"`
}

// swagger:model PredictionListResponse
type PredictionListResponse struct {
	// Predictions, newest first
	Data []PredictionDetails `json:"data"`
	// Pagination details
	Pagination PaginationDetails `json:"pagination"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Predictions retrieved successfully"`
}

// swagger:model TrendResponse
type TrendResponse struct {
	// Prediction timestamps, oldest first
	Dates []string `json:"dates"`
	// Weights per prediction, aligned with dates
	Weights []float64 `json:"weights"`
	// BMI per prediction, aligned with dates
	BMIs []float64 `json:"bmis"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Trend series retrieved successfully"`
}

// swagger:model PredictionSummaryData
type PredictionSummaryData struct {
	// Total number of stored predictions
	TotalCount int64 `json:"total_count" example:"12"`
	// Sum of predicted calories across all predictions
	TotalCalories float64 `json:"total_calories" example:"2561.7"`
	// Average predicted calories per workout
	AverageCalories float64 `json:"average_calories" example:"213.5"`
	// Weight recorded with the most recent prediction
	LatestWeight *float64 `json:"latest_weight" example:"70"`
}

// swagger:model PredictionSummaryResponse
type PredictionSummaryResponse struct {
	Data    PredictionSummaryData `json:"data"`
	Message string                `json:"message" example:"Prediction summary retrieved successfully"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message"`
}
