// SPDX-License-Identifier: GPL-3.0-only

package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitburn-server/db"
	"fitburn-server/handlers"
	"fitburn-server/ml"
	"fitburn-server/models"
	"fitburn-server/routes"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp wires the full route table against a fresh in-memory store and a
// known model: identity scaler, calories = 100 + weight.
func setupApp(t *testing.T) *echo.Echo {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	name := strings.ReplaceAll(t.Name(), "/", "_")
	conn, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	db.Conn = conn
	if err := conn.AutoMigrate(models.AllModels...); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	model, err := ml.New(
		&ml.Scaler{
			Mean:  []float64{0, 0, 0, 0, 0, 0, 0},
			Scale: []float64{1, 1, 1, 1, 1, 1, 1},
		},
		&ml.Regressor{
			Coefficients: []float64{0, 1, 0, 0, 0, 0, 0},
			Intercept:    100,
		},
	)
	if err != nil {
		t.Fatalf("Failed to build test model: %v", err)
	}
	ml.Calories = model

	e := echo.New()
	e.HideBanner = true
	routes.RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func emailSignupRequest(email string) handlers.SignupRequest {
	return handlers.SignupRequest{
		Mode:        "email",
		Email:       email,
		CountryCode: "EG",
		Password:    "abc123",
		Age:         30,
		Height:      170,
		Gender:      "Male",
	}
}

// registerAndLogin walks signup, verification and login and returns the
// session token.
func registerAndLogin(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/v1/auth/signup", emailSignupRequest(email), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Signup failed with status %d: %s", rec.Code, rec.Body.String())
	}
	var signup handlers.SignupResponse
	decodeBody(t, rec, &signup)

	rec = doJSON(t, e, http.MethodPost, "/v1/auth/verify", handlers.VerifySignupRequest{
		ChallengeID: signup.ChallengeID,
		Code:        signup.VerificationCode,
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("Verification failed with status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodPost, "/v1/auth/login", handlers.LoginRequest{
		Mode:     "email",
		Email:    email,
		Password: "abc123",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", rec.Code, rec.Body.String())
	}
	var login handlers.LoginResponse
	decodeBody(t, rec, &login)
	return login.SessionToken
}
