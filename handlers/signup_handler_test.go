// SPDX-License-Identifier: GPL-3.0-only

package handlers_test

import (
	"net/http"
	"testing"

	"fitburn-server/db"
	"fitburn-server/handlers"
	"fitburn-server/models"
)

func TestSignupVerifyCreatesUser(t *testing.T) {
	e := setupApp(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/auth/signup", emailSignupRequest("x@y.com"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var signup handlers.SignupResponse
	decodeBody(t, rec, &signup)
	if signup.ChallengeID == "" || len(signup.VerificationCode) != 6 {
		t.Fatalf("Unexpected challenge payload: %+v", signup)
	}

	// No row exists before verification.
	var count int64
	db.Conn.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("Expected no users before verification, got %d", count)
	}

	// A wrong code is rejected, still no row, and the challenge stays live.
	rec = doJSON(t, e, http.MethodPost, "/v1/auth/verify", handlers.VerifySignupRequest{
		ChallengeID: signup.ChallengeID,
		Code:        "000000",
	}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for code mismatch, got %d", rec.Code)
	}
	db.Conn.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("Expected no users after failed verification, got %d", count)
	}

	// The original code still works on retry.
	rec = doJSON(t, e, http.MethodPost, "/v1/auth/verify", handlers.VerifySignupRequest{
		ChallengeID: signup.ChallengeID,
		Code:        signup.VerificationCode,
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var user models.User
	if err := db.Conn.Where("email = ?", "x@y.com").First(&user).Error; err != nil {
		t.Fatalf("Expected user row after verification: %v", err)
	}
	if user.PhoneNumber != nil {
		t.Error("Phone number must stay unset for an email-mode account")
	}
	if user.Age == nil || *user.Age != 30 {
		t.Errorf("Expected age 30, got %v", user.Age)
	}
	if user.Height == nil || *user.Height != 170 {
		t.Errorf("Expected height 170, got %v", user.Height)
	}
	if user.Gender == nil || *user.Gender != models.Male {
		t.Errorf("Expected gender Male, got %v", user.Gender)
	}
	if user.PasswordDigest == "abc123" || user.PasswordDigest == "" {
		t.Error("Password must be stored as a digest, never plaintext")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	e := setupApp(t)
	registerAndLogin(t, e, "x@y.com")

	rec := doJSON(t, e, http.MethodPost, "/v1/auth/signup", emailSignupRequest("x@y.com"), "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("Expected 409 for duplicate email, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSignupValidation(t *testing.T) {
	e := setupApp(t)

	cases := []struct {
		name   string
		mutate func(*handlers.SignupRequest)
	}{
		{"bad email", func(r *handlers.SignupRequest) { r.Email = "a@b" }},
		{"weak password", func(r *handlers.SignupRequest) { r.Password = "abc" }},
		{"unknown mode", func(r *handlers.SignupRequest) { r.Mode = "carrier-pigeon" }},
		{"both identifiers", func(r *handlers.SignupRequest) { r.PhoneNumber = "1234567" }},
		{"bad country", func(r *handlers.SignupRequest) { r.CountryCode = "XX" }},
		{"zero age", func(r *handlers.SignupRequest) { r.Age = 0 }},
		{"zero height", func(r *handlers.SignupRequest) { r.Height = 0 }},
		{"bad gender", func(r *handlers.SignupRequest) { r.Gender = "Other" }},
	}
	for _, c := range cases {
		req := emailSignupRequest("x@y.com")
		c.mutate(&req)
		rec := doJSON(t, e, http.MethodPost, "/v1/auth/signup", req, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", c.name, rec.Code, rec.Body.String())
		}
	}
}

func TestPhoneSignupAndLogin(t *testing.T) {
	e := setupApp(t)

	req := handlers.SignupRequest{
		Mode:        "phone",
		PhoneNumber: "1234567",
		CountryCode: "US",
		Password:    "pass1word",
		Age:         25,
		Height:      165,
		Gender:      "Female",
	}
	rec := doJSON(t, e, http.MethodPost, "/v1/auth/signup", req, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Phone signup failed with status %d: %s", rec.Code, rec.Body.String())
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

	var user models.User
	if err := db.Conn.Where("phone_number = ?", "1234567").First(&user).Error; err != nil {
		t.Fatalf("Expected user row for phone signup: %v", err)
	}
	if user.Email != nil {
		t.Error("Email must stay unset for a phone-mode account")
	}

	rec = doJSON(t, e, http.MethodPost, "/v1/auth/login", handlers.LoginRequest{
		Mode:        "phone",
		PhoneNumber: "1234567",
		Password:    "pass1word",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Phone login failed with status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	e := setupApp(t)
	registerAndLogin(t, e, "x@y.com")

	// Wrong password and unknown identifier must be indistinguishable.
	wrongPassword := doJSON(t, e, http.MethodPost, "/v1/auth/login", handlers.LoginRequest{
		Mode:     "email",
		Email:    "x@y.com",
		Password: "wrong1pass",
	}, "")
	unknownUser := doJSON(t, e, http.MethodPost, "/v1/auth/login", handlers.LoginRequest{
		Mode:     "email",
		Email:    "nobody@y.com",
		Password: "abc123",
	}, "")
	if wrongPassword.Code != http.StatusUnauthorized || unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401/401, got %d/%d", wrongPassword.Code, unknownUser.Code)
	}
	if wrongPassword.Body.String() != unknownUser.Body.String() {
		t.Error("Credential failures must not reveal which field was wrong")
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	e := setupApp(t)
	token := registerAndLogin(t, e, "x@y.com")

	rec := doJSON(t, e, http.MethodGet, "/v1/users/", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for profile, got %d: %s", rec.Code, rec.Body.String())
	}
	var profile handlers.GetUserResponse
	decodeBody(t, rec, &profile)
	if profile.Email == nil || *profile.Email != "x@y.com" {
		t.Errorf("Unexpected profile email: %v", profile.Email)
	}

	rec = doJSON(t, e, http.MethodPost, "/v1/auth/logout", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("Logout failed with status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/users/", nil, token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 after logout, got %d", rec.Code)
	}
}
