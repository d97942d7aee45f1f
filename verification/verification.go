// SPDX-License-Identifier: GPL-3.0-only

// Package verification holds the one-time signup challenges. A challenge is
// ephemeral: it lives in process memory for a single signup attempt and is
// discarded once verified, replaced or expired. No account row exists until a
// challenge has been verified.
package verification

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"fitburn-server/crypto"
)

type State int

const (
	Collecting State = iota
	CodeIssued
	Verified
	Abandoned
)

type SignupMode string

const (
	EmailMode SignupMode = "email"
	PhoneMode SignupMode = "phone"
)

// PendingSignup carries the validated signup fields between code issuance and
// code verification. Exactly one of Email/PhoneNumber is set, per Mode.
type PendingSignup struct {
	Mode           SignupMode
	Email          string
	PhoneNumber    string
	CountryCode    string
	PasswordDigest string
	Age            uint
	Height         float64
	Gender         string
}

type Challenge struct {
	ID       string
	Code     string
	Signup   PendingSignup
	State    State
	IssuedAt time.Time
}

var (
	ErrChallengeNotFound = errors.New("verification challenge not found")
	ErrChallengeExpired  = errors.New("verification challenge expired")
	ErrCodeMismatch      = errors.New("verification code mismatch")
)

const challengeTTL = 10 * time.Minute

type Registry struct {
	mu         sync.Mutex
	challenges map[string]*Challenge
}

func NewRegistry() *Registry {
	return &Registry{challenges: make(map[string]*Challenge)}
}

// Challenges is the process-wide registry the handlers go through.
var Challenges = NewRegistry()

// Issue creates a challenge for an already-validated signup and generates its
// 6-digit code. The caller is responsible for presenting the code to the same
// session; there is no delivery channel.
func (r *Registry) Issue(signup PendingSignup) (*Challenge, error) {
	id, err := crypto.GenerateRandomString("vch_", 16, "hex")
	if err != nil {
		return nil, err
	}
	code, err := crypto.GenerateOTP()
	if err != nil {
		return nil, err
	}

	challenge := &Challenge{
		ID:       id,
		Code:     code,
		Signup:   signup,
		State:    CodeIssued,
		IssuedAt: time.Now(),
	}

	r.mu.Lock()
	r.challenges[id] = challenge
	r.mu.Unlock()
	return challenge, nil
}

// Verify checks the entered code against the issued one. On a match the
// challenge is consumed and returned so the account can be created. On a
// mismatch the challenge stays live with the same code, so the user may retry
// until the challenge expires or a fresh signup attempt replaces it.
func (r *Registry) Verify(id, code string) (*Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	challenge, ok := r.challenges[id]
	if !ok {
		return nil, ErrChallengeNotFound
	}

	if time.Since(challenge.IssuedAt) > challengeTTL {
		delete(r.challenges, id)
		challenge.State = Abandoned
		return nil, ErrChallengeExpired
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(challenge.Code)) != 1 {
		return nil, ErrCodeMismatch
	}

	delete(r.challenges, id)
	challenge.State = Verified
	return challenge, nil
}
