// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

// Session is the single live login per user; login upserts it, logout deletes
// it.
type Session struct {
	ID         uint   `gorm:"primaryKey"`
	Token      string `gorm:"not null;uniqueIndex"`
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	UserID     uint
	User       User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func init() {
	AllModels = append(AllModels, &Session{})
}
