// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

var AllModels []any

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// User rows are created once at verified signup and never updated or deleted.
// Exactly one of Email/PhoneNumber is populated, depending on the signup mode.
// Age, Height and Gender are nullable only to accommodate rows written before
// those columns existed; new rows always carry them.
type User struct {
	ID             uint     `gorm:"primaryKey"`
	Email          *string  `gorm:"uniqueIndex;default:null"`
	PhoneNumber    *string  `gorm:"uniqueIndex;default:null"`
	CountryCode    string   `gorm:"size:8"`
	PasswordDigest string   `gorm:"not null"`
	Age            *uint    `gorm:"default:null"`
	Height         *float64 `gorm:"default:null"` // centimeters
	Gender         *Gender  `gorm:"size:16;default:null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func init() {
	AllModels = append(AllModels, &User{})
}
