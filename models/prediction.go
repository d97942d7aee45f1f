// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prediction captures one calorie estimate: the session inputs, the model
// output and the creation timestamp used as the history sort key. Rows are
// immutable once written.
type Prediction struct {
	ID                uint      `gorm:"primaryKey"`
	PID               uuid.UUID `gorm:"type:uuid;not null"`
	Weight            float64   `gorm:"not null"` // kilograms
	Duration          float64   `gorm:"not null"` // minutes
	HeartRate         float64   `gorm:"not null"`
	BodyTemp          float64   `gorm:"not null"` // celsius
	PredictedCalories float64   `gorm:"not null"`
	CreatedAt         time.Time
	UserID            uint
	User              User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (prediction *Prediction) BeforeCreate(tx *gorm.DB) (err error) {
	prediction.PID = uuid.New()
	return
}

func init() {
	AllModels = append(AllModels, &Prediction{})
}
