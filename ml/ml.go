// SPDX-License-Identifier: GPL-3.0-only

// Package ml invokes the pre-fitted calorie model. The scaler and regressor
// are opaque, externally trained artifacts serialized as JSON; this package
// only applies them, it never fits or validates their numbers.
package ml

import (
	"encoding/json"
	"fmt"
	"os"

	"fitburn-server/commons"
)

// FeatureCount is the fixed width of the model input:
// [age, weight, duration, heartRate, bodyTemp, genderIndicator, heightMeters].
const FeatureCount = 7

// Scaler is a pre-fitted standard scaler: (x - mean) / scale per feature.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *Scaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("expected %d features, got %d", len(s.Mean), len(features))
	}
	scaled := make([]float64, len(features))
	for i, f := range features {
		scaled[i] = (f - s.Mean[i]) / s.Scale[i]
	}
	return scaled, nil
}

// Regressor is a pre-fitted linear model over the scaled feature vector.
type Regressor struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

func (r *Regressor) Predict(scaled []float64) (float64, error) {
	if len(scaled) != len(r.Coefficients) {
		return 0, fmt.Errorf("expected %d features, got %d", len(r.Coefficients), len(scaled))
	}
	result := r.Intercept
	for i, s := range scaled {
		result += r.Coefficients[i] * s
	}
	return result, nil
}

type CaloriesModel struct {
	scaler    *Scaler
	regressor *Regressor
}

// New wires a scaler and regressor together after checking that both agree on
// the fixed feature width.
func New(scaler *Scaler, regressor *Regressor) (*CaloriesModel, error) {
	if len(scaler.Mean) != FeatureCount || len(scaler.Scale) != FeatureCount {
		return nil, fmt.Errorf("scaler dimensions %d/%d do not match the %d-feature contract", len(scaler.Mean), len(scaler.Scale), FeatureCount)
	}
	if len(regressor.Coefficients) != FeatureCount {
		return nil, fmt.Errorf("regressor has %d coefficients, expected %d", len(regressor.Coefficients), FeatureCount)
	}
	return &CaloriesModel{scaler: scaler, regressor: regressor}, nil
}

// Estimate runs the full inference pass: scale, then regress. Stateless per
// call.
func (m *CaloriesModel) Estimate(features []float64) (float64, error) {
	scaled, err := m.scaler.Transform(features)
	if err != nil {
		return 0, err
	}
	return m.regressor.Predict(scaled)
}

// Features assembles the fixed-order input vector. Height is in meters here;
// callers convert from the stored centimeters.
func Features(age, weightKg, durationMin, heartRate, bodyTempC float64, male bool, heightMeters float64) []float64 {
	genderIndicator := 0.0
	if male {
		genderIndicator = 1.0
	}
	return []float64{age, weightKg, durationMin, heartRate, bodyTempC, genderIndicator, heightMeters}
}

// Calories is the process-wide model instance, loaded once by Init.
var Calories *CaloriesModel

// Init loads the scaler and regressor artifacts. Missing or incompatible
// artifacts are fatal: the process has no degraded mode without its model.
func Init() {
	scalerPath := commons.GetEnv("SCALER_PATH", "scaler.json")
	modelPath := commons.GetEnv("MODEL_PATH", "calories_model.json")

	scaler := &Scaler{}
	if err := loadArtifact(scalerPath, scaler); err != nil {
		commons.Logger.Fatalf("Failed to load feature scaler: %v", err)
	}

	regressor := &Regressor{}
	if err := loadArtifact(modelPath, regressor); err != nil {
		commons.Logger.Fatalf("Failed to load regression model: %v", err)
	}

	model, err := New(scaler, regressor)
	if err != nil {
		commons.Logger.Fatalf("Incompatible model artifacts: %v", err)
	}
	Calories = model
	commons.Logger.Infof("Calorie model loaded. %s %d, %s %s, %s %s",
		"features:", FeatureCount,
		"scaler:", scalerPath,
		"model:", modelPath,
	)
}

func loadArtifact(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
