package model

import "time"

// Health-monitoring telemetry. Every metric is optional on the wire and
// nullable in the database, hence *float64 throughout.

// Biofeedback is a row in `biofeedbacks`.
type Biofeedback struct {
	ID                    string   `json:"id"`
	HeartRate             *float64 `json:"heart_rate,omitempty"`
	HeartRateVariability  *float64 `json:"heart_rate_variability,omitempty"`
	Electromyography      *float64 `json:"electromyography,omitempty"`
	ElectrodermalActivity *float64 `json:"electrodermal_activity,omitempty"`
	RespirationRate       *float64 `json:"respiration_rate,omitempty"`
	BloodPressure         *float64 `json:"blood_pressure,omitempty"`
	Temperature           *float64 `json:"temperature,omitempty"`
	BrainwaveActivity     *float64 `json:"brainwave_activity,omitempty"`
	OxygenSaturation      *float64 `json:"oxygen_saturation,omitempty"`
	BloodGlucoseLevels    *float64 `json:"blood_glucose_levels,omitempty"`
	GalvanicSkinResponse  *float64 `json:"galvanic_skin_response,omitempty"`

	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// BurnProgress is a row in `burn_progresses`.
type BurnProgress struct {
	ID                   string   `json:"id"`
	WoundSizeDepth       *float64 `json:"wound_size_depth,omitempty"`
	Epithelialization    *float64 `json:"epithelialization,omitempty"`
	ExudateAmountType    *float64 `json:"exudate_amount_type,omitempty"`
	InfectionIndicators  *float64 `json:"infection_indicators,omitempty"`
	GranulationTissue    *float64 `json:"granulation_tissue,omitempty"`
	PainLevels           *float64 `json:"pain_levels,omitempty"`
	SwellingEdema        *float64 `json:"swelling_edema,omitempty"`
	Scarring             *float64 `json:"scarring,omitempty"`
	FunctionalRecovery   *float64 `json:"functional_recovery,omitempty"`
	ColorChanges         *float64 `json:"color_changes,omitempty"`
	TemperatureWoundSite *float64 `json:"temperature_wound_site,omitempty"`
	BloodFlowPerfusion   *float64 `json:"blood_flow_perfusion,omitempty"`
	NutritionalStatus    *float64 `json:"nutritional_status,omitempty"`
	SystemicIndicators   *float64 `json:"systemic_indicators,omitempty"`

	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// BrainMonitoring is a row in `brain_monitorings`.
type BrainMonitoring struct {
	ID                        string   `json:"id"`
	AlphaWaves                *float64 `json:"alpha_waves,omitempty"`
	ThetaWaves                *float64 `json:"theta_waves,omitempty"`
	BetaWaves                 *float64 `json:"beta_waves,omitempty"`
	GammaWaves                *float64 `json:"gamma_waves,omitempty"`
	HeartRate                 *float64 `json:"heart_rate,omitempty"`
	HeartRateVariability      *float64 `json:"heart_rate_variability,omitempty"`
	Electromyography          *float64 `json:"electromyography,omitempty"`
	RespirationRate           *float64 `json:"respiration_rate,omitempty"`
	ElectrodermalActivity     *float64 `json:"electrodermal_activity,omitempty"`
	PeripheralSkinTemperature *float64 `json:"peripheral_skin_temperature,omitempty"`

	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// HeartBrainSynchronicity is a row in `heart_brain_synchronicities`.
type HeartBrainSynchronicity struct {
	ID                          string   `json:"id"`
	HeartRateVariability        *float64 `json:"heart_rate_variability,omitempty"`
	AlphaWaves                  *float64 `json:"alpha_waves,omitempty"`
	RespiratorySinusArrhythmia  *float64 `json:"respiratory_sinus_arrhythmia,omitempty"`
	CoherenceRatio              *float64 `json:"coherence_ratio,omitempty"`
	BrainwaveCoherence          *float64 `json:"brainwave_coherence,omitempty"`
	BloodPressureVariability    *float64 `json:"blood_pressure_variability,omitempty"`
	ElectrodermalActivity       *float64 `json:"electrodermal_activity,omitempty"`
	BreathingPatterns           *float64 `json:"breathing_patterns,omitempty"`
	SubjectiveMeasures          *float64 `json:"subjective_measures,omitempty"`

	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}
