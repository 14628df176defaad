package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/drvince/womb-backend/internal/model"
)

// HealthRepo owns the four health-monitoring tables. All metric columns are
// nullable floats; updates write the full metric set and the caller merges
// patch fields beforehand.
type HealthRepo struct{ DB *sql.DB }

func NewHealthRepo(db *sql.DB) *HealthRepo { return &HealthRepo{DB: db} }

// ----- biofeedback -----

const biofeedbackCols = `id, heart_rate, heart_rate_variability, electromyography,
	electrodermal_activity, respiration_rate, blood_pressure, temperature,
	brainwave_activity, oxygen_saturation, blood_glucose_levels,
	galvanic_skin_response, user_email, created_at, updated_at, created_by, updated_by`

func (r *HealthRepo) CreateBiofeedback(ctx context.Context, b model.Biofeedback, userEmail string) (model.Biofeedback, error) {
	b.ID = uuid.New().String()
	_, err := r.DB.ExecContext(ctx, `INSERT INTO biofeedbacks
		(id, heart_rate, heart_rate_variability, electromyography,
		 electrodermal_activity, respiration_rate, blood_pressure, temperature,
		 brainwave_activity, oxygen_saturation, blood_glucose_levels,
		 galvanic_skin_response, user_email, created_by, updated_by)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.HeartRate, b.HeartRateVariability, b.Electromyography,
		b.ElectrodermalActivity, b.RespirationRate, b.BloodPressure, b.Temperature,
		b.BrainwaveActivity, b.OxygenSaturation, b.BloodGlucoseLevels,
		b.GalvanicSkinResponse, userEmail, userEmail, userEmail)
	if err != nil {
		return model.Biofeedback{}, err
	}
	return r.GetBiofeedback(ctx, b.ID)
}

func (r *HealthRepo) GetBiofeedback(ctx context.Context, id string) (model.Biofeedback, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+biofeedbackCols+" FROM biofeedbacks WHERE id=? LIMIT 1", id)
	return scanBiofeedback(row)
}

func (r *HealthRepo) ListBiofeedbackByUser(ctx context.Context, userEmail string) ([]model.Biofeedback, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+biofeedbackCols+" FROM biofeedbacks WHERE user_email=? ORDER BY created_at DESC", userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Biofeedback{}
	for rows.Next() {
		b, err := scanBiofeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *HealthRepo) UpdateBiofeedback(ctx context.Context, b model.Biofeedback, updatedBy string) (model.Biofeedback, error) {
	_, err := r.DB.ExecContext(ctx, `UPDATE biofeedbacks SET
		heart_rate=?, heart_rate_variability=?, electromyography=?,
		electrodermal_activity=?, respiration_rate=?, blood_pressure=?,
		temperature=?, brainwave_activity=?, oxygen_saturation=?,
		blood_glucose_levels=?, galvanic_skin_response=?, updated_by=?,
		updated_at=NOW() WHERE id=?`,
		b.HeartRate, b.HeartRateVariability, b.Electromyography,
		b.ElectrodermalActivity, b.RespirationRate, b.BloodPressure,
		b.Temperature, b.BrainwaveActivity, b.OxygenSaturation,
		b.BloodGlucoseLevels, b.GalvanicSkinResponse, updatedBy, b.ID)
	if err != nil {
		return model.Biofeedback{}, err
	}
	return r.GetBiofeedback(ctx, b.ID)
}

func (r *HealthRepo) DeleteBiofeedback(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM biofeedbacks WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func scanBiofeedback(row rowScanner) (model.Biofeedback, error) {
	var (
		b         model.Biofeedback
		updatedAt sql.NullTime
		createdBy, updatedBy sql.NullString
	)
	err := row.Scan(&b.ID, &b.HeartRate, &b.HeartRateVariability,
		&b.Electromyography, &b.ElectrodermalActivity, &b.RespirationRate,
		&b.BloodPressure, &b.Temperature, &b.BrainwaveActivity,
		&b.OxygenSaturation, &b.BloodGlucoseLevels, &b.GalvanicSkinResponse,
		&b.UserEmail, &b.CreatedAt, &updatedAt, &createdBy, &updatedBy)
	if err == sql.ErrNoRows {
		return model.Biofeedback{}, ErrNotFound
	}
	if err != nil {
		return model.Biofeedback{}, err
	}
	b.UpdatedAt = timeOr(updatedAt, b.CreatedAt)
	b.CreatedBy = createdBy.String
	b.UpdatedBy = updatedBy.String
	return b, nil
}

// ----- burn progress -----

const burnProgressCols = `id, wound_size_depth, epithelialization, exudate_amount_type,
	infection_indicators, granulation_tissue, pain_levels, swelling_edema,
	scarring, functional_recovery, color_changes, temperature_wound_site,
	blood_flow_perfusion, nutritional_status, systemic_indicators,
	user_email, created_at, updated_at, created_by, updated_by`

func (r *HealthRepo) CreateBurnProgress(ctx context.Context, b model.BurnProgress, userEmail string) (model.BurnProgress, error) {
	b.ID = uuid.New().String()
	_, err := r.DB.ExecContext(ctx, `INSERT INTO burn_progresses
		(id, wound_size_depth, epithelialization, exudate_amount_type,
		 infection_indicators, granulation_tissue, pain_levels, swelling_edema,
		 scarring, functional_recovery, color_changes, temperature_wound_site,
		 blood_flow_perfusion, nutritional_status, systemic_indicators,
		 user_email, created_by, updated_by)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.WoundSizeDepth, b.Epithelialization, b.ExudateAmountType,
		b.InfectionIndicators, b.GranulationTissue, b.PainLevels, b.SwellingEdema,
		b.Scarring, b.FunctionalRecovery, b.ColorChanges, b.TemperatureWoundSite,
		b.BloodFlowPerfusion, b.NutritionalStatus, b.SystemicIndicators,
		userEmail, userEmail, userEmail)
	if err != nil {
		return model.BurnProgress{}, err
	}
	return r.GetBurnProgress(ctx, b.ID)
}

func (r *HealthRepo) GetBurnProgress(ctx context.Context, id string) (model.BurnProgress, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+burnProgressCols+" FROM burn_progresses WHERE id=? LIMIT 1", id)
	return scanBurnProgress(row)
}

func (r *HealthRepo) ListBurnProgressByUser(ctx context.Context, userEmail string) ([]model.BurnProgress, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+burnProgressCols+" FROM burn_progresses WHERE user_email=? ORDER BY created_at DESC", userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.BurnProgress{}
	for rows.Next() {
		b, err := scanBurnProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *HealthRepo) UpdateBurnProgress(ctx context.Context, b model.BurnProgress, updatedBy string) (model.BurnProgress, error) {
	_, err := r.DB.ExecContext(ctx, `UPDATE burn_progresses SET
		wound_size_depth=?, epithelialization=?, exudate_amount_type=?,
		infection_indicators=?, granulation_tissue=?, pain_levels=?,
		swelling_edema=?, scarring=?, functional_recovery=?, color_changes=?,
		temperature_wound_site=?, blood_flow_perfusion=?, nutritional_status=?,
		systemic_indicators=?, updated_by=?, updated_at=NOW() WHERE id=?`,
		b.WoundSizeDepth, b.Epithelialization, b.ExudateAmountType,
		b.InfectionIndicators, b.GranulationTissue, b.PainLevels, b.SwellingEdema,
		b.Scarring, b.FunctionalRecovery, b.ColorChanges, b.TemperatureWoundSite,
		b.BloodFlowPerfusion, b.NutritionalStatus, b.SystemicIndicators,
		updatedBy, b.ID)
	if err != nil {
		return model.BurnProgress{}, err
	}
	return r.GetBurnProgress(ctx, b.ID)
}

func (r *HealthRepo) DeleteBurnProgress(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM burn_progresses WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func scanBurnProgress(row rowScanner) (model.BurnProgress, error) {
	var (
		b         model.BurnProgress
		updatedAt sql.NullTime
		createdBy, updatedBy sql.NullString
	)
	err := row.Scan(&b.ID, &b.WoundSizeDepth, &b.Epithelialization,
		&b.ExudateAmountType, &b.InfectionIndicators, &b.GranulationTissue,
		&b.PainLevels, &b.SwellingEdema, &b.Scarring, &b.FunctionalRecovery,
		&b.ColorChanges, &b.TemperatureWoundSite, &b.BloodFlowPerfusion,
		&b.NutritionalStatus, &b.SystemicIndicators,
		&b.UserEmail, &b.CreatedAt, &updatedAt, &createdBy, &updatedBy)
	if err == sql.ErrNoRows {
		return model.BurnProgress{}, ErrNotFound
	}
	if err != nil {
		return model.BurnProgress{}, err
	}
	b.UpdatedAt = timeOr(updatedAt, b.CreatedAt)
	b.CreatedBy = createdBy.String
	b.UpdatedBy = updatedBy.String
	return b, nil
}

// ----- brain monitoring -----

const brainMonitoringCols = `id, alpha_waves, theta_waves, beta_waves, gamma_waves,
	heart_rate, heart_rate_variability, electromyography, respiration_rate,
	electrodermal_activity, peripheral_skin_temperature,
	user_email, created_at, updated_at, created_by, updated_by`

func (r *HealthRepo) CreateBrainMonitoring(ctx context.Context, b model.BrainMonitoring, userEmail string) (model.BrainMonitoring, error) {
	b.ID = uuid.New().String()
	_, err := r.DB.ExecContext(ctx, `INSERT INTO brain_monitorings
		(id, alpha_waves, theta_waves, beta_waves, gamma_waves, heart_rate,
		 heart_rate_variability, electromyography, respiration_rate,
		 electrodermal_activity, peripheral_skin_temperature,
		 user_email, created_by, updated_by)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.AlphaWaves, b.ThetaWaves, b.BetaWaves, b.GammaWaves, b.HeartRate,
		b.HeartRateVariability, b.Electromyography, b.RespirationRate,
		b.ElectrodermalActivity, b.PeripheralSkinTemperature,
		userEmail, userEmail, userEmail)
	if err != nil {
		return model.BrainMonitoring{}, err
	}
	return r.GetBrainMonitoring(ctx, b.ID)
}

func (r *HealthRepo) GetBrainMonitoring(ctx context.Context, id string) (model.BrainMonitoring, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+brainMonitoringCols+" FROM brain_monitorings WHERE id=? LIMIT 1", id)
	return scanBrainMonitoring(row)
}

func (r *HealthRepo) ListBrainMonitoringByUser(ctx context.Context, userEmail string) ([]model.BrainMonitoring, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+brainMonitoringCols+" FROM brain_monitorings WHERE user_email=? ORDER BY created_at DESC", userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.BrainMonitoring{}
	for rows.Next() {
		b, err := scanBrainMonitoring(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *HealthRepo) UpdateBrainMonitoring(ctx context.Context, b model.BrainMonitoring, updatedBy string) (model.BrainMonitoring, error) {
	_, err := r.DB.ExecContext(ctx, `UPDATE brain_monitorings SET
		alpha_waves=?, theta_waves=?, beta_waves=?, gamma_waves=?, heart_rate=?,
		heart_rate_variability=?, electromyography=?, respiration_rate=?,
		electrodermal_activity=?, peripheral_skin_temperature=?, updated_by=?,
		updated_at=NOW() WHERE id=?`,
		b.AlphaWaves, b.ThetaWaves, b.BetaWaves, b.GammaWaves, b.HeartRate,
		b.HeartRateVariability, b.Electromyography, b.RespirationRate,
		b.ElectrodermalActivity, b.PeripheralSkinTemperature, updatedBy, b.ID)
	if err != nil {
		return model.BrainMonitoring{}, err
	}
	return r.GetBrainMonitoring(ctx, b.ID)
}

func (r *HealthRepo) DeleteBrainMonitoring(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM brain_monitorings WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func scanBrainMonitoring(row rowScanner) (model.BrainMonitoring, error) {
	var (
		b         model.BrainMonitoring
		updatedAt sql.NullTime
		createdBy, updatedBy sql.NullString
	)
	err := row.Scan(&b.ID, &b.AlphaWaves, &b.ThetaWaves, &b.BetaWaves,
		&b.GammaWaves, &b.HeartRate, &b.HeartRateVariability,
		&b.Electromyography, &b.RespirationRate, &b.ElectrodermalActivity,
		&b.PeripheralSkinTemperature,
		&b.UserEmail, &b.CreatedAt, &updatedAt, &createdBy, &updatedBy)
	if err == sql.ErrNoRows {
		return model.BrainMonitoring{}, ErrNotFound
	}
	if err != nil {
		return model.BrainMonitoring{}, err
	}
	b.UpdatedAt = timeOr(updatedAt, b.CreatedAt)
	b.CreatedBy = createdBy.String
	b.UpdatedBy = updatedBy.String
	return b, nil
}

// ----- heart-brain synchronicity -----

const heartBrainCols = `id, heart_rate_variability, alpha_waves,
	respiratory_sinus_arrhythmia, coherence_ratio, brainwave_coherence,
	blood_pressure_variability, electrodermal_activity, breathing_patterns,
	subjective_measures, user_email, created_at, updated_at, created_by, updated_by`

func (r *HealthRepo) CreateHeartBrain(ctx context.Context, h model.HeartBrainSynchronicity, userEmail string) (model.HeartBrainSynchronicity, error) {
	h.ID = uuid.New().String()
	_, err := r.DB.ExecContext(ctx, `INSERT INTO heart_brain_synchronicities
		(id, heart_rate_variability, alpha_waves, respiratory_sinus_arrhythmia,
		 coherence_ratio, brainwave_coherence, blood_pressure_variability,
		 electrodermal_activity, breathing_patterns, subjective_measures,
		 user_email, created_by, updated_by)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		h.ID, h.HeartRateVariability, h.AlphaWaves, h.RespiratorySinusArrhythmia,
		h.CoherenceRatio, h.BrainwaveCoherence, h.BloodPressureVariability,
		h.ElectrodermalActivity, h.BreathingPatterns, h.SubjectiveMeasures,
		userEmail, userEmail, userEmail)
	if err != nil {
		return model.HeartBrainSynchronicity{}, err
	}
	return r.GetHeartBrain(ctx, h.ID)
}

func (r *HealthRepo) GetHeartBrain(ctx context.Context, id string) (model.HeartBrainSynchronicity, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+heartBrainCols+" FROM heart_brain_synchronicities WHERE id=? LIMIT 1", id)
	return scanHeartBrain(row)
}

func (r *HealthRepo) ListHeartBrainByUser(ctx context.Context, userEmail string) ([]model.HeartBrainSynchronicity, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+heartBrainCols+" FROM heart_brain_synchronicities WHERE user_email=? ORDER BY created_at DESC", userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.HeartBrainSynchronicity{}
	for rows.Next() {
		h, err := scanHeartBrain(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HealthRepo) UpdateHeartBrain(ctx context.Context, h model.HeartBrainSynchronicity, updatedBy string) (model.HeartBrainSynchronicity, error) {
	_, err := r.DB.ExecContext(ctx, `UPDATE heart_brain_synchronicities SET
		heart_rate_variability=?, alpha_waves=?, respiratory_sinus_arrhythmia=?,
		coherence_ratio=?, brainwave_coherence=?, blood_pressure_variability=?,
		electrodermal_activity=?, breathing_patterns=?, subjective_measures=?,
		updated_by=?, updated_at=NOW() WHERE id=?`,
		h.HeartRateVariability, h.AlphaWaves, h.RespiratorySinusArrhythmia,
		h.CoherenceRatio, h.BrainwaveCoherence, h.BloodPressureVariability,
		h.ElectrodermalActivity, h.BreathingPatterns, h.SubjectiveMeasures,
		updatedBy, h.ID)
	if err != nil {
		return model.HeartBrainSynchronicity{}, err
	}
	return r.GetHeartBrain(ctx, h.ID)
}

func (r *HealthRepo) DeleteHeartBrain(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM heart_brain_synchronicities WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func scanHeartBrain(row rowScanner) (model.HeartBrainSynchronicity, error) {
	var (
		h         model.HeartBrainSynchronicity
		updatedAt sql.NullTime
		createdBy, updatedBy sql.NullString
	)
	err := row.Scan(&h.ID, &h.HeartRateVariability, &h.AlphaWaves,
		&h.RespiratorySinusArrhythmia, &h.CoherenceRatio, &h.BrainwaveCoherence,
		&h.BloodPressureVariability, &h.ElectrodermalActivity,
		&h.BreathingPatterns, &h.SubjectiveMeasures,
		&h.UserEmail, &h.CreatedAt, &updatedAt, &createdBy, &updatedBy)
	if err == sql.ErrNoRows {
		return model.HeartBrainSynchronicity{}, ErrNotFound
	}
	if err != nil {
		return model.HeartBrainSynchronicity{}, err
	}
	h.UpdatedAt = timeOr(updatedAt, h.CreatedAt)
	h.CreatedBy = createdBy.String
	h.UpdatedBy = updatedBy.String
	return h, nil
}
