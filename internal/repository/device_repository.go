package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/drvince/womb-backend/internal/model"
)

// DeviceRepo owns the six device-control tables. The four boolean devices
// (sound, steam, water pump, nano flicker) are identical in shape and share
// one code path keyed by device name; the tank temperature and LED color
// tables have their own value types.
type DeviceRepo struct{ DB *sql.DB }

func NewDeviceRepo(db *sql.DB) *DeviceRepo { return &DeviceRepo{DB: db} }

type switchTable struct{ table, column string }

// switchTables maps API device names onto their table and value column. Only
// names present here ever reach the SQL below.
var switchTables = map[string]switchTable{
	"sound":        {"sounds", "sound"},
	"steam":        {"steams", "steam"},
	"water-pump":   {"water_pumps", "water_pump"},
	"nano-flicker": {"nano_flickers", "nano_flicker"},
}

func switchFor(device string) (switchTable, error) {
	st, ok := switchTables[device]
	if !ok {
		return switchTable{}, fmt.Errorf("unknown device %q: %w", device, ErrNotFound)
	}
	return st, nil
}

// CreateSwitch inserts a boolean device record owned by userEmail.
func (r *DeviceRepo) CreateSwitch(ctx context.Context, device string, enabled bool, userEmail string) (model.SwitchRecord, error) {
	st, err := switchFor(device)
	if err != nil {
		return model.SwitchRecord{}, err
	}
	id := uuid.New().String()
	_, err = r.DB.ExecContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (id, %s, user_email, created_by, updated_by) VALUES (?,?,?,?,?)",
		st.table, st.column), id, enabled, userEmail, userEmail, userEmail)
	if err != nil {
		return model.SwitchRecord{}, err
	}
	return r.GetSwitch(ctx, device, id)
}

// GetSwitch fetches one boolean device record by id.
func (r *DeviceRepo) GetSwitch(ctx context.Context, device, id string) (model.SwitchRecord, error) {
	st, err := switchFor(device)
	if err != nil {
		return model.SwitchRecord{}, err
	}
	row := r.DB.QueryRowContext(ctx, fmt.Sprintf(
		"SELECT id, %s, user_email, created_at, updated_at, created_by, updated_by FROM %s WHERE id=? LIMIT 1",
		st.column, st.table), id)
	return scanSwitch(row)
}

// ListSwitchByUser returns a user's records for one boolean device, newest first.
func (r *DeviceRepo) ListSwitchByUser(ctx context.Context, device, userEmail string) ([]model.SwitchRecord, error) {
	st, err := switchFor(device)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf(
		"SELECT id, %s, user_email, created_at, updated_at, created_by, updated_by FROM %s WHERE user_email=? ORDER BY created_at DESC",
		st.column, st.table), userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.SwitchRecord{}
	for rows.Next() {
		rec, err := scanSwitch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpdateSwitch sets the value and stamps the acting identity.
func (r *DeviceRepo) UpdateSwitch(ctx context.Context, device, id string, enabled bool, updatedBy string) (model.SwitchRecord, error) {
	st, err := switchFor(device)
	if err != nil {
		return model.SwitchRecord{}, err
	}
	_, err = r.DB.ExecContext(ctx, fmt.Sprintf(
		"UPDATE %s SET %s=?, updated_by=?, updated_at=NOW() WHERE id=?",
		st.table, st.column), enabled, updatedBy, id)
	if err != nil {
		return model.SwitchRecord{}, err
	}
	return r.GetSwitch(ctx, device, id)
}

// DeleteSwitch removes one record; ErrNotFound when the id does not exist.
func (r *DeviceRepo) DeleteSwitch(ctx context.Context, device, id string) error {
	st, err := switchFor(device)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id=?", st.table), id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

// ----- temp tank -----

func (r *DeviceRepo) CreateTempTank(ctx context.Context, celsius float64, userEmail string) (model.TempTank, error) {
	id := uuid.New().String()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO temp_tanks (id, temp_tank, user_email, created_by, updated_by) VALUES (?,?,?,?,?)",
		id, celsius, userEmail, userEmail, userEmail)
	if err != nil {
		return model.TempTank{}, err
	}
	return r.GetTempTank(ctx, id)
}

func (r *DeviceRepo) GetTempTank(ctx context.Context, id string) (model.TempTank, error) {
	var (
		t         model.TempTank
		updatedAt sql.NullTime
		createdBy, updatedBy sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, temp_tank, user_email, created_at, updated_at, created_by, updated_by FROM temp_tanks WHERE id=? LIMIT 1",
		id).Scan(&t.ID, &t.TempTank, &t.UserEmail, &t.CreatedAt, &updatedAt, &createdBy, &updatedBy)
	if err == sql.ErrNoRows {
		return model.TempTank{}, ErrNotFound
	}
	if err != nil {
		return model.TempTank{}, err
	}
	t.UpdatedAt = timeOr(updatedAt, t.CreatedAt)
	t.CreatedBy = createdBy.String
	t.UpdatedBy = updatedBy.String
	return t, nil
}

func (r *DeviceRepo) ListTempTanksByUser(ctx context.Context, userEmail string) ([]model.TempTank, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, temp_tank, user_email, created_at, updated_at, created_by, updated_by FROM temp_tanks WHERE user_email=? ORDER BY created_at DESC",
		userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.TempTank{}
	for rows.Next() {
		var (
			t         model.TempTank
			updatedAt sql.NullTime
			createdBy, updatedBy sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.TempTank, &t.UserEmail, &t.CreatedAt, &updatedAt, &createdBy, &updatedBy); err != nil {
			return nil, err
		}
		t.UpdatedAt = timeOr(updatedAt, t.CreatedAt)
		t.CreatedBy = createdBy.String
		t.UpdatedBy = updatedBy.String
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *DeviceRepo) UpdateTempTank(ctx context.Context, id string, celsius float64, updatedBy string) (model.TempTank, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE temp_tanks SET temp_tank=?, updated_by=?, updated_at=NOW() WHERE id=?",
		celsius, updatedBy, id)
	if err != nil {
		return model.TempTank{}, err
	}
	return r.GetTempTank(ctx, id)
}

func (r *DeviceRepo) DeleteTempTank(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM temp_tanks WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

// ----- led color -----

func (r *DeviceRepo) CreateLedColor(ctx context.Context, color, userEmail string) (model.LedColor, error) {
	id := uuid.New().String()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO led_colors (id, led_color, user_email, created_by, updated_by) VALUES (?,?,?,?,?)",
		id, color, userEmail, userEmail, userEmail)
	if err != nil {
		return model.LedColor{}, err
	}
	return r.GetLedColor(ctx, id)
}

func (r *DeviceRepo) GetLedColor(ctx context.Context, id string) (model.LedColor, error) {
	var (
		l         model.LedColor
		updatedAt sql.NullTime
		createdBy, updatedBy sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, led_color, user_email, created_at, updated_at, created_by, updated_by FROM led_colors WHERE id=? LIMIT 1",
		id).Scan(&l.ID, &l.LedColor, &l.UserEmail, &l.CreatedAt, &updatedAt, &createdBy, &updatedBy)
	if err == sql.ErrNoRows {
		return model.LedColor{}, ErrNotFound
	}
	if err != nil {
		return model.LedColor{}, err
	}
	l.UpdatedAt = timeOr(updatedAt, l.CreatedAt)
	l.CreatedBy = createdBy.String
	l.UpdatedBy = updatedBy.String
	return l, nil
}

func (r *DeviceRepo) ListLedColorsByUser(ctx context.Context, userEmail string) ([]model.LedColor, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, led_color, user_email, created_at, updated_at, created_by, updated_by FROM led_colors WHERE user_email=? ORDER BY created_at DESC",
		userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.LedColor{}
	for rows.Next() {
		var (
			l         model.LedColor
			updatedAt sql.NullTime
			createdBy, updatedBy sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.LedColor, &l.UserEmail, &l.CreatedAt, &updatedAt, &createdBy, &updatedBy); err != nil {
			return nil, err
		}
		l.UpdatedAt = timeOr(updatedAt, l.CreatedAt)
		l.CreatedBy = createdBy.String
		l.UpdatedBy = updatedBy.String
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *DeviceRepo) UpdateLedColor(ctx context.Context, id, color, updatedBy string) (model.LedColor, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE led_colors SET led_color=?, updated_by=?, updated_at=NOW() WHERE id=?",
		color, updatedBy, id)
	if err != nil {
		return model.LedColor{}, err
	}
	return r.GetLedColor(ctx, id)
}

func (r *DeviceRepo) DeleteLedColor(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM led_colors WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

// ----- shared helpers -----

func scanSwitch(row rowScanner) (model.SwitchRecord, error) {
	var (
		rec       model.SwitchRecord
		updatedAt sql.NullTime
		createdBy, updatedBy sql.NullString
	)
	err := row.Scan(&rec.ID, &rec.Enabled, &rec.UserEmail, &rec.CreatedAt, &updatedAt, &createdBy, &updatedBy)
	if err == sql.ErrNoRows {
		return model.SwitchRecord{}, ErrNotFound
	}
	if err != nil {
		return model.SwitchRecord{}, err
	}
	rec.UpdatedAt = timeOr(updatedAt, rec.CreatedAt)
	rec.CreatedBy = createdBy.String
	rec.UpdatedBy = updatedBy.String
	return rec, nil
}

func timeOr(t sql.NullTime, fallback time.Time) time.Time {
	if t.Valid {
		return t.Time
	}
	return fallback
}

func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
