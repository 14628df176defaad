package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/drvince/womb-backend/internal/model"
)

// UserRepo is the credential store. It owns the `users` table and the
// application-level cascade over every table keyed by a user's email.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = `id, email, password_hash, role, user_status, refresh_token,
	full_name, gender, dob, nationality, phone, city, country, occupation,
	marital_status, sleep_hours, exercise_frequency, smoking_status,
	alcohol_consumption, created_at, updated_at, created_by, updated_by`

// ownedTables lists every table holding records that belong to a user via the
// user_email column. DeleteCascade removes rows from all of them.
var ownedTables = []string{
	"sounds", "steams", "temp_tanks", "water_pumps", "nano_flickers", "led_colors",
	"biofeedbacks", "burn_progresses", "brain_monitorings", "heart_brain_synchronicities",
}

// Create inserts a new user and returns the stored record. The caller decides
// role and status; audit stamps are set to the user's own email. A duplicate
// email yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	u.ID = uuid.New().String()
	u.Email = strings.TrimSpace(u.Email)
	u.CreatedBy = u.Email
	u.UpdatedBy = u.Email

	_, err := r.DB.ExecContext(ctx, `INSERT INTO users
		(id, email, password_hash, role, user_status, full_name, gender, dob,
		 nationality, phone, city, country, occupation, marital_status,
		 sleep_hours, exercise_frequency, smoking_status, alcohol_consumption,
		 created_by, updated_by)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		u.ID, u.Email, u.PasswordHash, string(u.Role), string(u.Status),
		nullStr(u.FullName), nullStr(u.Gender), nullStr(u.DOB),
		nullStr(u.Nationality), nullStr(u.Phone), nullStr(u.City),
		nullStr(u.Country), nullStr(u.Occupation), nullStr(u.MaritalStatus),
		u.SleepHours, nullStr(u.ExerciseFrequency), nullStr(u.SmokingStatus),
		nullStr(u.AlcoholConsumption), u.CreatedBy, u.UpdatedBy)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return r.GetByID(ctx, u.ID)
}

// GetByEmail fetches a user by exact email match.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email)
	return scanUser(row)
}

// GetByID fetches a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id)
	return scanUser(row)
}

// List returns users ordered by creation time with offset pagination.
func (r *UserRepo) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at LIMIT ? OFFSET ?",
		limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// SetRefreshToken overwrites the stored refresh token. An empty token clears
// it, invalidating any outstanding refresh token for the user.
func (r *UserRepo) SetRefreshToken(ctx context.Context, userID, token string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET refresh_token=?, updated_at=NOW() WHERE id=?",
		nullStr(token), userID)
	return err
}

// Update persists the mutable columns of u. The caller (the lifecycle
// service) merges patch fields and stamps updated_by before calling.
func (r *UserRepo) Update(ctx context.Context, u model.User) (model.User, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET
		role=?, user_status=?, full_name=?, gender=?, dob=?, nationality=?,
		phone=?, city=?, country=?, occupation=?, marital_status=?,
		sleep_hours=?, exercise_frequency=?, smoking_status=?,
		alcohol_consumption=?, updated_by=?, updated_at=NOW()
		WHERE id=?`,
		string(u.Role), string(u.Status), nullStr(u.FullName), nullStr(u.Gender),
		nullStr(u.DOB), nullStr(u.Nationality), nullStr(u.Phone), nullStr(u.City),
		nullStr(u.Country), nullStr(u.Occupation), nullStr(u.MaritalStatus),
		u.SleepHours, nullStr(u.ExerciseFrequency), nullStr(u.SmokingStatus),
		nullStr(u.AlcoholConsumption), nullStr(u.UpdatedBy), u.ID)
	if err != nil {
		return model.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// the row may exist with identical values; confirm before 404ing
		if _, err := r.GetByID(ctx, u.ID); err != nil {
			return model.User{}, err
		}
	}
	return r.GetByID(ctx, u.ID)
}

// DeleteCascade removes the user and every owned device-control and
// health-monitoring row in a single transaction. It returns ErrNotFound when
// the user does not exist; no rows are removed in that case.
func (r *UserRepo) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var email string
	err = tx.QueryRowContext(ctx, "SELECT email FROM users WHERE id=? FOR UPDATE", id).Scan(&email)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	for _, table := range ownedTables {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM "+table+" WHERE user_email=?", email); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM users WHERE id=?", id); err != nil {
		return err
	}
	return tx.Commit()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanUser(row rowScanner) (model.User, error) {
	var (
		u            model.User
		role, status string
		refresh, fullName, gender, nationality, phone    sql.NullString
		city, country, occupation, marital               sql.NullString
		exercise, smoking, alcohol, createdBy, updatedBy sql.NullString
		sleepHours                                       sql.NullFloat64
		dob, updatedAt                                   sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &status, &refresh,
		&fullName, &gender, &dob, &nationality, &phone, &city, &country,
		&occupation, &marital, &sleepHours, &exercise, &smoking, &alcohol,
		&u.CreatedAt, &updatedAt, &createdBy, &updatedBy)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.Role = model.Role(role)
	u.Status = model.Status(status)
	u.RefreshToken = refresh.String
	u.FullName = fullName.String
	u.Gender = gender.String
	if dob.Valid {
		u.DOB = dob.Time.Format("2006-01-02")
	}
	u.Nationality = nationality.String
	u.Phone = phone.String
	u.City = city.String
	u.Country = country.String
	u.Occupation = occupation.String
	u.MaritalStatus = marital.String
	if sleepHours.Valid {
		v := sleepHours.Float64
		u.SleepHours = &v
	}
	u.ExerciseFrequency = exercise.String
	u.SmokingStatus = smoking.String
	u.AlcoholConsumption = alcohol.String
	if updatedAt.Valid {
		u.UpdatedAt = updatedAt.Time
	} else {
		u.UpdatedAt = u.CreatedAt
	}
	u.CreatedBy = createdBy.String
	u.UpdatedBy = updatedBy.String
	return u, nil
}

// nullStr maps the empty string to SQL NULL so optional columns stay NULL.
func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
