package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/drvince/womb-backend/internal/model"
)

// ContentRepo owns the news, live_sessions, contacts and abouts tables. These
// are admin-managed page content; the public landing endpoints read only the
// latest rows.
type ContentRepo struct{ DB *sql.DB }

func NewContentRepo(db *sql.DB) *ContentRepo { return &ContentRepo{DB: db} }

// ----- news -----

const newsCols = "id, title, summary, content, image_url, publish_date, created_at, updated_at"

func (r *ContentRepo) CreateNews(ctx context.Context, n model.News) (model.News, error) {
	n.ID = uuid.New().String()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO news (id, title, summary, content, image_url, publish_date) VALUES (?,?,?,?,?,?)",
		n.ID, n.Title, n.Summary, n.Content, nullStr(n.ImageURL), nullStr(n.PublishDate))
	if err != nil {
		return model.News{}, err
	}
	return r.GetNews(ctx, n.ID)
}

func (r *ContentRepo) GetNews(ctx context.Context, id string) (model.News, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+newsCols+" FROM news WHERE id=? LIMIT 1", id)
	return scanNews(row)
}

func (r *ContentRepo) ListNews(ctx context.Context) ([]model.News, error) {
	return r.queryNews(ctx, "SELECT "+newsCols+" FROM news ORDER BY publish_date DESC")
}

// LatestNews returns the newest items for the landing page.
func (r *ContentRepo) LatestNews(ctx context.Context, limit int) ([]model.News, error) {
	return r.queryNews(ctx, "SELECT "+newsCols+" FROM news ORDER BY publish_date DESC LIMIT ?", limit)
}

func (r *ContentRepo) UpdateNews(ctx context.Context, n model.News) (model.News, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE news SET title=?, summary=?, content=?, image_url=?, publish_date=?, updated_at=NOW() WHERE id=?",
		n.Title, n.Summary, n.Content, nullStr(n.ImageURL), nullStr(n.PublishDate), n.ID)
	if err != nil {
		return model.News{}, err
	}
	return r.GetNews(ctx, n.ID)
}

func (r *ContentRepo) DeleteNews(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM news WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func (r *ContentRepo) queryNews(ctx context.Context, query string, args ...any) ([]model.News, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func scanNews(row rowScanner) (model.News, error) {
	var (
		n           model.News
		imageURL    sql.NullString
		publishDate sql.NullTime
		updatedAt   sql.NullTime
	)
	err := row.Scan(&n.ID, &n.Title, &n.Summary, &n.Content, &imageURL, &publishDate, &n.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.News{}, ErrNotFound
	}
	if err != nil {
		return model.News{}, err
	}
	n.ImageURL = imageURL.String
	if publishDate.Valid {
		n.PublishDate = publishDate.Time.Format("2006-01-02")
	}
	n.UpdatedAt = timeOr(updatedAt, n.CreatedAt)
	return n, nil
}

// ----- live sessions -----

const liveSessionCols = "id, session_title, host, description, date_time, duration_minutes, youtube_link, livestatus, created_at, updated_at"

func (r *ContentRepo) CreateLiveSession(ctx context.Context, s model.LiveSession) (model.LiveSession, error) {
	s.ID = uuid.New().String()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO live_sessions (id, session_title, host, description, date_time, duration_minutes, youtube_link, livestatus) VALUES (?,?,?,?,?,?,?,?)",
		s.ID, s.SessionTitle, s.Host, nullStr(s.Description), s.DateTime, s.DurationMinutes, nullStr(s.YoutubeLink), s.LiveStatus)
	if err != nil {
		return model.LiveSession{}, err
	}
	return r.GetLiveSession(ctx, s.ID)
}

func (r *ContentRepo) GetLiveSession(ctx context.Context, id string) (model.LiveSession, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+liveSessionCols+" FROM live_sessions WHERE id=? LIMIT 1", id)
	return scanLiveSession(row)
}

func (r *ContentRepo) ListLiveSessions(ctx context.Context, skip, limit int) ([]model.LiveSession, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+liveSessionCols+" FROM live_sessions ORDER BY date_time DESC LIMIT ? OFFSET ?", limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.LiveSession{}
	for rows.Next() {
		s, err := scanLiveSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// LatestLiveSession returns the most recent session, or ErrNotFound when the
// table is empty.
func (r *ContentRepo) LatestLiveSession(ctx context.Context) (model.LiveSession, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+liveSessionCols+" FROM live_sessions ORDER BY date_time DESC LIMIT 1")
	return scanLiveSession(row)
}

func (r *ContentRepo) UpdateLiveSession(ctx context.Context, s model.LiveSession) (model.LiveSession, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE live_sessions SET session_title=?, host=?, description=?, date_time=?, duration_minutes=?, youtube_link=?, livestatus=?, updated_at=NOW() WHERE id=?",
		s.SessionTitle, s.Host, nullStr(s.Description), s.DateTime, s.DurationMinutes, nullStr(s.YoutubeLink), s.LiveStatus, s.ID)
	if err != nil {
		return model.LiveSession{}, err
	}
	return r.GetLiveSession(ctx, s.ID)
}

func (r *ContentRepo) DeleteLiveSession(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM live_sessions WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func scanLiveSession(row rowScanner) (model.LiveSession, error) {
	var (
		s                        model.LiveSession
		description, youtubeLink sql.NullString
		updatedAt                sql.NullTime
	)
	err := row.Scan(&s.ID, &s.SessionTitle, &s.Host, &description, &s.DateTime,
		&s.DurationMinutes, &youtubeLink, &s.LiveStatus, &s.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.LiveSession{}, ErrNotFound
	}
	if err != nil {
		return model.LiveSession{}, err
	}
	s.Description = description.String
	s.YoutubeLink = youtubeLink.String
	s.UpdatedAt = timeOr(updatedAt, s.CreatedAt)
	return s, nil
}

// ----- contact -----

const contactCols = "id, email, phone, address, office_hours, support_email, created_at, updated_at"

func (r *ContentRepo) CreateContact(ctx context.Context, c model.Contact) (model.Contact, error) {
	c.ID = uuid.New().String()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO contacts (id, email, phone, address, office_hours, support_email) VALUES (?,?,?,?,?,?)",
		c.ID, c.Email, nullStr(c.Phone), nullStr(c.Address), nullStr(c.OfficeHours), nullStr(c.SupportEmail))
	if err != nil {
		return model.Contact{}, err
	}
	return r.GetContact(ctx, c.ID)
}

func (r *ContentRepo) GetContact(ctx context.Context, id string) (model.Contact, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+contactCols+" FROM contacts WHERE id=? LIMIT 1", id)
	return scanContact(row)
}

// LatestContact returns the newest contact row for the public page.
func (r *ContentRepo) LatestContact(ctx context.Context) (model.Contact, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+contactCols+" FROM contacts ORDER BY created_at DESC LIMIT 1")
	return scanContact(row)
}

func (r *ContentRepo) UpdateContact(ctx context.Context, c model.Contact) (model.Contact, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE contacts SET email=?, phone=?, address=?, office_hours=?, support_email=?, updated_at=NOW() WHERE id=?",
		c.Email, nullStr(c.Phone), nullStr(c.Address), nullStr(c.OfficeHours), nullStr(c.SupportEmail), c.ID)
	if err != nil {
		return model.Contact{}, err
	}
	return r.GetContact(ctx, c.ID)
}

func (r *ContentRepo) DeleteContact(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM contacts WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func scanContact(row rowScanner) (model.Contact, error) {
	var (
		c                                  model.Contact
		phone, address, hours, supportMail sql.NullString
		updatedAt                          sql.NullTime
	)
	err := row.Scan(&c.ID, &c.Email, &phone, &address, &hours, &supportMail, &c.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.Contact{}, ErrNotFound
	}
	if err != nil {
		return model.Contact{}, err
	}
	c.Phone = phone.String
	c.Address = address.String
	c.OfficeHours = hours.String
	c.SupportEmail = supportMail.String
	c.UpdatedAt = timeOr(updatedAt, c.CreatedAt)
	return c, nil
}

// ----- about -----

const aboutCols = `id, title, subtitle, image_url, heading, content, heading_2,
	content_2, image_url_2, team_members, mission, vision, description,
	team_info, company_history, created_at, updated_at`

func (r *ContentRepo) CreateAbout(ctx context.Context, a model.About) (model.About, error) {
	a.ID = uuid.New().String()
	_, err := r.DB.ExecContext(ctx, `INSERT INTO abouts
		(id, title, subtitle, image_url, heading, content, heading_2, content_2,
		 image_url_2, team_members, mission, vision, description, team_info,
		 company_history)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		a.ID, a.Title, nullStr(a.Subtitle), nullStr(a.ImageURL), nullStr(a.Heading),
		nullStr(a.Content), nullStr(a.Heading2), nullStr(a.Content2),
		nullStr(a.ImageURL2), nullStr(a.TeamMembers), nullStr(a.Mission),
		nullStr(a.Vision), a.Description, nullStr(a.TeamInfo), nullStr(a.CompanyHistory))
	if err != nil {
		return model.About{}, err
	}
	return r.GetAbout(ctx, a.ID)
}

func (r *ContentRepo) GetAbout(ctx context.Context, id string) (model.About, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+aboutCols+" FROM abouts WHERE id=? LIMIT 1", id)
	return scanAbout(row)
}

// LatestAbout returns the newest about row for the public page.
func (r *ContentRepo) LatestAbout(ctx context.Context) (model.About, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+aboutCols+" FROM abouts ORDER BY created_at DESC LIMIT 1")
	return scanAbout(row)
}

func (r *ContentRepo) UpdateAbout(ctx context.Context, a model.About) (model.About, error) {
	_, err := r.DB.ExecContext(ctx, `UPDATE abouts SET
		title=?, subtitle=?, image_url=?, heading=?, content=?, heading_2=?,
		content_2=?, image_url_2=?, team_members=?, mission=?, vision=?,
		description=?, team_info=?, company_history=?, updated_at=NOW()
		WHERE id=?`,
		a.Title, nullStr(a.Subtitle), nullStr(a.ImageURL), nullStr(a.Heading),
		nullStr(a.Content), nullStr(a.Heading2), nullStr(a.Content2),
		nullStr(a.ImageURL2), nullStr(a.TeamMembers), nullStr(a.Mission),
		nullStr(a.Vision), a.Description, nullStr(a.TeamInfo),
		nullStr(a.CompanyHistory), a.ID)
	if err != nil {
		return model.About{}, err
	}
	return r.GetAbout(ctx, a.ID)
}

func (r *ContentRepo) DeleteAbout(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM abouts WHERE id=?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func scanAbout(row rowScanner) (model.About, error) {
	var (
		a model.About
		subtitle, imageURL, heading, content, heading2, content2 sql.NullString
		imageURL2, teamMembers, mission, vision, teamInfo, hist  sql.NullString
		updatedAt                                                sql.NullTime
	)
	err := row.Scan(&a.ID, &a.Title, &subtitle, &imageURL, &heading, &content,
		&heading2, &content2, &imageURL2, &teamMembers, &mission, &vision,
		&a.Description, &teamInfo, &hist, &a.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.About{}, ErrNotFound
	}
	if err != nil {
		return model.About{}, err
	}
	a.Subtitle = subtitle.String
	a.ImageURL = imageURL.String
	a.Heading = heading.String
	a.Content = content.String
	a.Heading2 = heading2.String
	a.Content2 = content2.String
	a.ImageURL2 = imageURL2.String
	a.TeamMembers = teamMembers.String
	a.Mission = mission.String
	a.Vision = vision.String
	a.TeamInfo = teamInfo.String
	a.CompanyHistory = hist.String
	a.UpdatedAt = timeOr(updatedAt, a.CreatedAt)
	return a, nil
}
