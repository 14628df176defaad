package model

import "time"

// News is a row in `news`. Managed by admins, readable by users and (latest
// two items) by unauthenticated visitors on the landing page.
type News struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishDate string    `json:"publish_date"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LiveSession is a row in `live_sessions`.
type LiveSession struct {
	ID              string    `json:"id"`
	SessionTitle    string    `json:"session_title"`
	Host            string    `json:"host"`
	Description     string    `json:"description,omitempty"`
	DateTime        time.Time `json:"date_time"`
	DurationMinutes int       `json:"duration_minutes"`
	YoutubeLink     string    `json:"youtube_link,omitempty"`
	LiveStatus      bool      `json:"livestatus"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Contact is a row in `contacts`; the public page shows the latest row.
type Contact struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	OfficeHours  string    `json:"office_hours,omitempty"`
	SupportEmail string    `json:"support_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// About is a row in `abouts`; the public page shows the latest row.
type About struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	Heading        string    `json:"heading,omitempty"`
	Content        string    `json:"content,omitempty"`
	Heading2       string    `json:"heading_2,omitempty"`
	Content2       string    `json:"content_2,omitempty"`
	ImageURL2      string    `json:"image_url_2,omitempty"`
	TeamMembers    string    `json:"team_members,omitempty"`
	Mission        string    `json:"mission,omitempty"`
	Vision         string    `json:"vision,omitempty"`
	Description    string    `json:"description"`
	TeamInfo       string    `json:"team_info,omitempty"`
	CompanyHistory string    `json:"company_history,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
