package domain

import "time"

type User struct {
	Id            int        `db:"id" json:"id"`
	Username      string     `db:"username" json:"username"`
	Email         string     `db:"email" json:"email"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	PasswordHash  string     `db:"password_hash" json:"-"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	IsAdmin       bool       `db:"is_admin" json:"is_admin"`
	LastLoginIP   *string    `db:"last_login_ip" json:"last_login_ip,omitempty"`
	LoginAttempts int        `db:"login_attempts" json:"-"`
	LockedUntil   *time.Time `db:"locked_until" json:"-"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

type UserPreferences struct {
	UserId int `db:"user_id" json:"-"`

	DarkMode    bool `db:"dark_mode" json:"dark_mode"`
	CompactView bool `db:"compact_view" json:"compact_view"`

	RefreshInterval int    `db:"refresh_interval" json:"refresh_interval"`
	ItemsPerPage    int    `db:"items_per_page" json:"items_per_page"`
	Timezone        string `db:"timezone" json:"timezone"`

	EmailAnomalies bool `db:"email_anomalies" json:"email_anomalies"`
	EmailCritical  bool `db:"email_critical" json:"email_critical"`
	EmailReports   bool `db:"email_reports" json:"email_reports"`
	EmailUpdates   bool `db:"email_updates" json:"email_updates"`

	BrowserNotifications bool `db:"browser_notifications" json:"browser_notifications"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func DefaultPreferences(userId int) *UserPreferences {
	return &UserPreferences{
		UserId:          userId,
		RefreshInterval: 10,
		ItemsPerPage:    25,
		Timezone:        "UTC",
		EmailAnomalies:  true,
		EmailCritical:   true,
	}
}

type DisplayPreferences struct {
	DarkMode        bool
	CompactView     bool
	RefreshInterval int
	ItemsPerPage    int
	Timezone        string
}

type NotificationPreferences struct {
	EmailAnomalies       bool
	EmailCritical        bool
	EmailReports         bool
	EmailUpdates         bool
	BrowserNotifications bool
}

type ProfileUpdate struct {
	FirstName string
	LastName  string
	Email     string
}

type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

// NewUser is the input for operator account creation.
type NewUser struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	IsAdmin   bool
}

type UserSettings struct {
	User        User            `json:"user"`
	Preferences UserPreferences `json:"preferences"`
}
