package domain

import "time"

// EnglishLevel is the CEFR level declared on a user profile.
type EnglishLevel string

const (
	LevelA1 EnglishLevel = "A1"
	LevelA2 EnglishLevel = "A2"
	LevelB1 EnglishLevel = "B1"
	LevelB2 EnglishLevel = "B2"
	LevelC1 EnglishLevel = "C1"
	LevelC2 EnglishLevel = "C2"
)

// User is a staff member. PasswordHash is empty until the user completes
// the reset flow triggered at registration; it never leaves the repository
// on read paths other than credential checks.
type User struct {
	ID           int64         `json:"id" db:"id"`
	Email        string        `json:"email" db:"email"`
	FirstName    *string       `json:"firstName,omitempty" db:"first_name"`
	LastName     *string       `json:"lastName,omitempty" db:"last_name"`
	PasswordHash *string       `json:"-" db:"password"`
	TechSkills   *string       `json:"techSkills,omitempty" db:"tech_skills"`
	ResumeLink   *string       `json:"resumeLink,omitempty" db:"resume_link"`
	EnglishLevel *EnglishLevel `json:"englishLevel,omitempty" db:"english_level"`
	Enabled      bool          `json:"enabled" db:"enabled"`
}

// PasswordToken is a single-use reset token. The ID is the opaque value
// mailed to the user; consumption rewrites ExpirationDate to now instead
// of deleting the row.
type PasswordToken struct {
	ID             string    `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	ExpirationDate time.Time `json:"expirationDate" db:"expiration_date"`
}

// Expired reports whether the token is no longer usable at the given instant.
func (t PasswordToken) Expired(now time.Time) bool {
	return t.ExpirationDate.Before(now)
}
