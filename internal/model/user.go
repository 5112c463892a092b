package model

import "time"

// User is the account record. PasswordHash is excluded from every JSON
// rendering; no endpoint may serialize it.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"size:20;not null;uniqueIndex" json:"username"`
	Email           string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	PasswordHash    string    `gorm:"size:255;not null" json:"-"`
	Verified        bool      `gorm:"not null;default:false" json:"verified"`
	FirstName       string    `gorm:"size:64" json:"first"`
	LastName        string    `gorm:"size:64" json:"last"`
	City            string    `gorm:"size:64" json:"city"`
	DisplayPicture  string    `gorm:"size:255" json:"dp"`
	QuestionsPosted int       `gorm:"not null;default:0" json:"questions_posted"`
	AnswersAccepted int       `gorm:"not null;default:0" json:"answers_accepted"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileUpdate carries the settings fields a user may change. Nil pointers
// mean "leave untouched".
type ProfileUpdate struct {
	FirstName      *string `json:"first"`
	LastName       *string `json:"last"`
	DisplayPicture *string `json:"dp"`
	City           *string `json:"city"`
}
