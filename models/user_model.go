package models

import (
	"time"
)

type UserProgress struct {
	TotalQuizzes     int      `gorm:"default:0" json:"total_quizzes"`
	CorrectAnswers   int      `gorm:"default:0" json:"correct_answers"`
	WrongAnswers     int      `gorm:"default:0" json:"wrong_answers"`
	CompletedLessons []string `gorm:"serializer:json" json:"completed_lessons"`
	CompletedTopics  []string `gorm:"serializer:json" json:"completed_topics"`
	CurrentStreak    int      `gorm:"default:0" json:"current_streak"`
	BestStreak       int      `gorm:"default:0" json:"best_streak"`
	LastStudyDate    string   `gorm:"size:30" json:"last_study_date"`
	Level            int      `gorm:"default:1" json:"level"`
	XP               int      `gorm:"default:0" json:"xp"`
	Badges           []string `gorm:"serializer:json" json:"badges"`
	ExamReadiness    int      `gorm:"default:0" json:"exam_readiness"`
}

type UserSettings struct {
	Language      string `gorm:"size:10;default:'ar'" json:"language"`
	Theme         string `gorm:"size:10;default:'light'" json:"theme"`
	Notifications bool   `gorm:"default:true" json:"notifications"`
	SoundEffects  bool   `gorm:"default:true" json:"sound_effects"`
	FontSize      string `gorm:"size:10;default:'medium'" json:"font_size"`
}

// CommunityRestrictions disable single social actions without a full ban.
// A false flag means the action is blocked.
type CommunityRestrictions struct {
	CanPost    bool `gorm:"default:true" json:"can_post"`
	CanComment bool `gorm:"default:true" json:"can_comment"`
	CanReply   bool `gorm:"default:true" json:"can_reply"`
}

type User struct {
	ID        string `gorm:"size:36;primary_key" json:"id"`
	Email     string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Name      string `gorm:"size:255;not null" json:"name"`
	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Username  string `gorm:"size:50" json:"username"`
	Avatar    string `gorm:"size:512" json:"avatar"`
	Bio       string `gorm:"type:text" json:"bio"`

	Role        string   `gorm:"size:20;not null;default:'user'" json:"role"`
	Permissions []string `gorm:"serializer:json" json:"permissions"`
	IsBanned    bool     `gorm:"default:false" json:"is_banned"`
	Verified    bool     `gorm:"default:false" json:"verified"`
	Following   []string `gorm:"serializer:json" json:"following"`

	Restrictions CommunityRestrictions `gorm:"embedded;embeddedPrefix:restrict_" json:"restrictions"`

	ProfileComplete bool   `gorm:"default:false" json:"profile_complete"`
	BirthDate       string `gorm:"size:30" json:"birth_date"`
	Country         string `gorm:"size:100" json:"country"`
	Province        string `gorm:"size:100" json:"province"`
	Gender          string `gorm:"size:20" json:"gender"`
	Phone           string `gorm:"size:30" json:"phone"`
	PhoneCode       string `gorm:"size:10" json:"phone_code"`
	ItalianLevel    string `gorm:"size:30" json:"italian_level"`
	PrivacyHideStats bool  `gorm:"default:false" json:"privacy_hide_stats"`

	Progress UserProgress `gorm:"embedded;embeddedPrefix:progress_" json:"progress"`
	Settings UserSettings `gorm:"embedded;embeddedPrefix:settings_" json:"settings"`

	ResetPasswordToken          *string    `gorm:"size:255;uniqueIndex" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
