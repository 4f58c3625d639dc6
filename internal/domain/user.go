package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string     `json:"-" gorm:"not null"`
	FullName         string     `json:"fullName"`
	SubscriptionTier string     `json:"subscriptionTier" gorm:"not null;default:'free'"`
	Active           bool       `json:"active" gorm:"not null;default:true"`
	TranslationQuota int        `json:"translationQuota" gorm:"not null;default:1000"`
	TranslationsUsed int        `json:"translationsUsed" gorm:"not null;default:0"`
	LastLoginAt      *time.Time `json:"lastLoginAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
