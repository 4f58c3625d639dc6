package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SavedPhrase is a user bookmark of a translation pair, independent of any
// session. Tags are stored as given, without deduplication.
type SavedPhrase struct {
	ID             uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID                   `json:"userId" gorm:"type:uuid;not null;index"`
	SourceText     string                      `json:"sourceText" gorm:"type:text;not null"`
	TranslatedText string                      `json:"translatedText" gorm:"type:text;not null"`
	SourceLang     string                      `json:"sourceLang" gorm:"not null"`
	TargetLang     string                      `json:"targetLang" gorm:"not null"`
	CreatedAt      time.Time                   `json:"createdAt"`
	Tags           datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
	ReviewCount    int                         `json:"reviewCount" gorm:"not null;default:0"`
	LastReviewedAt *time.Time                  `json:"lastReviewedAt"`
}
