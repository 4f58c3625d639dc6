package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a bounded interval of conversation between two languages.
// EndTime is set at most once; TotalUtterances is maintained in the same
// transaction as each utterance insert so the counter never diverges from
// the utterance rows.
type Session struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	SourceLang      string     `json:"sourceLang" gorm:"not null"`
	TargetLang      string     `json:"targetLang" gorm:"not null"`
	StartTime       time.Time  `json:"startTime" gorm:"not null"`
	EndTime         *time.Time `json:"endTime"`
	TotalUtterances int        `json:"totalUtterances" gorm:"not null;default:0"`
	Saved           bool       `json:"saved" gorm:"not null;default:false"`
	Title           string     `json:"title"`
}

type Utterance struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID      uuid.UUID `json:"sessionId" gorm:"type:uuid;not null;index"`
	SourceText     string    `json:"sourceText" gorm:"type:text;not null"`
	TranslatedText string    `json:"translatedText" gorm:"type:text;not null"`
	Confidence     float64   `json:"confidence" gorm:"not null"`
	Timestamp      time.Time `json:"timestamp" gorm:"not null"`
	AudioURL       string    `json:"audioUrl"`
	IsFinal        bool      `json:"isFinal" gorm:"not null;default:true"`
}
