package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lumatalk/lumatalk-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	fullName string
	active   bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		fullName: "Test User",
		active:   true,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Inactive marks the account as deactivated
func (b *UserBuilder) Inactive() *UserBuilder {
	b.active = false
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:               uuid.New(),
		Email:            b.email,
		PasswordHash:     string(hashedPassword),
		FullName:         b.fullName,
		SubscriptionTier: "free",
		Active:           b.active,
		TranslationQuota: 1000,
		TranslationsUsed: 0,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// BuildAndAuthenticate creates a user via the API and returns it with a bearer token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"email":    b.email,
		"password": b.password,
		"fullName": b.fullName,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.UserID)
	user := &domain.User{
		ID:    userID,
		Email: authResp.Email,
	}

	return user, authResp.Token
}

// SessionBuilder creates test sessions with a builder pattern
type SessionBuilder struct {
	userID     uuid.UUID
	sourceLang string
	targetLang string
	startTime  time.Time
	ended      bool
}

// NewSessionBuilder creates a new SessionBuilder with default values
func NewSessionBuilder(userID uuid.UUID) *SessionBuilder {
	return &SessionBuilder{
		userID:     userID,
		sourceLang: "en",
		targetLang: "fr",
		startTime:  time.Now(),
	}
}

// WithStartTime sets the start time, for ordering assertions
func (b *SessionBuilder) WithStartTime(ts time.Time) *SessionBuilder {
	b.startTime = ts
	return b
}

// WithLanguages sets the language pair
func (b *SessionBuilder) WithLanguages(source, target string) *SessionBuilder {
	b.sourceLang = source
	b.targetLang = target
	return b
}

// Ended marks the session as already ended
func (b *SessionBuilder) Ended() *SessionBuilder {
	b.ended = true
	return b
}

// Build creates the session in the database
func (b *SessionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Session {
	t.Helper()

	session := &domain.Session{
		ID:         uuid.New(),
		UserID:     b.userID,
		SourceLang: b.sourceLang,
		TargetLang: b.targetLang,
		StartTime:  b.startTime,
	}
	if b.ended {
		endTime := time.Now()
		session.EndTime = &endTime
	}

	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	return session
}

// PhraseBuilder creates test saved phrases with a builder pattern
type PhraseBuilder struct {
	userID         uuid.UUID
	sourceText     string
	translatedText string
	sourceLang     string
	targetLang     string
	createdAt      time.Time
	tags           []string
}

// NewPhraseBuilder creates a new PhraseBuilder with default values
func NewPhraseBuilder(userID uuid.UUID) *PhraseBuilder {
	return &PhraseBuilder{
		userID:         userID,
		sourceText:     "hello",
		translatedText: "bonjour",
		sourceLang:     "en",
		targetLang:     "fr",
		createdAt:      time.Now(),
	}
}

// WithCreatedAt sets the creation time, for ordering assertions
func (b *PhraseBuilder) WithCreatedAt(ts time.Time) *PhraseBuilder {
	b.createdAt = ts
	return b
}

// WithText sets the source and translated text
func (b *PhraseBuilder) WithText(source, translated string) *PhraseBuilder {
	b.sourceText = source
	b.translatedText = translated
	return b
}

// WithLanguages sets the language pair
func (b *PhraseBuilder) WithLanguages(source, target string) *PhraseBuilder {
	b.sourceLang = source
	b.targetLang = target
	return b
}

// WithTags sets the tags
func (b *PhraseBuilder) WithTags(tags ...string) *PhraseBuilder {
	b.tags = tags
	return b
}

// Build creates the phrase in the database
func (b *PhraseBuilder) Build(t *testing.T, db *gorm.DB) *domain.SavedPhrase {
	t.Helper()

	phrase := &domain.SavedPhrase{
		ID:             uuid.New(),
		UserID:         b.userID,
		SourceText:     b.sourceText,
		TranslatedText: b.translatedText,
		SourceLang:     b.sourceLang,
		TargetLang:     b.targetLang,
		CreatedAt:      b.createdAt,
		Tags:           b.tags,
	}

	if err := db.Create(phrase).Error; err != nil {
		t.Fatalf("failed to create phrase: %v", err)
	}

	return phrase
}
