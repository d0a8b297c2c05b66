package testutil

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkamath/wanderstay/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
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
		ID:           uuid.New(),
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin creates the user in the database and logs the client in
// through the login form, so the client's cookie jar carries an
// authenticated session.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer, client *http.Client) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	resp := ts.PostForm(t, client, "/login", url.Values{
		"username": {b.username},
		"password": {password},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login during fixture setup returned status %d", resp.StatusCode)
	}

	return user, password
}

// ListingBuilder creates test listings
type ListingBuilder struct {
	title    string
	location string
	country  string
	price    int64
	ownerID  uuid.UUID
}

func NewListingBuilder(ownerID uuid.UUID) *ListingBuilder {
	return &ListingBuilder{
		title:    fmt.Sprintf("Test Listing %s", uuid.New().String()[:8]),
		location: "Lisbon",
		country:  "Portugal",
		price:    120,
		ownerID:  ownerID,
	}
}

func (b *ListingBuilder) WithTitle(title string) *ListingBuilder {
	b.title = title
	return b
}

func (b *ListingBuilder) WithPrice(price int64) *ListingBuilder {
	b.price = price
	return b
}

func (b *ListingBuilder) Build(t *testing.T, db *gorm.DB) *domain.Listing {
	t.Helper()

	listing := &domain.Listing{
		ID:        uuid.New(),
		Title:     b.title,
		Location:  b.location,
		Country:   b.country,
		Price:     b.price,
		OwnerID:   b.ownerID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(listing).Error; err != nil {
		t.Fatalf("failed to create listing: %v", err)
	}

	return listing
}
