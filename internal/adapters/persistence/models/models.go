package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Accounts
// ============================================================

// Admin represents the admins table
type Admin struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Level     int            `gorm:"not null;default:1" json:"level"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Admin) TableName() string {
	return "admins"
}

// AdminResponse DTO
type AdminResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Admin) ToResponse() *AdminResponse {
	return &AdminResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Level:     a.Level,
		CreatedAt: a.CreatedAt,
	}
}

// Customer represents the customers table (UUID primary key)
type Customer struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate assigns a fresh UUID when none was provided
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CustomerResponse DTO
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Customer) ToResponse() *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

// CustomerSummary is the eager-loaded shape embedded in review listings
type CustomerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ============================================================
// Catalog
// ============================================================

// Genre represents the genres table
type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Genre) TableName() string {
	return "genres"
}

// Movie represents the movies table
type Movie struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Synopsis   string    `gorm:"type:text" json:"synopsis"`
	Year       int       `gorm:"not null" json:"year"`
	Duration   int       `gorm:"not null" json:"duration"`
	Price      float64   `gorm:"type:decimal(10,2);default:0" json:"price"`
	Photo      string    `gorm:"size:500" json:"photo"`
	AccessType string    `gorm:"size:10;not null;default:'PLUS'" json:"access_type"`
	Featured   bool      `gorm:"default:true" json:"featured"`
	GenreID    uint      `gorm:"not null;index" json:"genre_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Genre *Genre `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieSummary is the eager-loaded shape embedded in review listings
type MovieSummary struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Genre string  `json:"genre,omitempty"`
	Price float64 `json:"price"`
	Photo string  `json:"photo"`
	Year  int     `json:"year"`
}

func (m *Movie) ToSummary() *MovieSummary {
	s := &MovieSummary{
		ID:    m.ID,
		Title: m.Title,
		Price: m.Price,
		Photo: m.Photo,
		Year:  m.Year,
	}
	if m.Genre != nil {
		s.Genre = m.Genre.Name
	}
	return s
}

// ============================================================
// Reviews & moderation
// ============================================================

// Review represents the reviews table. Flagged and Reply are independent
// moderation facets; flagging is monotonic (there is no unflag operation).
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID string    `gorm:"type:char(36);not null;index" json:"customer_id"`
	MovieID    uint      `gorm:"not null;index" json:"movie_id"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	Rating     int       `gorm:"not null" json:"rating"`
	Reply      *string   `gorm:"type:text" json:"reply,omitempty"`
	Flagged    bool      `gorm:"not null;default:false;index" json:"flagged"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Movie    *Movie    `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewResponse DTO with eager-loaded customer and movie summaries
type ReviewResponse struct {
	ID        uint             `json:"id"`
	Comment   string           `json:"comment"`
	Rating    int              `json:"rating"`
	Reply     *string          `json:"reply,omitempty"`
	Flagged   bool             `json:"flagged"`
	CreatedAt time.Time        `json:"created_at"`
	Customer  *CustomerSummary `json:"customer,omitempty"`
	Movie     *MovieSummary    `json:"movie,omitempty"`
}

func (r *Review) ToResponse() *ReviewResponse {
	resp := &ReviewResponse{
		ID:        r.ID,
		Comment:   r.Comment,
		Rating:    r.Rating,
		Reply:     r.Reply,
		Flagged:   r.Flagged,
		CreatedAt: r.CreatedAt,
	}

	if r.Customer != nil {
		resp.Customer = &CustomerSummary{ID: r.Customer.ID, Name: r.Customer.Name}
	}
	if r.Movie != nil {
		resp.Movie = r.Movie.ToSummary()
	}

	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Customer{},
		&Genre{},
		&Movie{},
		&Review{},
	)
}
