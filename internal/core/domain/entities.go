package domain

import "time"

// Privilege levels for administrative accounts
const (
	LevelStaff     = 1
	LevelModerator = 2
	LevelManager   = 3
)

// AccessType represents how a movie can be rented
type AccessType string

const (
	AccessFree AccessType = "FREE"
	AccessPlus AccessType = "PLUS"
)

// IsValid reports whether the access type is one of the known values
func (a AccessType) IsValid() bool {
	return a == AccessFree || a == AccessPlus
}

// Identity is the verified subject of a request, reconstructed per request
// from a validated session token. Never persisted.
type Identity struct {
	ID    uint
	Name  string
	Level int
}

// Admin represents an administrative account in the domain layer
type Admin struct {
	ID        uint
	Name      string
	Email     string
	Password  string // Hashed
	Level     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Customer represents a rental customer account
type Customer struct {
	ID        string // UUID
	Name      string
	Email     string
	Password  string // Hashed
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Review represents a customer review of a movie. Flagged and Reply are
// independent moderation facets, not a single state enum: all four
// combinations are reachable.
type Review struct {
	ID         uint
	CustomerID string
	MovieID    uint
	Comment    string
	Rating     int
	Reply      *string
	Flagged    bool
	CreatedAt  time.Time
}
