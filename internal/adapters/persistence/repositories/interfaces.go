package repositories

import (
	"context"

	"cineplus-api/internal/adapters/persistence/models"
)

// AdminRepository defines the admin account repository interface
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	List(ctx context.Context, offset, limit int) ([]*models.Admin, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CustomerRepository defines the customer account repository interface
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	List(ctx context.Context, offset, limit int) ([]*models.Customer, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// GenreRepository defines the genre repository interface
type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	GetByID(ctx context.Context, id uint) (*models.Genre, error)
	List(ctx context.Context) ([]*models.Genre, error)
	Update(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uint) error
}

// MovieRepository defines the movie repository interface
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	GetByID(ctx context.Context, id uint) (*models.Movie, error)
	List(ctx context.Context, offset, limit int) ([]*models.Movie, int64, error)
	SearchByText(ctx context.Context, term string) ([]*models.Movie, error)
	SearchByYear(ctx context.Context, year int) ([]*models.Movie, error)
	SearchByMaxPrice(ctx context.Context, price float64) ([]*models.Movie, error)
	Update(ctx context.Context, movie *models.Movie) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	SetFeatured(ctx context.Context, id uint, featured bool) error
	Delete(ctx context.Context, id uint) error
}

// ReviewRepository defines the review repository interface. Flag and
// SetReply are targeted single-column updates so concurrent edits of
// distinct fields never clobber each other.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	List(ctx context.Context) ([]*models.Review, error)
	ListFlagged(ctx context.Context) ([]*models.Review, error)
	ListByMovie(ctx context.Context, movieID uint) ([]*models.Review, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Review, error)
	Flag(ctx context.Context, id uint) error
	SetReply(ctx context.Context, id uint, reply string) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	DeleteByMovie(ctx context.Context, movieID uint) error
	CountByMovie(ctx context.Context, movieID uint) (int64, error)
}
