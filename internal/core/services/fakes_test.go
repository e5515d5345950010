package services

import (
	"context"
	"sort"
	"time"

	"cineplus-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests. They honor the
// same contracts as the GORM implementations, including
// gorm.ErrRecordNotFound on missing rows and newest-first listings.

type fakeReviewRepo struct {
	nextID  uint
	reviews map[uint]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{nextID: 1, reviews: map[uint]*models.Review{}}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	review.ID = f.nextID
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	f.nextID++
	copied := *review
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id uint) (*models.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) list(filter func(*models.Review) bool) []*models.Review {
	var out []*models.Review
	for _, r := range f.reviews {
		if filter(r) {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeReviewRepo) List(_ context.Context) ([]*models.Review, error) {
	return f.list(func(*models.Review) bool { return true }), nil
}

func (f *fakeReviewRepo) ListFlagged(_ context.Context) ([]*models.Review, error) {
	return f.list(func(r *models.Review) bool { return r.Flagged }), nil
}

func (f *fakeReviewRepo) ListByMovie(_ context.Context, movieID uint) ([]*models.Review, error) {
	return f.list(func(r *models.Review) bool { return r.MovieID == movieID }), nil
}

func (f *fakeReviewRepo) ListByCustomer(_ context.Context, customerID string) ([]*models.Review, error) {
	return f.list(func(r *models.Review) bool { return r.CustomerID == customerID }), nil
}

func (f *fakeReviewRepo) Flag(_ context.Context, id uint) error {
	if review, ok := f.reviews[id]; ok {
		review.Flagged = true
	}
	return nil
}

func (f *fakeReviewRepo) SetReply(_ context.Context, id uint, reply string) error {
	if review, ok := f.reviews[id]; ok {
		review.Reply = &reply
	}
	return nil
}

func (f *fakeReviewRepo) UpdateFields(_ context.Context, id uint, fields map[string]interface{}) error {
	review, ok := f.reviews[id]
	if !ok {
		return nil
	}
	for column, value := range fields {
		switch column {
		case "customer_id":
			review.CustomerID = value.(string)
		case "movie_id":
			review.MovieID = value.(uint)
		case "comment":
			review.Comment = value.(string)
		case "rating":
			review.Rating = value.(int)
		case "reply":
			reply := value.(string)
			review.Reply = &reply
		}
	}
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uint) error {
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) DeleteByMovie(_ context.Context, movieID uint) error {
	for id, r := range f.reviews {
		if r.MovieID == movieID {
			delete(f.reviews, id)
		}
	}
	return nil
}

func (f *fakeReviewRepo) CountByMovie(_ context.Context, movieID uint) (int64, error) {
	var count int64
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			count++
		}
	}
	return count, nil
}

type fakeMovieRepo struct {
	nextID uint
	movies map[uint]*models.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{nextID: 1, movies: map[uint]*models.Movie{}}
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *models.Movie) error {
	movie.ID = f.nextID
	f.nextID++
	copied := *movie
	f.movies[movie.ID] = &copied
	return nil
}

func (f *fakeMovieRepo) GetByID(_ context.Context, id uint) (*models.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *movie
	return &copied, nil
}

func (f *fakeMovieRepo) List(_ context.Context, offset, limit int) ([]*models.Movie, int64, error) {
	var out []*models.Movie
	for _, m := range f.movies {
		copied := *m
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMovieRepo) SearchByText(_ context.Context, _ string) ([]*models.Movie, error) {
	return nil, nil
}

func (f *fakeMovieRepo) SearchByYear(_ context.Context, year int) ([]*models.Movie, error) {
	var out []*models.Movie
	for _, m := range f.movies {
		if m.Year == year {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) SearchByMaxPrice(_ context.Context, price float64) ([]*models.Movie, error) {
	var out []*models.Movie
	for _, m := range f.movies {
		if m.Price <= price {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) Update(_ context.Context, movie *models.Movie) error {
	copied := *movie
	f.movies[movie.ID] = &copied
	return nil
}

func (f *fakeMovieRepo) UpdateFields(_ context.Context, id uint, fields map[string]interface{}) error {
	movie, ok := f.movies[id]
	if !ok {
		return nil
	}
	for column, value := range fields {
		switch column {
		case "title":
			movie.Title = value.(string)
		case "synopsis":
			movie.Synopsis = value.(string)
		case "year":
			movie.Year = value.(int)
		case "duration":
			movie.Duration = value.(int)
		case "price":
			movie.Price = value.(float64)
		case "photo":
			movie.Photo = value.(string)
		case "access_type":
			movie.AccessType = value.(string)
		case "featured":
			movie.Featured = value.(bool)
		case "genre_id":
			movie.GenreID = value.(uint)
		}
	}
	return nil
}

func (f *fakeMovieRepo) SetFeatured(_ context.Context, id uint, featured bool) error {
	if movie, ok := f.movies[id]; ok {
		movie.Featured = featured
	}
	return nil
}

func (f *fakeMovieRepo) Delete(_ context.Context, id uint) error {
	delete(f.movies, id)
	return nil
}

type fakeGenreRepo struct {
	genres map[uint]*models.Genre
}

func newFakeGenreRepo(genres ...*models.Genre) *fakeGenreRepo {
	repo := &fakeGenreRepo{genres: map[uint]*models.Genre{}}
	for _, g := range genres {
		repo.genres[g.ID] = g
	}
	return repo
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *models.Genre) error {
	genre.ID = uint(len(f.genres) + 1)
	f.genres[genre.ID] = genre
	return nil
}

func (f *fakeGenreRepo) GetByID(_ context.Context, id uint) (*models.Genre, error) {
	genre, ok := f.genres[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return genre, nil
}

func (f *fakeGenreRepo) List(_ context.Context) ([]*models.Genre, error) {
	var out []*models.Genre
	for _, g := range f.genres {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGenreRepo) Update(_ context.Context, genre *models.Genre) error {
	f.genres[genre.ID] = genre
	return nil
}

func (f *fakeGenreRepo) Delete(_ context.Context, id uint) error {
	delete(f.genres, id)
	return nil
}

type fakeAdminRepo struct {
	nextID uint
	admins map[uint]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{nextID: 1, admins: map[uint]*models.Admin{}}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	admin.ID = f.nextID
	f.nextID++
	copied := *admin
	f.admins[admin.ID] = &copied
	return nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id uint) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdminRepo) List(_ context.Context, offset, limit int) ([]*models.Admin, int64, error) {
	var out []*models.Admin
	for _, a := range f.admins {
		copied := *a
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAdminRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*models.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = "00000000-0000-0000-0000-000000000001"
	}
	copied := *customer
	f.customers[customer.ID] = &copied
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*models.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *customer
	return &copied, nil
}

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) List(_ context.Context, offset, limit int) ([]*models.Customer, int64, error) {
	var out []*models.Customer
	for _, c := range f.customers {
		copied := *c
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}
