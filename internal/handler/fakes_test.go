package handler_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"streamflix/internal/app"
	"streamflix/internal/model"
	"streamflix/internal/repository"
	"streamflix/internal/security"
	"streamflix/internal/service/domain"
	"streamflix/internal/service/workflow"
)

// fakeMovieRepo implements the content store contract in memory: newest
// created first, malformed identifiers treated as not found, substring
// matching case-insensitive.
type fakeMovieRepo struct {
	mu     sync.Mutex
	movies []*model.Movie
}

var _ repository.MovieRepo = (*fakeMovieRepo)(nil)

func (f *fakeMovieRepo) newestFirst() []*model.Movie {
	out := make([]*model.Movie, 0, len(f.movies))
	for i := len(f.movies) - 1; i >= 0; i-- {
		out = append(out, f.movies[i])
	}
	return out
}

func (f *fakeMovieRepo) List(ctx context.Context) ([]*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.newestFirst(), nil
}

func (f *fakeMovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(id) != 24 {
		return nil, nil
	}
	for _, m := range f.movies {
		if m.ID.Hex() == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie.ID = primitive.NewObjectID()
	movie.CreatedAt = time.Now()
	movie.UpdatedAt = movie.CreatedAt
	stored := *movie
	f.movies = append(f.movies, &stored)
	return movie, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, id string, movie *model.Movie) (*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(id) != 24 {
		return nil, nil
	}
	for _, m := range f.movies {
		if m.ID.Hex() == id {
			m.Title = movie.Title
			m.Description = movie.Description
			m.Genre = movie.Genre
			m.Year = movie.Year
			m.Rating = movie.Rating
			m.Duration = movie.Duration
			m.Media = movie.Media
			m.Video = movie.Video
			m.UpdatedAt = time.Now()
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(id) != 24 {
		return false, nil
	}
	for i, m := range f.movies {
		if m.ID.Hex() == id {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (f *fakeMovieRepo) Search(ctx context.Context, query string) ([]*model.Movie, error) {
	if strings.TrimSpace(query) == "" {
		return f.List(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Movie{}
	for _, m := range f.newestFirst() {
		if containsFold(m.Title, query) || containsFold(m.Description, query) || containsFold(m.Genre, query) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) ByGenre(ctx context.Context, genre string) ([]*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Movie{}
	for _, m := range f.newestFirst() {
		if containsFold(m.Genre, genre) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) ByYear(ctx context.Context, year int) ([]*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Movie{}
	for _, m := range f.newestFirst() {
		if m.Year == year {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeAdminRepo stores credentials in memory, hashing on create like the
// real store does.
type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*model.Admin
}

var _ repository.AdminRepo = (*fakeAdminRepo)(nil)

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*model.Admin)}
}

func (f *fakeAdminRepo) FindByEmail(ctx context.Context, email string, includePassword bool) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin, ok := f.admins[email]
	if !ok {
		return nil, nil
	}
	copied := *admin
	if !includePassword {
		copied.Password = ""
	}
	return &copied, nil
}

func (f *fakeAdminRepo) Create(ctx context.Context, email, password string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.admins[email]; ok {
		return nil, repository.ErrDuplicateEmail
	}
	hash, err := security.EncryptPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	admin := &model.Admin{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hash,
		Role:      model.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.admins[email] = admin
	copied := *admin
	return &copied, nil
}

const testSecret = "test-secret"

type testEnv struct {
	app       *app.App
	movieRepo *fakeMovieRepo
	adminRepo *fakeAdminRepo
	tokens    *security.TokenManager
}

func newTestEnv() *testEnv {
	logger := zap.NewNop()
	movieRepo := &fakeMovieRepo{}
	adminRepo := newFakeAdminRepo()
	tokens := security.NewTokenManager(testSecret, time.Hour)

	movieService := domain.NewMovieService(movieRepo, nil, logger)
	authService := domain.NewAuthService(adminRepo, tokens, logger)

	a := &app.App{
		Logger:          logger,
		Tokens:          tokens,
		MovieRepo:       movieRepo,
		AdminRepo:       adminRepo,
		MovieService:    movieService,
		AuthService:     authService,
		ContentWorkflow: workflow.NewContentWorkflow(movieService, nil, logger),
	}

	return &testEnv{
		app:       a,
		movieRepo: movieRepo,
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}
