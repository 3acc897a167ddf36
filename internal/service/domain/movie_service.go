package domain

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"streamflix/internal/cache"
	"streamflix/internal/model"
	"streamflix/internal/repository"
	"streamflix/internal/service"
)

type MovieService interface {
	GetAllMovies(ctx context.Context) ([]*model.Movie, error)
	GetMovieByID(ctx context.Context, id string) (*model.Movie, error)
	SearchMovies(ctx context.Context, query string) ([]*model.Movie, error)
	GetMoviesByGenre(ctx context.Context, genre string) ([]*model.Movie, error)
	GetMoviesByYear(ctx context.Context, year int) ([]*model.Movie, error)
	CreateMovie(ctx context.Context, in *model.CreateMovieInput) (*model.Movie, error)
	UpdateMovie(ctx context.Context, id string, in *model.UpdateMovieInput) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

type movieService struct {
	repo   repository.MovieRepo
	cache  *cache.RedisCache
	logger *zap.Logger
}

var _ MovieService = (*movieService)(nil)

func NewMovieService(movieRepo repository.MovieRepo, redisCache *cache.RedisCache, logger *zap.Logger) *movieService {
	return &movieService{
		repo:   movieRepo,
		cache:  redisCache,
		logger: logger,
	}
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]*model.Movie, error) {
	var cached []*model.Movie
	if err := s.cache.Get(cache.MovieListKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("movie list cache read failed", zap.Error(err))
	}

	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cache.MovieListKey, movies, cache.DefaultTTL); err != nil {
		s.logger.Warn("movie list cache write failed", zap.Error(err))
	}
	return movies, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id string) (*model.Movie, error) {
	key := cache.MakeMovieKey(id)

	var cached model.Movie
	if err := s.cache.Get(key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("movie cache read failed", zap.String("id", id), zap.Error(err))
	}

	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, service.ErrNotFound
	}

	if err := s.cache.Set(key, movie, cache.DefaultTTL); err != nil {
		s.logger.Warn("movie cache write failed", zap.String("id", id), zap.Error(err))
	}
	return movie, nil
}

// SearchMovies matches query as a case-insensitive substring of title,
// description or genre. A blank query is the full listing.
func (s *movieService) SearchMovies(ctx context.Context, query string) ([]*model.Movie, error) {
	return s.repo.Search(ctx, query)
}

func (s *movieService) GetMoviesByGenre(ctx context.Context, genre string) ([]*model.Movie, error) {
	return s.repo.ByGenre(ctx, genre)
}

func (s *movieService) GetMoviesByYear(ctx context.Context, year int) ([]*model.Movie, error) {
	return s.repo.ByYear(ctx, year)
}

func (s *movieService) CreateMovie(ctx context.Context, in *model.CreateMovieInput) (*model.Movie, error) {
	movie := in.Movie()
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, movie)
	if err != nil {
		return nil, err
	}

	s.invalidate(cache.MovieListKey)
	return created, nil
}

// UpdateMovie merges only the supplied fields onto the stored record and
// re-validates the merged result before writing it back.
func (s *movieService) UpdateMovie(ctx context.Context, id string, in *model.UpdateMovieInput) (*model.Movie, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, service.ErrNotFound
	}

	merged := *existing
	in.Apply(&merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, service.ErrNotFound
	}

	s.invalidate(cache.MovieListKey, cache.MakeMovieKey(id))
	return updated, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return service.ErrNotFound
	}

	s.invalidate(cache.MovieListKey, cache.MakeMovieKey(id))
	return nil
}

// invalidate drops cache keys after a successful mutation. Cache failures
// never fail the request, the entries expire on their own TTL.
func (s *movieService) invalidate(keys ...string) {
	if err := s.cache.Invalidate(keys...); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
