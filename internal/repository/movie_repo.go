package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"streamflix/internal/model"
)

const movieCollection = "movies"

// MovieRepo is the content store. Lookups by identifier return (nil, nil)
// when no record matches; an identifier that is not a 24-char hex string is
// treated the same way, not as an error.
type MovieRepo interface {
	List(ctx context.Context) ([]*model.Movie, error)
	GetByID(ctx context.Context, id string) (*model.Movie, error)
	Create(ctx context.Context, movie *model.Movie) (*model.Movie, error)
	Update(ctx context.Context, id string, movie *model.Movie) (*model.Movie, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]*model.Movie, error)
	ByGenre(ctx context.Context, genre string) ([]*model.Movie, error)
	ByYear(ctx context.Context, year int) ([]*model.Movie, error)
}

type movieRepoMongo struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

var _ MovieRepo = (*movieRepoMongo)(nil)

func NewMovieRepoMongo(db *mongo.Database, logger *zap.Logger) *movieRepoMongo {
	return &movieRepoMongo{
		collection: db.Collection(movieCollection),
		logger:     logger,
	}
}

// parseID converts a client-supplied identifier into an ObjectID. The false
// return covers both wrong-length and non-hex input.
func parseID(id string) (primitive.ObjectID, bool) {
	if len(id) != 24 {
		return primitive.NilObjectID, false
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return objectID, true
}

// newestFirst orders all list results by creation time, latest record first.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

func (r *movieRepoMongo) find(ctx context.Context, filter bson.M) ([]*model.Movie, error) {
	cursor, err := r.collection.Find(ctx, filter, newestFirst())
	if err != nil {
		r.logger.Error("failed to query movies", zap.Error(err))
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := []*model.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		r.logger.Error("failed to decode movies", zap.Error(err))
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepoMongo) List(ctx context.Context) ([]*model.Movie, error) {
	return r.find(ctx, bson.M{})
}

func (r *movieRepoMongo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	objectID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	var movie model.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error("failed to find movie", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	return &movie, nil
}

func (r *movieRepoMongo) Create(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	movie.ID = primitive.NewObjectID()
	movie.CreatedAt = time.Now()
	movie.UpdatedAt = movie.CreatedAt

	if _, err := r.collection.InsertOne(ctx, movie); err != nil {
		r.logger.Error("failed to create movie", zap.Error(err))
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return movie, nil
}

// Update writes the merged record back with a $set, so an in-flight update
// follows last-write-wins. Returns (nil, nil) when the id matches nothing.
func (r *movieRepoMongo) Update(ctx context.Context, id string, movie *model.Movie) (*model.Movie, error) {
	objectID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	update := bson.M{
		"$set": bson.M{
			"title":       movie.Title,
			"description": movie.Description,
			"genre":       movie.Genre,
			"year":        movie.Year,
			"rating":      movie.Rating,
			"duration":    movie.Duration,
			"media":       movie.Media,
			"video":       movie.Video,
			"updated_at":  time.Now(),
		},
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error("failed to update movie", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	var updated model.Movie
	if err := result.Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to decode updated movie: %w", err)
	}
	return &updated, nil
}

func (r *movieRepoMongo) Delete(ctx context.Context, id string) (bool, error) {
	objectID, ok := parseID(id)
	if !ok {
		return false, nil
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		r.logger.Error("failed to delete movie", zap.String("id", id), zap.Error(err))
		return false, fmt.Errorf("failed to delete movie: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// containsPattern builds a case-insensitive substring matcher. The query is
// quoted so regex metacharacters in user input match literally.
func containsPattern(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}

func (r *movieRepoMongo) Search(ctx context.Context, query string) ([]*model.Movie, error) {
	if strings.TrimSpace(query) == "" {
		return r.List(ctx)
	}

	pattern := containsPattern(query)
	return r.find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"genre": pattern},
		},
	})
}

func (r *movieRepoMongo) ByGenre(ctx context.Context, genre string) ([]*model.Movie, error) {
	return r.find(ctx, bson.M{"genre": containsPattern(genre)})
}

func (r *movieRepoMongo) ByYear(ctx context.Context, year int) ([]*model.Movie, error) {
	return r.find(ctx, bson.M{"year": year})
}
