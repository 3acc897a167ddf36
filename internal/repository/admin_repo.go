package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"streamflix/internal/model"
	"streamflix/internal/security"
)

const adminCollection = "admins"

// ErrDuplicateEmail reports a create against an email the store already
// holds; uniqueness is enforced by the store's index.
var ErrDuplicateEmail = errors.New("email already exists")

// AdminRepo is the credential store. It owns password hashing: Create takes
// the plaintext and persists only the bcrypt hash. Reads omit the hash
// unless the caller explicitly asks for it.
type AdminRepo interface {
	FindByEmail(ctx context.Context, email string, includePassword bool) (*model.Admin, error)
	Create(ctx context.Context, email, password string) (*model.Admin, error)
}

type adminRepoMongo struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

var _ AdminRepo = (*adminRepoMongo)(nil)

func NewAdminRepoMongo(db *mongo.Database, logger *zap.Logger) *adminRepoMongo {
	collection := db.Collection(adminCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warn("failed to create unique index on admin email", zap.Error(err))
	}

	return &adminRepoMongo{
		collection: collection,
		logger:     logger,
	}
}

// FindByEmail returns (nil, nil) when no admin matches.
func (r *adminRepoMongo) FindByEmail(ctx context.Context, email string, includePassword bool) (*model.Admin, error) {
	opts := options.FindOne()
	if !includePassword {
		opts.SetProjection(bson.M{"password": 0})
	}

	var admin model.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}, opts).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error("failed to find admin", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepoMongo) Create(ctx context.Context, email, password string) (*model.Admin, error) {
	hash, err := security.EncryptPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	admin := &model.Admin{
		Email:     email,
		Password:  hash,
		Role:      model.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		r.logger.Error("failed to create admin", zap.Error(err))
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	admin.ID = result.InsertedID.(primitive.ObjectID)

	return admin, nil
}
