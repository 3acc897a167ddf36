package model

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VideoProvider string

const (
	ProviderLocal      VideoProvider = "local"
	ProviderCloudinary VideoProvider = "cloudinary"
	ProviderS3         VideoProvider = "s3"
)

func (p VideoProvider) Valid() bool {
	switch p {
	case ProviderLocal, ProviderCloudinary, ProviderS3:
		return true
	}
	return false
}

type Media struct {
	Thumbnail string `bson:"thumbnail" json:"thumbnail"`
	Backdrop  string `bson:"backdrop" json:"backdrop"`
}

type Video struct {
	URL      string        `bson:"url" json:"url"`
	Provider VideoProvider `bson:"provider" json:"provider"`
}

// Movie is the persisted content record. Duration is in seconds.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Genre       string             `bson:"genre" json:"genre"`
	Year        int                `bson:"year" json:"year"`
	Rating      string             `bson:"rating" json:"rating"`
	Duration    int                `bson:"duration" json:"duration"`
	Media       Media              `bson:"media" json:"media"`
	Video       Video              `bson:"video" json:"video"`
	CreatedAt   time.Time          `bson:"created_at" json:"-"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"-"`
}

// MovieView is the wire shape returned to clients. The store identifier is
// rendered as a hex string and the timestamps are stripped.
type MovieView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Year        int    `json:"year"`
	Duration    int    `json:"duration"`
	Rating      string `json:"rating"`
	Media       Media  `json:"media"`
	Video       Video  `json:"video"`
}

func (m *Movie) View() MovieView {
	return MovieView{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		Genre:       m.Genre,
		Year:        m.Year,
		Duration:    m.Duration,
		Rating:      m.Rating,
		Media:       m.Media,
		Video:       m.Video,
	}
}

func MovieViews(movies []*Movie) []MovieView {
	views := make([]MovieView, 0, len(movies))
	for _, m := range movies {
		views = append(views, m.View())
	}
	return views
}

// ValidationError reports a record that violates the Movie or Admin
// invariants. Handlers map it to a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MinYear              = 1900
	MaxYear              = 2100
)

// Validate checks every Movie invariant. It is called on fully assembled
// records, both freshly created ones and merged results of partial updates.
func (m *Movie) Validate() error {
	if m.Title == "" {
		return invalid("title", "Title is required")
	}
	if len(m.Title) > MaxTitleLength {
		return invalid("title", "Title cannot exceed 200 characters")
	}
	if m.Description == "" {
		return invalid("description", "Description is required")
	}
	if len(m.Description) > MaxDescriptionLength {
		return invalid("description", "Description cannot exceed 1000 characters")
	}
	if m.Genre == "" {
		return invalid("genre", "Genre is required")
	}
	if m.Year < MinYear {
		return invalid("year", "Year must be after 1900")
	}
	if m.Year > MaxYear {
		return invalid("year", "Year must be before 2100")
	}
	if m.Rating == "" {
		return invalid("rating", "Rating is required")
	}
	if m.Duration < 1 {
		return invalid("duration", "Duration must be at least 1 second")
	}
	if m.Media.Thumbnail == "" {
		return invalid("media.thumbnail", "Thumbnail URL is required")
	}
	if m.Media.Backdrop == "" {
		return invalid("media.backdrop", "Backdrop URL is required")
	}
	if m.Video.URL == "" {
		return invalid("video.url", "Video URL is required")
	}
	if !m.Video.Provider.Valid() {
		return invalid("video.provider", "Video provider must be one of local, cloudinary, s3")
	}
	return nil
}

type MediaInput struct {
	Thumbnail string `json:"thumbnail"`
	Backdrop  string `json:"backdrop"`
}

type VideoInput struct {
	URL      string        `json:"url"`
	Provider VideoProvider `json:"provider"`
}

// CreateMovieInput is the payload accepted by the create operation.
type CreateMovieInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Genre       string     `json:"genre"`
	Year        int        `json:"year"`
	Duration    int        `json:"duration"`
	Rating      string     `json:"rating"`
	Media       MediaInput `json:"media"`
	Video       VideoInput `json:"video"`
}

// Complete reports whether every required field was supplied.
func (in *CreateMovieInput) Complete() bool {
	return in.Title != "" && in.Description != "" && in.Genre != "" &&
		in.Year != 0 && in.Duration != 0 && in.Rating != "" &&
		in.Media.Thumbnail != "" && in.Media.Backdrop != "" && in.Video.URL != ""
}

// Movie assembles an unvalidated record from the input, trimming string
// fields and defaulting the video provider to local.
func (in *CreateMovieInput) Movie() *Movie {
	provider := in.Video.Provider
	if provider == "" {
		provider = ProviderLocal
	}
	return &Movie{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Genre:       strings.TrimSpace(in.Genre),
		Year:        in.Year,
		Duration:    in.Duration,
		Rating:      strings.TrimSpace(in.Rating),
		Media: Media{
			Thumbnail: strings.TrimSpace(in.Media.Thumbnail),
			Backdrop:  strings.TrimSpace(in.Media.Backdrop),
		},
		Video: Video{
			URL:      strings.TrimSpace(in.Video.URL),
			Provider: provider,
		},
	}
}

type MediaUpdate struct {
	Thumbnail *string `json:"thumbnail"`
	Backdrop  *string `json:"backdrop"`
}

type VideoUpdate struct {
	URL      *string        `json:"url"`
	Provider *VideoProvider `json:"provider"`
}

// UpdateMovieInput is a partial update payload. Nil fields are left
// untouched by Apply.
type UpdateMovieInput struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Genre       *string      `json:"genre"`
	Year        *int         `json:"year"`
	Duration    *int         `json:"duration"`
	Rating      *string      `json:"rating"`
	Media       *MediaUpdate `json:"media"`
	Video       *VideoUpdate `json:"video"`
}

// Apply merges the supplied fields onto m.
func (in *UpdateMovieInput) Apply(m *Movie) {
	if in.Title != nil {
		m.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		m.Description = strings.TrimSpace(*in.Description)
	}
	if in.Genre != nil {
		m.Genre = strings.TrimSpace(*in.Genre)
	}
	if in.Year != nil {
		m.Year = *in.Year
	}
	if in.Duration != nil {
		m.Duration = *in.Duration
	}
	if in.Rating != nil {
		m.Rating = strings.TrimSpace(*in.Rating)
	}
	if in.Media != nil {
		if in.Media.Thumbnail != nil {
			m.Media.Thumbnail = strings.TrimSpace(*in.Media.Thumbnail)
		}
		if in.Media.Backdrop != nil {
			m.Media.Backdrop = strings.TrimSpace(*in.Media.Backdrop)
		}
	}
	if in.Video != nil {
		if in.Video.URL != nil {
			m.Video.URL = strings.TrimSpace(*in.Video.URL)
		}
		if in.Video.Provider != nil {
			m.Video.Provider = *in.Video.Provider
		}
	}
}

type AdminRole string

const RoleAdmin AdminRole = "admin"

// Admin is the persisted credential record. Password holds the bcrypt hash
// and is never serialized; default reads omit it entirely.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      AdminRole          `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"-"`
	UpdatedAt time.Time          `bson:"updated_at" json:"-"`
}

type AdminView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *Admin) View() AdminView {
	return AdminView{
		ID:    a.ID.Hex(),
		Email: a.Email,
		Role:  string(a.Role),
	}
}

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

const MinPasswordLength = 6

// ValidateCredentials checks a registration payload. Login does not use it;
// a malformed login still gets the generic invalid-credentials answer.
func ValidateCredentials(email, password string) error {
	if !ValidEmail(email) {
		return invalid("email", "Please provide a valid email address")
	}
	if len(password) < MinPasswordLength {
		return invalid("password", "Password must be at least 6 characters")
	}
	return nil
}
