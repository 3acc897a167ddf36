package workflow

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"streamflix/internal/model"
	"streamflix/internal/mq"
	"streamflix/internal/service/domain"
)

// ContentWorkflow runs the mutating catalog operations and announces each
// successful write on the content events queue. A nil MQ connection means
// mutations happen silently.
type ContentWorkflow struct {
	MovieService domain.MovieService
	MQConn       *amqp.Connection
	Logger       *zap.Logger
}

func NewContentWorkflow(movieService domain.MovieService, mqConn *amqp.Connection, logger *zap.Logger) *ContentWorkflow {
	return &ContentWorkflow{
		MovieService: movieService,
		MQConn:       mqConn,
		Logger:       logger,
	}
}

func (w *ContentWorkflow) CreateMovie(ctx context.Context, in *model.CreateMovieInput) (*model.Movie, error) {
	movie, err := w.MovieService.CreateMovie(ctx, in)
	if err != nil {
		return nil, err
	}
	w.publish(mq.ActionCreated, movie.ID.Hex(), movie.Title)
	return movie, nil
}

func (w *ContentWorkflow) UpdateMovie(ctx context.Context, id string, in *model.UpdateMovieInput) (*model.Movie, error) {
	movie, err := w.MovieService.UpdateMovie(ctx, id, in)
	if err != nil {
		return nil, err
	}
	w.publish(mq.ActionUpdated, movie.ID.Hex(), movie.Title)
	return movie, nil
}

func (w *ContentWorkflow) DeleteMovie(ctx context.Context, id string) error {
	if err := w.MovieService.DeleteMovie(ctx, id); err != nil {
		return err
	}
	w.publish(mq.ActionDeleted, id, "")
	return nil
}

// publish is best effort: a broker problem is logged, never surfaced to the
// client whose write already succeeded.
func (w *ContentWorkflow) publish(action mq.ContentAction, movieID, title string) {
	if w.MQConn == nil {
		return
	}

	ch, err := mq.NewChannel(w.MQConn)
	if err != nil {
		w.Logger.Warn("failed to open mq channel", zap.Error(err))
		return
	}
	defer ch.Close()

	if err := mq.PublishContentEvent(ch, action, movieID, title); err != nil {
		w.Logger.Warn("failed to publish content event",
			zap.String("action", string(action)), zap.String("movie_id", movieID), zap.Error(err))
	}
}
