package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"streamflix/internal/app"
	"streamflix/internal/model"
	"streamflix/internal/service"
)

type MovieHandler struct {
	app *app.App
}

func NewMovieHandler(app *app.App) *MovieHandler {
	return &MovieHandler{
		app: app,
	}
}

// HandleListMovies serves the public catalog. The search, genre and year
// query params are checked in that priority order; without any of them the
// whole catalog is returned.
func (h *MovieHandler) HandleListMovies(ctx *gin.Context) {
	var (
		movies []*model.Movie
		err    error
	)

	reqCtx := ctx.Request.Context()
	switch {
	case ctx.Query("search") != "":
		movies, err = h.app.MovieService.SearchMovies(reqCtx, ctx.Query("search"))
	case ctx.Query("genre") != "":
		movies, err = h.app.MovieService.GetMoviesByGenre(reqCtx, ctx.Query("genre"))
	case ctx.Query("year") != "":
		year, convErr := strconv.Atoi(ctx.Query("year"))
		if convErr != nil {
			// a non-numeric year matches nothing
			respondData(ctx, http.StatusOK, []model.MovieView{})
			return
		}
		movies, err = h.app.MovieService.GetMoviesByYear(reqCtx, year)
	default:
		movies, err = h.app.MovieService.GetAllMovies(reqCtx)
	}

	if err != nil {
		h.app.Logger.Error("failed to list movies", zap.Error(err))
		respondError(ctx, http.StatusInternalServerError, "Failed to fetch movies")
		return
	}

	respondData(ctx, http.StatusOK, model.MovieViews(movies))
}

func (h *MovieHandler) HandleGetMovie(ctx *gin.Context) {
	movie, err := h.app.MovieService.GetMovieByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(ctx, http.StatusNotFound, "Movie not found")
			return
		}
		h.app.Logger.Error("failed to fetch movie", zap.Error(err))
		respondError(ctx, http.StatusInternalServerError, "Failed to fetch movie")
		return
	}

	respondData(ctx, http.StatusOK, movie.View())
}

func (h *MovieHandler) HandleCreateMovie(ctx *gin.Context) {
	var in model.CreateMovieInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !in.Complete() {
		respondError(ctx, http.StatusBadRequest, "All fields are required")
		return
	}

	movie, err := h.app.ContentWorkflow.CreateMovie(ctx.Request.Context(), &in)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			respondError(ctx, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.app.Logger.Error("failed to create movie", zap.Error(err))
		respondError(ctx, http.StatusInternalServerError, "Failed to create movie")
		return
	}

	respondData(ctx, http.StatusCreated, movie.View())
}

func (h *MovieHandler) HandleUpdateMovie(ctx *gin.Context) {
	var in model.UpdateMovieInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	movie, err := h.app.ContentWorkflow.UpdateMovie(ctx.Request.Context(), ctx.Param("id"), &in)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(ctx, http.StatusNotFound, "Movie not found")
			return
		}
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			respondError(ctx, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.app.Logger.Error("failed to update movie", zap.Error(err))
		respondError(ctx, http.StatusInternalServerError, "Failed to update movie")
		return
	}

	respondData(ctx, http.StatusOK, movie.View())
}

func (h *MovieHandler) HandleDeleteMovie(ctx *gin.Context) {
	err := h.app.ContentWorkflow.DeleteMovie(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(ctx, http.StatusNotFound, "Movie not found")
			return
		}
		h.app.Logger.Error("failed to delete movie", zap.Error(err))
		respondError(ctx, http.StatusInternalServerError, "Failed to delete movie")
		return
	}

	respondMessage(ctx, http.StatusOK, "Movie deleted successfully")
}
