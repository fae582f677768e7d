package httpserver

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/filmgrid/movie-catalog/internal/domain"
	"github.com/filmgrid/movie-catalog/internal/service"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type movieCreateRequest struct {
	Title       string  `json:"title"`
	DirectorID  int64   `json:"director_id"`
	ReleaseYear int     `json:"release_year"`
	Cast        *string `json:"cast"`
	Description *string `json:"description"`
	Genres      []int64 `json:"genres"`
}

type movieUpdateRequest struct {
	Title       *string `json:"title"`
	DirectorID  *int64  `json:"director_id"`
	ReleaseYear *int    `json:"release_year"`
	Cast        *string `json:"cast"`
	Description *string `json:"description"`
	Genres      []int64 `json:"genres"`
}

type directorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type movieResponse struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	ReleaseYear   int         `json:"release_year"`
	Director      directorRef `json:"director"`
	Genres        []string    `json:"genres"`
	Cast          *string     `json:"cast,omitempty"`
	Description   *string     `json:"description,omitempty"`
	AverageRating *float64    `json:"average_rating"`
	RatingsCount  int64       `json:"ratings_count"`
}

type movieListResponse struct {
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalItems int64           `json:"total_items"`
	Items      []movieResponse `json:"items"`
}

type ratingCreateRequest struct {
	Score int `json:"score"`
}

type ratingResponse struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type statsResponse struct {
	AverageRating *float64 `json:"average_rating"`
	RatingsCount  int64    `json:"ratings_count"`
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, pageSize, err := parsePageParams(query)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filters, err := buildMovieFilters(query)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	movies, total, err := s.svc.ListMovies(r.Context(), (page-1)*pageSize, pageSize, filters)
	if err != nil {
		s.respondServiceError(w, err, "Failed to list movies")
		return
	}

	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, toMovieResponse(movie))
	}
	s.respondData(w, http.StatusOK, movieListResponse{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		Items:      items,
	})
}

// parsePageParams validates page and page_size: page defaults to 1 and must
// be positive; page_size defaults to 10 and is bounded to 1-100.
func parsePageParams(query url.Values) (page, pageSize int, err error) {
	page = 1
	if val := strings.TrimSpace(query.Get("page")); val != "" {
		page, err = strconv.Atoi(val)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("page must be a positive integer")
		}
	}
	pageSize = defaultPageSize
	if val := strings.TrimSpace(query.Get("page_size")); val != "" {
		pageSize, err = strconv.Atoi(val)
		if err != nil || pageSize < 1 || pageSize > maxPageSize {
			return 0, 0, fmt.Errorf("page_size must be between 1 and %d", maxPageSize)
		}
	}
	return page, pageSize, nil
}

func buildMovieFilters(query url.Values) (service.MovieFilters, error) {
	var filters service.MovieFilters

	if val := strings.TrimSpace(query.Get("title")); val != "" {
		filters.Title = &val
	}
	if val := strings.TrimSpace(query.Get("release_year")); val != "" {
		year, err := strconv.Atoi(val)
		if err != nil {
			return filters, fmt.Errorf("invalid release_year value")
		}
		filters.ReleaseYear = &year
	}
	if val := strings.TrimSpace(query.Get("genre")); val != "" {
		filters.GenreName = &val
	}
	return filters, nil
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	movie, err := s.svc.GetMovie(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, err, "Failed to fetch movie")
		return
	}
	s.respondData(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	movie, err := s.svc.CreateMovie(r.Context(), service.MovieInput{
		Title:       req.Title,
		DirectorID:  req.DirectorID,
		ReleaseYear: req.ReleaseYear,
		Cast:        req.Cast,
		Description: req.Description,
		GenreIDs:    req.Genres,
	})
	if err != nil {
		s.respondServiceError(w, err, "Failed to create movie")
		return
	}
	s.respondData(w, http.StatusCreated, toMovieResponse(movie))
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req movieUpdateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	movie, err := s.svc.UpdateMovie(r.Context(), id, service.MovieUpdateInput{
		Title:       req.Title,
		DirectorID:  req.DirectorID,
		ReleaseYear: req.ReleaseYear,
		Cast:        req.Cast,
		Description: req.Description,
		GenreIDs:    req.Genres,
	})
	if err != nil {
		s.respondServiceError(w, err, "Failed to update movie")
		return
	}
	s.respondData(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.svc.DeleteMovie(r.Context(), id); err != nil {
		s.respondServiceError(w, err, "Failed to delete movie")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddRating(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ratingCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	rating, err := s.svc.AddRating(r.Context(), id, req.Score)
	if err != nil {
		s.respondServiceError(w, err, "Failed to add rating")
		return
	}
	s.respondData(w, http.StatusCreated, ratingResponse{
		ID:        rating.ID,
		MovieID:   rating.MovieID,
		Score:     rating.Score,
		CreatedAt: rating.CreatedAt,
	})
}

func (s *Server) handleListRatings(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ratings, err := s.svc.ListRatings(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, err, "Failed to list ratings")
		return
	}

	items := make([]ratingResponse, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, ratingResponse{
			ID:        rating.ID,
			MovieID:   rating.MovieID,
			Score:     rating.Score,
			CreatedAt: rating.CreatedAt,
		})
	}
	s.respondData(w, http.StatusOK, items)
}

func (s *Server) handleMovieStats(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := s.svc.GetMovieStats(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, err, "Failed to fetch movie stats")
		return
	}
	s.respondData(w, http.StatusOK, statsResponse{
		AverageRating: stats.Average,
		RatingsCount:  stats.Count,
	})
}

func toMovieResponse(details domain.MovieDetails) movieResponse {
	genres := make([]string, 0, len(details.Genres))
	for _, genre := range details.Genres {
		genres = append(genres, genre.Name)
	}
	return movieResponse{
		ID:          details.Movie.ID,
		Title:       details.Movie.Title,
		ReleaseYear: details.Movie.ReleaseYear,
		Director: directorRef{
			ID:   details.Director.ID,
			Name: details.Director.Name,
		},
		Genres:        genres,
		Cast:          details.Movie.Cast,
		Description:   details.Movie.Description,
		AverageRating: details.Stats.Average,
		RatingsCount:  details.Stats.Count,
	}
}
