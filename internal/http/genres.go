package httpserver

import (
	"net/http"

	"github.com/filmgrid/movie-catalog/internal/domain"
	"github.com/filmgrid/movie-catalog/internal/service"
)

type genreCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type genreUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type genreResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type genreListResponse struct {
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalItems int64           `json:"total_items"`
	Items      []genreResponse `json:"items"`
}

func (s *Server) handleListGenres(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePageParams(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	genres, total, err := s.svc.ListGenres(r.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		s.respondServiceError(w, err, "Failed to list genres")
		return
	}

	items := make([]genreResponse, 0, len(genres))
	for _, genre := range genres {
		items = append(items, toGenreResponse(genre))
	}
	s.respondData(w, http.StatusOK, genreListResponse{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		Items:      items,
	})
}

func (s *Server) handleGetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	genre, err := s.svc.GetGenre(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, err, "Failed to fetch genre")
		return
	}
	s.respondData(w, http.StatusOK, toGenreResponse(genre))
}

func (s *Server) handleCreateGenre(w http.ResponseWriter, r *http.Request) {
	var req genreCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	genre, err := s.svc.CreateGenre(r.Context(), service.GenreInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		s.respondServiceError(w, err, "Failed to create genre")
		return
	}
	s.respondData(w, http.StatusCreated, toGenreResponse(genre))
}

func (s *Server) handleUpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req genreUpdateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	genre, err := s.svc.UpdateGenre(r.Context(), id, service.GenreUpdateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		s.respondServiceError(w, err, "Failed to update genre")
		return
	}
	s.respondData(w, http.StatusOK, toGenreResponse(genre))
}

func (s *Server) handleDeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.svc.DeleteGenre(r.Context(), id); err != nil {
		s.respondServiceError(w, err, "Failed to delete genre")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toGenreResponse(genre domain.Genre) genreResponse {
	return genreResponse{
		ID:          genre.ID,
		Name:        genre.Name,
		Description: genre.Description,
	}
}
