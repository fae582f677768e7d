package httpserver

import (
	"net/http"

	"github.com/filmgrid/movie-catalog/internal/domain"
	"github.com/filmgrid/movie-catalog/internal/service"
)

type directorCreateRequest struct {
	Name        string  `json:"name"`
	BirthYear   *int    `json:"birth_year"`
	Description *string `json:"description"`
}

type directorUpdateRequest struct {
	Name        *string `json:"name"`
	BirthYear   *int    `json:"birth_year"`
	Description *string `json:"description"`
}

type directorResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	BirthYear   *int    `json:"birth_year,omitempty"`
	Description *string `json:"description,omitempty"`
}

type directorListResponse struct {
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalItems int64              `json:"total_items"`
	Items      []directorResponse `json:"items"`
}

func (s *Server) handleListDirectors(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePageParams(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	directors, total, err := s.svc.ListDirectors(r.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		s.respondServiceError(w, err, "Failed to list directors")
		return
	}

	items := make([]directorResponse, 0, len(directors))
	for _, director := range directors {
		items = append(items, toDirectorResponse(director))
	}
	s.respondData(w, http.StatusOK, directorListResponse{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		Items:      items,
	})
}

func (s *Server) handleGetDirector(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	director, err := s.svc.GetDirector(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, err, "Failed to fetch director")
		return
	}
	s.respondData(w, http.StatusOK, toDirectorResponse(director))
}

func (s *Server) handleCreateDirector(w http.ResponseWriter, r *http.Request) {
	var req directorCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	director, err := s.svc.CreateDirector(r.Context(), service.DirectorInput{
		Name:        req.Name,
		BirthYear:   req.BirthYear,
		Description: req.Description,
	})
	if err != nil {
		s.respondServiceError(w, err, "Failed to create director")
		return
	}
	s.respondData(w, http.StatusCreated, toDirectorResponse(director))
}

func (s *Server) handleUpdateDirector(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req directorUpdateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	director, err := s.svc.UpdateDirector(r.Context(), id, service.DirectorUpdateInput{
		Name:        req.Name,
		BirthYear:   req.BirthYear,
		Description: req.Description,
	})
	if err != nil {
		s.respondServiceError(w, err, "Failed to update director")
		return
	}
	s.respondData(w, http.StatusOK, toDirectorResponse(director))
}

func (s *Server) handleDeleteDirector(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.svc.DeleteDirector(r.Context(), id); err != nil {
		s.respondServiceError(w, err, "Failed to delete director")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDirectorResponse(director domain.Director) directorResponse {
	return directorResponse{
		ID:          director.ID,
		Name:        director.Name,
		BirthYear:   director.BirthYear,
		Description: director.Description,
	}
}
