package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/filmgrid/movie-catalog/internal/service"
)

const maxRequestBody = 1 << 20 // 1 MiB

type successEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type failureEnvelope struct {
	Status string    `json:"status"`
	Error  errorBody `json:"error"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Printf("failed to encode response: %v", err)
		}
	}
}

func (s *Server) respondData(w http.ResponseWriter, status int, data any) {
	s.respondJSON(w, status, successEnvelope{Status: "success", Data: data})
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, failureEnvelope{
		Status: "failure",
		Error:  errorBody{Code: status, Message: message},
	})
}

// respondServiceError maps the service error taxonomy onto status codes:
// NotFound 404, Validation 422, Conflict 409, anything else 500 with a
// generic message.
func (s *Server) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var notFound *service.NotFoundError
	var validation *service.ValidationError
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &notFound):
		s.respondError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &validation):
		s.respondError(w, http.StatusUnprocessableEntity, validation.Error())
	case errors.As(err, &conflict):
		s.respondError(w, http.StatusConflict, conflict.Error())
	default:
		s.logger.Printf("%s: %v", fallback, err)
		s.respondError(w, http.StatusInternalServerError, fallback)
	}
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

func (s *Server) respondDecodeError(w http.ResponseWriter, err error) {
	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxError):
		s.respondError(w, http.StatusUnprocessableEntity, "Malformed JSON payload")
	case errors.As(err, &typeError):
		s.respondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid value for field %s", typeError.Field))
	case errors.Is(err, io.EOF):
		s.respondError(w, http.StatusUnprocessableEntity, "Request body cannot be empty")
	default:
		s.respondError(w, http.StatusBadRequest, "Unable to parse request body")
	}
}

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return id, nil
}
