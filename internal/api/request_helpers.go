package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
)

// getPathID extracts a non-empty task ID from the URL path parameters.
// Task IDs are opaque strings: the seed uses short numeric IDs, new tasks get UUIDs.
func getPathID(r *http.Request, paramName string) (string, error) {
	id := chi.URLParam(r, paramName)
	if id == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}
	return id, nil
}

// getPageRequest reads the page and pageSize query parameters.
// Missing parameters are left at zero so the store defaults apply.
func getPageRequest(r *http.Request) (pagination.Request, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return pagination.Request{}, err
	}
	pageSize, err := queryInt(r, "pageSize")
	if err != nil {
		return pagination.Request{}, err
	}
	return pagination.Request{Page: page, PageSize: pageSize}, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer", domain.ErrValidation)
	}
	return v, nil
}
