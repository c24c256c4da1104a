package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies; every payload of the API is a small form.
const maxBodyBytes = 1 << 20

// decodeAndValidate decodes the JSON body into dst and validates it by its
// struct tags.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return h.validator.Validate(r.Context(), dst)
}

func currentUser(r *http.Request) (models.CurrentUser, error) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		return models.CurrentUser{}, ErrNoCurrentUser
	}
	return user, nil
}

// pathID parses the {id} URL parameter as a positive int64.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidPathParam, raw)
	}
	return id, nil
}

// pageFromQuery reads pageNumber, pageSize, orderBy and sortDir. Missing
// numbers fall back to the defaults and pageSize is capped at
// [models.MaxPageSize]. Values below one are passed on for the service to
// reject.
func pageFromQuery(query url.Values) (models.PageRequest, error) {
	page := models.PageRequest{
		PageNumber: models.DefaultPageNumber,
		PageSize:   models.DefaultPageSize,
		OrderBy:    strings.TrimSpace(query.Get("orderBy")),
		SortDir:    strings.TrimSpace(query.Get("sortDir")),
	}

	var err error
	if raw := query.Get("pageNumber"); raw != "" {
		if page.PageNumber, err = strconv.Atoi(raw); err != nil || page.PageNumber > models.MaxPageNumber {
			return models.PageRequest{}, fmt.Errorf("%w: pageNumber %q", ErrInvalidQueryParam, raw)
		}
	}
	if raw := query.Get("pageSize"); raw != "" {
		if page.PageSize, err = strconv.Atoi(raw); err != nil {
			return models.PageRequest{}, fmt.Errorf("%w: pageSize %q", ErrInvalidQueryParam, raw)
		}
	}
	page.PageSize = min(page.PageSize, models.MaxPageSize)

	return page, nil
}

// listFromQuery collects a multi-valued parameter given either repeated
// (?states=A&states=B) or comma separated (?states=A,B).
func listFromQuery(query url.Values, key string) []string {
	var values []string
	for _, raw := range query[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func statesFromQuery[S ~string](query url.Values, key string) []S {
	raw := listFromQuery(query, key)
	if len(raw) == 0 {
		return nil
	}

	states := make([]S, 0, len(raw))
	for _, v := range raw {
		states = append(states, S(strings.ToUpper(v)))
	}
	return states
}

func idsFromQuery(query url.Values, key string) ([]int64, error) {
	raw := listFromQuery(query, key)
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidQueryParam, key, v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// dateFromQuery returns nil when the parameter is absent.
func dateFromQuery(query url.Values, key string) (*models.Date, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}

	date, err := models.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQueryParam, err)
	}
	return &date, nil
}
