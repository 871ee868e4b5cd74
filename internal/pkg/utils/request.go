package utils

import (
	"net/http"
	"spectrumconnect-service/internal/pkg/exceptions"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

const DateLayout = time.DateOnly

func ParseJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func ParseIDParam(r *http.Request, paramName string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, paramName))
	if err != nil || id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	return id, nil
}

// ParseDate reads a calendar date (YYYY-MM-DD) in loc. An empty value yields today.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}
	date, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return date, nil
}

// SameDay compares calendar dates in each time's own location.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
