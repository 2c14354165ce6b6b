package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/kevincode06/gym-tracker-backend/models"
)

// WorkoutInput is the raw create/update request body. Clients are
// inconsistent about types: reps may arrive as the number 10 or the
// string "10", date as a string or epoch milliseconds, and any field
// may be absent or null, so the non-text fields stay untyped until
// Normalize resolves them.
type WorkoutInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Exercise string `json:"exercise"`
	Reps     any    `json:"reps"`
	Sets     any    `json:"sets"`
	Weight   any    `json:"weight"`
	Date     any    `json:"date"`
}

// MissingFields flags which required fields were absent from a request.
type MissingFields struct {
	Name     bool `json:"name"`
	Category bool `json:"category"`
	Exercise bool `json:"exercise"`
}

// Normalize turns raw input into a storable payload, or reports which of
// the required fields are missing. Name must be non-empty after trimming
// and is stored trimmed; category and exercise are only checked for
// presence. Numeric fields coerce to 0 when they fail to parse, and an
// absent or unparseable date falls back to now. Negative numbers pass
// through here; WorkoutPayload.Validate rejects them before any write.
func Normalize(in WorkoutInput, now time.Time) (*models.WorkoutPayload, *MissingFields) {
	name := strings.TrimSpace(in.Name)

	missing := MissingFields{
		Name:     name == "",
		Category: in.Category == "",
		Exercise: in.Exercise == "",
	}
	if missing.Name || missing.Category || missing.Exercise {
		return nil, &missing
	}

	return &models.WorkoutPayload{
		Name:     name,
		Category: in.Category,
		Exercise: in.Exercise,
		Reps:     int(coerceNumber(in.Reps)),
		Sets:     int(coerceNumber(in.Sets)),
		Weight:   coerceNumber(in.Weight),
		Date:     coerceDate(in.Date, now),
	}, nil
}

// coerceNumber resolves a raw JSON value to a number, mapping anything
// unparseable to 0.
func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return parsed
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// coerceDate resolves a raw date value, substituting now when the value
// is absent or cannot be parsed. Numbers are treated as epoch
// milliseconds, matching what date pickers on the frontend send.
func coerceDate(v any, now time.Time) time.Time {
	switch d := v.(type) {
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return now
	case float64:
		if d <= 0 {
			return now
		}
		return time.UnixMilli(int64(d)).UTC()
	default:
		return now
	}
}
