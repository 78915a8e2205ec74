package repository

import (
	"database/sql"
	"time"
)

// parseNullableStr converts a sql.NullString back into a *string.
func parseNullableStr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// parseTime parses an RFC3339 timestamp stored as text. Zero time on failure:
// stored timestamps are always written by this package, so a parse failure
// means a hand-edited database.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
