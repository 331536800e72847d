package domain

import (
	"strings"
	"time"
)

type Movie struct {
	Title    string
	Year     string
	Rated    string
	Released string
	Runtime  string
	Genre    string
	Director string
	Writer   string
	Actors   string
}

// HasDirector reports whether the director field is non-blank.
func (m Movie) HasDirector() bool {
	return strings.TrimSpace(m.Director) != ""
}

// DirectorResponse is the result of a director query.
type DirectorResponse struct {
	Directors []string `json:"directors"`
}

// DirectorQuery describes a completed director query.
type DirectorQuery struct {
	Threshold     int
	Directors     []string
	MoviesScanned int
	CompletedAt   time.Time
}
