package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"movie_directors/internal/domain"
)

type DirectorService struct {
	source    MovieSource
	publisher Publisher
	logger    *slog.Logger
}

func NewDirectorService(source MovieSource, publisher Publisher, logger *slog.Logger) *DirectorService {
	return &DirectorService{
		source:    source,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
	}
}

// GetDirectorsAbove returns, sorted, the directors credited on more than
// threshold movies. A negative threshold yields an empty list without
// touching the source.
func (s *DirectorService) GetDirectorsAbove(ctx context.Context, thresholdText string) (*domain.DirectorResponse, error) {
	threshold, err := ParseThreshold(thresholdText)
	if err != nil {
		return nil, err
	}

	if threshold < 0 {
		return &domain.DirectorResponse{Directors: []string{}}, nil
	}

	startTime := time.Now()

	movies, err := s.source.FetchMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch movies: %w", err)
	}

	directors := DirectorsAbove(CountByDirector(movies), threshold)

	s.logger.Info("director query completed",
		"threshold", threshold,
		"movies", len(movies),
		"directors", len(directors),
		"duration", time.Since(startTime),
	)

	if s.publisher != nil {
		query := &domain.DirectorQuery{
			Threshold:     threshold,
			Directors:     directors,
			MoviesScanned: len(movies),
			CompletedAt:   time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, query); err != nil {
			s.logger.Warn("failed to publish director query", "error", err)
		}
	}

	return &domain.DirectorResponse{Directors: directors}, nil
}

// ParseThreshold parses a signed 32-bit decimal threshold.
func ParseThreshold(text string) (int, error) {
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, &domain.ValidationError{Message: domain.MsgInvalidThreshold}
	}
	return int(v), nil
}

// CountByDirector counts movies per exact director name, skipping movies
// without a director.
func CountByDirector(movies []domain.Movie) map[string]int {
	counts := make(map[string]int)
	for _, m := range movies {
		if !m.HasDirector() {
			continue
		}
		counts[m.Director]++
	}
	return counts
}

// DirectorsAbove returns the names whose count is strictly greater than
// threshold, in ascending order. The result is never nil.
func DirectorsAbove(counts map[string]int, threshold int) []string {
	directors := make([]string, 0, len(counts))
	for name, count := range counts {
		if count > threshold {
			directors = append(directors, name)
		}
	}
	sort.Strings(directors)
	return directors
}
