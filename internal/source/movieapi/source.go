package movieapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie_directors/internal/domain"
)

const (
	SourceID   = "movieapi"
	SourceName = "Movie API"
)

// ErrPageNotAdvancing is returned when the API answers with an earlier page
// than the one requested.
var ErrPageNotAdvancing = errors.New("page did not advance")

// Config holds movie API source configuration.
type Config struct {
	BaseURL         string
	ConnectTimeout  time.Duration
	ResponseTimeout time.Duration
}

// Source drains the paginated movie API.
type Source struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a new movie API source.
func New(cfg Config, logger *slog.Logger) *Source {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ResponseTimeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}

	return &Source{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.ConnectTimeout + cfg.ResponseTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchMovies requests pages sequentially, starting at page 1, until the API
// reports the last page. Any failed page aborts the whole drain and nothing
// fetched so far is returned.
func (s *Source) FetchMovies(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie

	page := 1
	for {
		resp, err := s.fetchPage(ctx, page)
		if err != nil {
			return nil, &domain.UpstreamError{Page: page, Err: err}
		}
		if resp.Page < page {
			return nil, &domain.UpstreamError{
				Page: page,
				Err:  fmt.Errorf("%w: got page %d", ErrPageNotAdvancing, resp.Page),
			}
		}

		for _, dto := range resp.Data {
			movies = append(movies, dto.ToDomain())
		}

		s.logger.Debug("fetched page",
			"page", resp.Page,
			"total_pages", resp.TotalPages,
			"movies", len(resp.Data),
			"total", len(movies),
		)

		if resp.Page >= resp.TotalPages {
			break
		}
		page = resp.Page + 1
	}

	return movies, nil
}

func (s *Source) fetchPage(ctx context.Context, page int) (*APIResponse, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MovieDirectors/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}
