package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"movie_directors/internal/domain"
)

type MovieSource interface {
	ID() string
	Name() string
	FetchMovies(ctx context.Context) ([]domain.Movie, error)
}

type Publisher interface {
	Publish(ctx context.Context, query *domain.DirectorQuery) error
	Close() error
}
