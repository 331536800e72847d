package movieapi

import "movie_directors/internal/domain"

// APIResponse represents one page of the movie API.
type APIResponse struct {
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
	Data       []MovieDTO `json:"data"`
}

type MovieDTO struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Rated    string `json:"Rated"`
	Released string `json:"Released"`
	Runtime  string `json:"Runtime"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Writer   string `json:"Writer"`
	Actors   string `json:"Actors"`
}

func (d MovieDTO) ToDomain() domain.Movie {
	return domain.Movie{
		Title:    d.Title,
		Year:     d.Year,
		Rated:    d.Rated,
		Released: d.Released,
		Runtime:  d.Runtime,
		Genre:    d.Genre,
		Director: d.Director,
		Writer:   d.Writer,
		Actors:   d.Actors,
	}
}
