package controller

import (
	"fmt"

	"github.com/amaumene/moviemood/internal/metadata"
)

// Phase is the state of the results grid.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// EmptyMessage is shown for a successful request that returned no movies.
const EmptyMessage = "No movies found for this selection."

// DetailFailedMessage is shown when a movie detail cannot be loaded.
const DetailFailedMessage = "Failed to load movie details"

// Card is one display-ready movie summary.
type Card struct {
	ID        int                 `json:"id"`
	Title     string              `json:"title"`
	Overview  string              `json:"overview"`
	PosterURL string              `json:"poster_url"`
	Rating    string              `json:"rating"`
	Stars     metadata.StarRating `json:"stars"`
}

// GridState is what the results grid shows for one selection. Message holds
// the failure reason when Failed and EmptyMessage when Loaded with no cards.
type GridState struct {
	Phase     Phase     `json:"phase"`
	Selection Selection `json:"selection"`
	Heading   string    `json:"heading,omitempty"`
	Cards     []Card    `json:"cards,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// DetailPhase is the state of the movie detail modal.
type DetailPhase int

const (
	DetailClosed DetailPhase = iota
	DetailLoading
	DetailLoaded
	DetailFailed
)

func (p DetailPhase) String() string {
	switch p {
	case DetailClosed:
		return "closed"
	case DetailLoading:
		return "loading"
	case DetailLoaded:
		return "loaded"
	case DetailFailed:
		return "failed"
	default:
		return fmt.Sprintf("detail(%d)", int(p))
	}
}

func (p DetailPhase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// DetailState is what the modal shows. Detail is nil unless Loaded.
type DetailState struct {
	Phase   DetailPhase      `json:"phase"`
	MovieID int              `json:"movie_id,omitempty"`
	Detail  *metadata.Detail `json:"detail,omitempty"`
	Similar []Card           `json:"similar,omitempty"`
	Message string           `json:"message,omitempty"`
}
