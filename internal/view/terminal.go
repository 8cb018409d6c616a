// Package view renders controller state to a terminal, records it for the
// HTTP surface, or fans it out to several views.
package view

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/amaumene/moviemood/internal/controller"
)

const rule = "----------------------------------------"

// Terminal writes a plain text rendering of every state change to w.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) SetActive(sel controller.Selection) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if sel.IsNone() {
		fmt.Fprintln(t.w, "[ no filter ]")
		return
	}
	fmt.Fprintf(t.w, "[ active: %s ]\n", sel)
}

func (t *Terminal) ShowGrid(state controller.GridState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch state.Phase {
	case controller.PhaseIdle:
		return
	case controller.PhaseLoading:
		fmt.Fprintf(t.w, "%s\nLoading...\n", state.Heading)
		return
	}

	fmt.Fprintf(t.w, "%s\n%s\n", state.Heading, rule)
	if state.Message != "" {
		fmt.Fprintln(t.w, state.Message)
		return
	}
	for _, card := range state.Cards {
		fmt.Fprintf(t.w, "#%-7d %s  %s %s\n", card.ID, card.Title, card.Stars, card.Rating)
		fmt.Fprintf(t.w, "         %s\n", truncate(card.Overview, 100))
	}
}

func (t *Terminal) ShowDetail(state controller.DetailState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch state.Phase {
	case controller.DetailClosed:
		return
	case controller.DetailLoading:
		fmt.Fprintf(t.w, "Loading movie %d...\n", state.MovieID)
		return
	case controller.DetailFailed:
		fmt.Fprintln(t.w, state.Message)
		return
	}

	d := state.Detail
	if d == nil {
		return
	}
	fmt.Fprintf(t.w, "%s\n%s (%s)\n%s\n", rule, d.Title, d.Year, rule)
	fmt.Fprintf(t.w, "Rated:           %s\n", d.Rated)
	fmt.Fprintf(t.w, "Runtime:         %s\n", d.Runtime)
	fmt.Fprintf(t.w, "Director:        %s\n", d.Director)
	fmt.Fprintf(t.w, "Actors:          %s\n", d.Actors)
	fmt.Fprintf(t.w, "TMDB Rating:     %s %s\n", d.TMDBRating, d.Stars)
	fmt.Fprintf(t.w, "IMDb Rating:     %s\n", d.Ratings.IMDb)
	fmt.Fprintf(t.w, "Rotten Tomatoes: %s\n", d.Ratings.RottenTomatoes)
	fmt.Fprintf(t.w, "Poster:          %s\n\n%s\n", d.PosterURL, d.Plot)

	if len(d.AllRatings) > 0 {
		fmt.Fprintln(t.w, "\nRatings")
		for _, r := range d.AllRatings {
			fmt.Fprintf(t.w, "  %s: %s\n", r.Source, r.Value)
		}
	}
	if len(state.Similar) > 0 {
		fmt.Fprintln(t.w, "\nSimilar movies")
		for _, card := range state.Similar {
			fmt.Fprintf(t.w, "  #%-7d %s %s\n", card.ID, card.Title, card.Stars)
		}
	}
	fmt.Fprintln(t.w, rule)
}

func truncate(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n-3]) + "..."
}
