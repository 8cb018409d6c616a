package metadata

import (
	"math"
	"strings"
)

// Symbol is one position of a five-star rating.
type Symbol int

const (
	Empty Symbol = iota
	Half
	Filled
)

func (s Symbol) String() string {
	switch s {
	case Filled:
		return "★"
	case Half:
		return "½"
	default:
		return "☆"
	}
}

// StarRating is always filled symbols, then at most one half, then empty.
type StarRating [5]Symbol

// maxScore is the top of the provider rating scale.
const maxScore = 10.0

// ToStars converts a 0-10 score to five symbols. A missing, zero, negative
// or NaN score yields five empty stars.
func ToStars(score *float64) StarRating {
	var stars StarRating
	if score == nil || math.IsNaN(*score) || *score <= 0 {
		return stars
	}

	converted := math.Min(*score, maxScore) / 2
	whole := math.Floor(converted)
	frac := math.Round((converted-whole)*1e9) / 1e9

	filled := int(whole)
	half := 0
	switch {
	case frac > 0.8:
		filled++
	case frac >= 0.2:
		half = 1
	}

	for i := 0; i < filled; i++ {
		stars[i] = Filled
	}
	if half == 1 {
		stars[filled] = Half
	}
	return stars
}

func (r StarRating) String() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteString(s.String())
	}
	return b.String()
}

// MarshalText renders the rating as its symbol string.
func (r StarRating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r StarRating) count(want Symbol) int {
	n := 0
	for _, s := range r {
		if s == want {
			n++
		}
	}
	return n
}

func (r StarRating) Filled() int { return r.count(Filled) }
func (r StarRating) Half() int   { return r.count(Half) }
func (r StarRating) Empty() int  { return r.count(Empty) }
