package controller

import (
	"encoding/json"
	"fmt"
)

// Kind tags the variant held by a Selection.
type Kind int

const (
	KindNone Kind = iota
	KindSearch
	KindMood
	KindGenre
	KindTrending
	KindPopular
	KindTopRated
)

var kindNames = map[Kind]string{
	KindNone:     "none",
	KindSearch:   "search",
	KindMood:     "mood",
	KindGenre:    "genre",
	KindTrending: "trending",
	KindPopular:  "popular",
	KindTopRated: "top-rated",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Selection is the active filter. Value carries the query, mood id or genre
// name and is empty for the other kinds. Selections are replaced, never
// edited.
type Selection struct {
	Kind  Kind
	Value string
}

func None() Selection               { return Selection{Kind: KindNone} }
func Search(query string) Selection { return Selection{Kind: KindSearch, Value: query} }
func Mood(id string) Selection      { return Selection{Kind: KindMood, Value: id} }
func Genre(name string) Selection   { return Selection{Kind: KindGenre, Value: name} }
func Trending() Selection           { return Selection{Kind: KindTrending} }
func Popular() Selection            { return Selection{Kind: KindPopular} }
func TopRated() Selection           { return Selection{Kind: KindTopRated} }

func (s Selection) IsNone() bool { return s.Kind == KindNone }

// Title is the heading shown above the results of s.
func (s Selection) Title() string {
	switch s.Kind {
	case KindSearch:
		return `Search Results for "` + s.Value + `"`
	case KindMood:
		return "Movies for when you're feeling " + s.Value
	case KindGenre:
		return s.Value + " Movies"
	case KindTrending:
		return "Trending Movies"
	case KindPopular:
		return "Popular Movies"
	case KindTopRated:
		return "Top Rated Movies"
	default:
		return ""
	}
}

// FailureMessage is shown when the request for s produced no usable result.
func (s Selection) FailureMessage() string {
	switch s.Kind {
	case KindSearch:
		return "No results found"
	case KindMood, KindGenre:
		return "Failed to load recommendations"
	case KindTrending:
		return "Failed to load trending movies"
	case KindPopular:
		return "Failed to load popular movies"
	case KindTopRated:
		return "Failed to load top rated movies"
	default:
		return ""
	}
}

func (s Selection) String() string {
	if s.Value == "" {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Value)
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Value string `json:"value,omitempty"`
	}{s.Kind.String(), s.Value})
}
