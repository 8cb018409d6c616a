package models

import "sort"

// CastMember represents a cast member in credits
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember represents a crew member in credits
type CrewMember struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Job        string `json:"job"`
}

// Credits represents cast and crew information
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Directors returns crew names whose job is Director, in credit order.
func (c Credits) Directors() []string {
	var names []string
	for _, member := range c.Crew {
		if member.Job == "Director" && member.Name != "" {
			names = append(names, member.Name)
		}
	}
	return names
}

// TopCast returns up to n cast names by billing order.
func (c Credits) TopCast(n int) []string {
	cast := make([]CastMember, 0, len(c.Cast))
	for _, member := range c.Cast {
		if member.Name != "" {
			cast = append(cast, member)
		}
	}
	sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })

	if n > 0 && len(cast) > n {
		cast = cast[:n]
	}
	names := make([]string, len(cast))
	for i, member := range cast {
		names[i] = member.Name
	}
	return names
}
