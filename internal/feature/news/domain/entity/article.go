// Package entity defines the domain model for the news feature.
package entity

import "time"

// Article is one normalized news item. Articles are immutable value objects
// created fresh on every fetch cycle; within one merged result the URL is
// unique and serves as the deduplication key.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	SectorIDs   []string  `json:"sectorIds"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// MatchesAny reports whether the article is classified under at least one of
// the given sector ids.
func (a Article) MatchesAny(ids []string) bool {
	for _, want := range ids {
		for _, have := range a.SectorIDs {
			if want == have {
				return true
			}
		}
	}
	return false
}
