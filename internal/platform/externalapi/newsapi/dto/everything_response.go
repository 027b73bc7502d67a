// Package dto mirrors the NewsAPI /v2/everything response shape.
package dto

// EverythingResponse is the search payload envelope.
type EverythingResponse struct {
	Status   string    `json:"status"`
	Message  string    `json:"message"`
	Articles []Article `json:"articles"`
}

// Article is one raw search hit.
type Article struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Source      ArticleSource `json:"source"`
}

// ArticleSource names the publication.
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
