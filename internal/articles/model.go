// Package articles implements the saved-article store: per-user collections
// of bookmarked articles, ordered by the moment they were saved.
package articles

// Article is a news article as delivered by the feed provider. ArticleID is
// assumed globally unique and stable; it is the identity used for save and
// remove operations.
type Article struct {
	ArticleID   string   `json:"article_id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Content     string   `json:"content,omitempty"`
	PubDate     string   `json:"pubDate"`
	ImageURL    string   `json:"image_url,omitempty"`
	SourceID    string   `json:"source_id,omitempty"`
	SourceName  string   `json:"source_name,omitempty"`
	Creator     []string `json:"creator,omitempty"`
	Category    []string `json:"category,omitempty"`
	Country     []string `json:"country,omitempty"`
}
