package news

import (
	"time"

	"github.com/avoronov/newshub/internal/articles"
)

// FallbackResponse builds the canned article list served when the provider
// is unreachable. Publish dates are generated relative to now so the list
// never looks stale.
func FallbackResponse() *Response {
	now := time.Now().UTC()

	results := []articles.Article{
		{
			ArticleID:   "fallback_article_1",
			Title:       "Global Economic Summit Announces New Trade Agreements",
			Link:        "https://example.com/news/1",
			Description: "Major economies reach consensus on new trade policies aimed at sustainable growth.",
			PubDate:     now.Format(time.RFC3339),
			ImageURL:    "https://source.unsplash.com/random/800x600/?economy",
			SourceName:  "Economic Times",
			Category:    []string{"business", "economy"},
		},
		{
			ArticleID:   "fallback_article_2",
			Title:       "Breakthrough in Renewable Energy Technology Announced",
			Link:        "https://example.com/news/2",
			Description: "Scientists reveal new solar panel design with record-breaking efficiency ratings.",
			PubDate:     now.Add(-24 * time.Hour).Format(time.RFC3339),
			ImageURL:    "https://source.unsplash.com/random/800x600/?solar",
			SourceName:  "Science Today",
			Category:    []string{"technology", "science"},
		},
		{
			ArticleID:   "fallback_article_3",
			Title:       "Space Agency Plans New Mission to Mars",
			Link:        "https://example.com/news/3",
			Description: "A new rover will be sent to the red planet to study its geological history.",
			PubDate:     now.Add(-48 * time.Hour).Format(time.RFC3339),
			ImageURL:    "https://source.unsplash.com/random/800x600/?mars",
			SourceName:  "Space News",
			Category:    []string{"science", "space"},
		},
	}

	return &Response{
		Status:       "ok",
		TotalResults: len(results),
		Results:      results,
	}
}

// FallbackHeadlines is the canned breaking-news ticker content.
func FallbackHeadlines() []Headline {
	return []Headline{
		{
			ID:    "breaking_1",
			Title: "Major Political Summit Concludes With New Agreements",
			Link:  "https://example.com/breaking/1",
		},
		{
			ID:    "breaking_2",
			Title: "Scientists Discover Potential Cure for Common Disease",
			Link:  "https://example.com/breaking/2",
		},
		{
			ID:    "breaking_3",
			Title: "Stock Markets Reach Record Highs Across Global Exchanges",
			Link:  "https://example.com/breaking/3",
		},
	}
}
