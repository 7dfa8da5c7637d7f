package articles

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Service exposes the saved-article operations used by handlers and is the
// place where admin-authored custom articles are assembled.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the user's saved articles in the order they were saved.
func (s *Service) List(ctx context.Context, userID string) ([]Article, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Save bookmarks an article for the user. Saving the same article id again
// is a no-op, so the saved list holds each article exactly once.
func (s *Service) Save(ctx context.Context, userID string, article *Article) error {
	if article.ArticleID == "" {
		return fmt.Errorf("article id is required")
	}
	return s.repo.Save(ctx, userID, article)
}

// Remove deletes one saved article and reports whether it was present.
func (s *Service) Remove(ctx context.Context, userID, articleID string) (bool, error) {
	return s.repo.Remove(ctx, userID, articleID)
}

// Compose builds a custom article from author-supplied fields, filling in
// the generated id, publish date, and defaults, and saves it to the author's
// own list. Links without a scheme get an https:// prefix.
func (s *Service) Compose(ctx context.Context, userID string, draft *Article) (*Article, error) {
	if draft.Title == "" || draft.Description == "" || draft.Link == "" {
		return nil, fmt.Errorf("title, description and link are required")
	}

	article := &Article{
		ArticleID:   "custom_" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Title:       draft.Title,
		Description: draft.Description,
		Content:     draft.Content,
		Link:        normalizeLink(draft.Link),
		PubDate:     time.Now().UTC().Format(time.RFC3339),
		SourceName:  draft.SourceName,
		Category:    draft.Category,
	}
	if article.Content == "" {
		article.Content = draft.Description
	}
	if article.SourceName == "" {
		article.SourceName = "Custom Source"
	}
	if len(article.Category) == 0 {
		article.Category = []string{"General"}
	}

	if err := s.repo.Save(ctx, userID, article); err != nil {
		return nil, err
	}

	return article, nil
}

func normalizeLink(link string) string {
	if len(link) >= 4 && link[:4] == "http" {
		return link
	}
	return "https://" + link
}
