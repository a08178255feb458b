package repository

import (
	"context"
	"errors"
	"time"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// Newsletter persistence errors.
var (
	ErrNewsletterCategoryNotFound = errors.New("newsletter category not found")
	ErrArticleNotFound            = errors.New("newsletter article not found")
	ErrArticleNotEditable         = errors.New("newsletter article is not a draft")
)

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	CreatedBy     *uuid.UUID
	Search        string     // substring of title or short description
	CreatorSearch string     // substring of the creator's name or email
	SubscriberID  *uuid.UUID // report this user's subscription on each row
	Offset        int
	Limit         int
}

// ArticleFilter narrows the article listing of one category.
type ArticleFilter struct {
	NewsletterID uuid.UUID
	Status       entity.ArticleStatus
	Search       string // substring of title or message
	Offset       int
	Limit        int
}

// NewsletterRepository persists newsletter categories, articles and subscriptions.
type NewsletterRepository interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.NewsletterCategory) error

	// FindCategoryByID retrieves a category by ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.NewsletterCategory, error)

	// UpdateCategory rewrites title, short description and cover image of a category.
	UpdateCategory(ctx context.Context, category *entity.NewsletterCategory) error

	// CountCategories counts categories matching filter, ignoring Offset and Limit.
	CountCategories(ctx context.Context, filter CategoryFilter) (int64, error)

	// ListCategories returns categories matching filter, newest first, with article counts.
	ListCategories(ctx context.Context, filter CategoryFilter) ([]*entity.CategorySummary, error)

	// CountArticles counts articles matching filter, ignoring Offset and Limit.
	CountArticles(ctx context.Context, filter ArticleFilter) (int64, error)

	// ListArticles returns articles matching filter, newest first.
	ListArticles(ctx context.Context, filter ArticleFilter) ([]*entity.NewsletterArticle, error)

	// CreateArticle persists a new article.
	CreateArticle(ctx context.Context, article *entity.NewsletterArticle) error

	// FindArticleByID retrieves an article by ID.
	FindArticleByID(ctx context.Context, id uuid.UUID) (*entity.NewsletterArticle, error)

	// UpdateArticleContent rewrites title and message of a draft article.
	// It returns ErrArticleNotEditable when the article was already published.
	UpdateArticleContent(ctx context.Context, article *entity.NewsletterArticle) error

	// MarkArticlePublished moves a draft article to sent and reports whether it did.
	MarkArticlePublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) (bool, error)

	// Subscribe creates the subscription or refreshes its subscribed_at.
	Subscribe(ctx context.Context, subscription *entity.NewsletterSubscription) error

	// Unsubscribe removes the subscription if present.
	Unsubscribe(ctx context.Context, userID, newsletterID uuid.UUID) error

	// ListSubscriptions returns the user's subscriptions with their categories, newest first.
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.NewsletterSubscription, error)
}
