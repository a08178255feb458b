package usecase

import (
	"context"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput carries the fields of a new newsletter category.
type CategoryInput struct {
	Title            string
	ShortDescription string
	CoverImageURL    *string
}

// ArticleInput carries the fields of a newsletter article.
type ArticleInput struct {
	Title   string
	Message string
}

// CategoryUpdate carries a partial category edit; nil fields are left unchanged.
// A blank CoverImageURL clears the cover image.
type CategoryUpdate struct {
	Title            *string
	ShortDescription *string
	CoverImageURL    *string
}

// CategoryQuery is a paginated category listing request.
type CategoryQuery struct {
	Page    int
	Limit   int
	Search  string
	Creator string
}

// ArticleQuery is a paginated article listing request.
type ArticleQuery struct {
	Page   int
	Limit  int
	Status entity.ArticleStatus
	Search string
}

// RecipientQuery is a paginated article recipient request.
type RecipientQuery struct {
	Page   int
	Limit  int
	Status string // sent mode only
	City   string
	Role   entity.Role
	Search string
}

// NewsletterUsecase defines newsletter authoring, subscription and publication.
type NewsletterUsecase interface {
	// CreateCategory stores a new category owned by the actor.
	CreateCategory(ctx context.Context, actor Actor, input CategoryInput) (*entity.NewsletterCategory, error)

	// UpdateCategory edits a category the actor owns.
	UpdateCategory(ctx context.Context, actor Actor, newsletterID uuid.UUID, update CategoryUpdate) (*entity.NewsletterCategory, error)

	// ListCategories returns a page of categories; creators only see their own.
	// For end users each row reports whether they are subscribed.
	ListCategories(ctx context.Context, actor Actor, query CategoryQuery) (*entity.Page[*entity.CategorySummary], error)

	// ListArticles returns a page of a category's articles. End users only see sent articles.
	ListArticles(ctx context.Context, actor Actor, newsletterID uuid.UUID, query ArticleQuery) (*entity.Page[*entity.NewsletterArticle], error)

	// ArticleRecipients lists who would receive a draft article, or who received a sent one.
	ArticleRecipients(ctx context.Context, actor Actor, articleID uuid.UUID, query RecipientQuery) (*entity.ArticleRecipients, error)

	// ListMySubscriptions returns the user's subscriptions, most recent first.
	ListMySubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.NewsletterSubscription, error)

	// CreateArticle stores a draft article in a category the actor owns.
	CreateArticle(ctx context.Context, actor Actor, newsletterID uuid.UUID, input ArticleInput) (*entity.NewsletterArticle, error)

	// UpdateArticle edits a draft article.
	UpdateArticle(ctx context.Context, actor Actor, articleID uuid.UUID, input ArticleInput) (*entity.NewsletterArticle, error)

	// PublishArticle delivers a draft article to subscribed users and marks it sent.
	// A second call for the same article is rejected without writing logs.
	PublishArticle(ctx context.Context, actor Actor, articleID uuid.UUID) (*entity.DeliveryResult, error)

	// Subscribe subscribes the user to a category; repeated calls refresh the subscription.
	Subscribe(ctx context.Context, userID, newsletterID uuid.UUID) (*entity.NewsletterSubscription, error)

	// Unsubscribe removes the user's subscription to a category.
	Unsubscribe(ctx context.Context, userID, newsletterID uuid.UUID) error
}
