package postgres

import (
	"context"
	"strings"
	"time"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// newsletterRepository implements the repository.NewsletterRepository interface.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{
		db: db,
	}
}

// CreateCategory persists a new newsletter category.
func (repo *newsletterRepository) CreateCategory(ctx context.Context, category *entity.NewsletterCategory) error {
	categoryM := fromNewsletterCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("category creator does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create newsletter category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindCategoryByID retrieves a newsletter category by ID.
func (repo *newsletterRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.NewsletterCategory, error) {
	var categoryM model.NewsletterCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("newsletter_id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsletterCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find newsletter category by id")
	}

	return toNewsletterCategoryDomain(&categoryM), nil
}

// UpdateCategory rewrites the descriptive columns of a category.
func (repo *newsletterRepository) UpdateCategory(ctx context.Context, category *entity.NewsletterCategory) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.NewsletterCategoryModel{}).
		Where("newsletter_id = ?", category.ID).
		Updates(map[string]any{
			"title":             category.Title,
			"short_description": category.ShortDescription,
			"cover_image_url":   category.CoverImageURL,
			"updated_at":        now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update newsletter category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNewsletterCategoryNotFound
	}

	category.UpdatedAt = now

	return nil
}

// categoryRow is a category joined with its listing aggregates.
type categoryRow struct {
	model.NewsletterCategoryModel

	ArticleCount int64
	SubscribedAt *time.Time
}

// CountCategories counts categories matching filter.
func (repo *newsletterRepository) CountCategories(ctx context.Context, filter repository.CategoryFilter) (int64, error) {
	var total int64

	if err := repo.filteredCategories(ctx, filter).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count newsletter categories")
	}

	return total, nil
}

// ListCategories returns one page of categories, newest first, with their article counts.
func (repo *newsletterRepository) ListCategories(ctx context.Context, filter repository.CategoryFilter) ([]*entity.CategorySummary, error) {
	selects := []string{
		"newsletter_categories.*",
		"(SELECT COUNT(*) FROM newsletter_articles a WHERE a.newsletter_id = newsletter_categories.newsletter_id) AS article_count",
	}
	args := []any{}
	if filter.SubscriberID != nil {
		selects = append(selects, "(SELECT s.subscribed_at FROM newsletter_subscriptions s "+
			"WHERE s.newsletter_id = newsletter_categories.newsletter_id AND s.user_id = ?) AS subscribed_at")
		args = append(args, *filter.SubscriberID)
	}

	query := repo.filteredCategories(ctx, filter).
		Select(strings.Join(selects, ", "), args...).
		Order("newsletter_categories.created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []*categoryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter categories")
	}

	summaries := make([]*entity.CategorySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.CategorySummary{
			Category:     toNewsletterCategoryDomain(&row.NewsletterCategoryModel),
			ArticleCount: row.ArticleCount,
			SubscribedAt: row.SubscribedAt,
		})
	}

	return summaries, nil
}

func (repo *newsletterRepository) filteredCategories(ctx context.Context, filter repository.CategoryFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.NewsletterCategoryModel{})

	if filter.CreatedBy != nil {
		query = query.Where("newsletter_categories.created_by = ?", *filter.CreatedBy)
	}
	if pattern, ok := likePattern(filter.Search); ok {
		query = query.Where("newsletter_categories.title ILIKE ? OR newsletter_categories.short_description ILIKE ?", pattern, pattern)
	}
	if pattern, ok := likePattern(filter.CreatorSearch); ok {
		query = query.Where("newsletter_categories.created_by IN (SELECT id FROM users WHERE name ILIKE ? OR email ILIKE ?)", pattern, pattern)
	}

	return query
}

// CountArticles counts articles matching filter.
func (repo *newsletterRepository) CountArticles(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	var total int64

	if err := repo.filteredArticles(ctx, filter).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count newsletter articles")
	}

	return total, nil
}

// ListArticles returns one page of a category's articles, newest first.
func (repo *newsletterRepository) ListArticles(ctx context.Context, filter repository.ArticleFilter) ([]*entity.NewsletterArticle, error) {
	query := repo.filteredArticles(ctx, filter).Order("created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var articleModels []*model.NewsletterArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter articles")
	}

	articles := make([]*entity.NewsletterArticle, 0, len(articleModels))
	for _, articleM := range articleModels {
		articles = append(articles, toNewsletterArticleDomain(articleM))
	}

	return articles, nil
}

func (repo *newsletterRepository) filteredArticles(ctx context.Context, filter repository.ArticleFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.NewsletterArticleModel{}).
		Where("newsletter_id = ?", filter.NewsletterID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if pattern, ok := likePattern(filter.Search); ok {
		query = query.Where("title ILIKE ? OR message ILIKE ?", pattern, pattern)
	}

	return query
}

// CreateArticle persists a new article.
func (repo *newsletterRepository) CreateArticle(ctx context.Context, article *entity.NewsletterArticle) error {
	articleM := fromNewsletterArticleDomain(article)

	if err := repo.db.WithContext(ctx).Create(articleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNewsletterCategoryNotFound.WrapMessage("article category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create newsletter article")
	}

	article.ID = articleM.ID
	article.CreatedAt = articleM.CreatedAt
	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// FindArticleByID retrieves an article by ID.
func (repo *newsletterRepository) FindArticleByID(ctx context.Context, id uuid.UUID) (*entity.NewsletterArticle, error) {
	var articleM model.NewsletterArticleModel

	if err := repo.db.WithContext(ctx).
		Where("article_id = ?", id).
		First(&articleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find newsletter article by id")
	}

	return toNewsletterArticleDomain(&articleM), nil
}

// UpdateArticleContent rewrites title and message while the article is a draft.
func (repo *newsletterRepository) UpdateArticleContent(ctx context.Context, article *entity.NewsletterArticle) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.NewsletterArticleModel{}).
		Where("article_id = ? AND status = ?", article.ID, entity.ArticleStatusDraft).
		Updates(map[string]any{
			"title":      article.Title,
			"message":    article.Message,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update newsletter article")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindArticleByID(ctx, article.ID); err != nil {
			return err
		}

		return repository.ErrArticleNotEditable
	}

	article.UpdatedAt = now

	return nil
}

// MarkArticlePublished moves a draft to sent; a second caller affects no row.
func (repo *newsletterRepository) MarkArticlePublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.NewsletterArticleModel{}).
		Where("article_id = ? AND status = ?", id, entity.ArticleStatusDraft).
		Updates(map[string]any{
			"status":       entity.ArticleStatusSent,
			"published_at": publishedAt,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to publish newsletter article")
	}

	return result.RowsAffected == 1, nil
}

// Subscribe inserts the subscription or refreshes subscribed_at when it already exists.
func (repo *newsletterRepository) Subscribe(ctx context.Context, subscription *entity.NewsletterSubscription) error {
	subscriptionM := fromNewsletterSubscriptionDomain(subscription)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "newsletter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"subscribed_at"}),
		}).
		Create(subscriptionM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNewsletterCategoryNotFound.WrapMessage("invalid user or newsletter reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to subscribe to newsletter")
	}

	return nil
}

// Unsubscribe deletes the subscription; a missing row is not an error.
func (repo *newsletterRepository) Unsubscribe(ctx context.Context, userID, newsletterID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND newsletter_id = ?", userID, newsletterID).
		Delete(&model.NewsletterSubscriptionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unsubscribe from newsletter")
	}

	return nil
}

// ListSubscriptions returns the user's subscriptions, most recent first, with categories preloaded.
func (repo *newsletterRepository) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.NewsletterSubscription, error) {
	var subscriptionModels []*model.NewsletterSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Newsletter").
		Where("user_id = ?", userID).
		Order("subscribed_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter subscriptions")
	}

	subscriptions := make([]*entity.NewsletterSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toNewsletterSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// --- Mapper Functions ---

func toNewsletterCategoryDomain(data *model.NewsletterCategoryModel) *entity.NewsletterCategory {
	if data == nil {
		return nil
	}

	return &entity.NewsletterCategory{
		ID:               data.ID,
		Title:            data.Title,
		ShortDescription: data.ShortDescription,
		CoverImageURL:    data.CoverImageURL,
		CreatedBy:        data.CreatedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromNewsletterCategoryDomain(data *entity.NewsletterCategory) *model.NewsletterCategoryModel {
	if data == nil {
		return nil
	}

	return &model.NewsletterCategoryModel{
		ID:               data.ID,
		Title:            data.Title,
		ShortDescription: data.ShortDescription,
		CoverImageURL:    data.CoverImageURL,
		CreatedBy:        data.CreatedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toNewsletterArticleDomain(data *model.NewsletterArticleModel) *entity.NewsletterArticle {
	if data == nil {
		return nil
	}

	return &entity.NewsletterArticle{
		ID:           data.ID,
		NewsletterID: data.NewsletterID,
		Title:        data.Title,
		Message:      data.Message,
		Status:       entity.ArticleStatus(data.Status),
		PublishedAt:  data.PublishedAt,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromNewsletterArticleDomain(data *entity.NewsletterArticle) *model.NewsletterArticleModel {
	if data == nil {
		return nil
	}

	return &model.NewsletterArticleModel{
		ID:           data.ID,
		NewsletterID: data.NewsletterID,
		Title:        data.Title,
		Message:      data.Message,
		Status:       string(data.Status),
		PublishedAt:  data.PublishedAt,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toNewsletterSubscriptionDomain(data *model.NewsletterSubscriptionModel) *entity.NewsletterSubscription {
	if data == nil {
		return nil
	}

	return &entity.NewsletterSubscription{
		ID:           data.ID,
		UserID:       data.UserID,
		NewsletterID: data.NewsletterID,
		SubscribedAt: data.SubscribedAt,
		Newsletter:   toNewsletterCategoryDomain(data.Newsletter),
	}
}

func fromNewsletterSubscriptionDomain(data *entity.NewsletterSubscription) *model.NewsletterSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.NewsletterSubscriptionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		NewsletterID: data.NewsletterID,
		SubscribedAt: data.SubscribedAt,
	}
}
