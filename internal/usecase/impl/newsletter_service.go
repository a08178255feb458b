package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/recipient"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// maxCategoryPageLimit bounds category listings.
	maxCategoryPageLimit = 100
	// maxArticlePageLimit bounds article listings.
	maxArticlePageLimit = 100
	// maxRecipientPageLimit bounds article recipient listings.
	maxRecipientPageLimit = 100
)

type newsletterService struct {
	txManager        repository.TransactionManager
	newsletterRepo   repository.NewsletterRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NewsletterServiceParams holds dependencies for NewsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NewsletterRepo   repository.NewsletterRepository
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNewsletterService creates the newsletter service.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		txManager:        params.TxManager,
		newsletterRepo:   params.NewsletterRepo,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

func (s *newsletterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateCategory stores a category owned by the actor.
func (s *newsletterService) CreateCategory(
	ctx context.Context,
	actor usecase.Actor,
	input usecase.CategoryInput,
) (*entity.NewsletterCategory, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}

	now := time.Now()
	category := &entity.NewsletterCategory{
		ID:               uuid.New(),
		Title:            title,
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		CoverImageURL:    input.CoverImageURL,
		CreatedBy:        actor.UserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.newsletterRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create newsletter category")
	}

	return category, nil
}

// UpdateCategory applies a partial edit to a category the actor owns.
func (s *newsletterService) UpdateCategory(
	ctx context.Context,
	actor usecase.Actor,
	newsletterID uuid.UUID,
	update usecase.CategoryUpdate,
) (*entity.NewsletterCategory, error) {
	if update.Title == nil && update.ShortDescription == nil && update.CoverImageURL == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no fields provided to update")
	}

	category, err := s.findCategory(ctx, newsletterID)
	if err != nil {
		return nil, err
	}

	if !actor.Owns(category.CreatedBy) {
		return nil, domainerrors.ErrForbidden.WrapMessage("newsletter belongs to another creator")
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("title must not be empty")
		}
		category.Title = title
	}
	if update.ShortDescription != nil {
		description := strings.TrimSpace(*update.ShortDescription)
		if description == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("short description must not be empty")
		}
		category.ShortDescription = description
	}
	if update.CoverImageURL != nil {
		category.CoverImageURL = nil
		if cover := strings.TrimSpace(*update.CoverImageURL); cover != "" {
			category.CoverImageURL = &cover
		}
	}

	if err := s.newsletterRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNewsletterCategoryNotFound) {
			return nil, domainerrors.ErrNewsletterCategoryNotFound.WrapMessage("newsletter was deleted during update")
		}

		return nil, errors.Wrap(err, "failed to update newsletter category")
	}

	return category, nil
}

// ListCategories returns a page of categories, newest first.
func (s *newsletterService) ListCategories(
	ctx context.Context,
	actor usecase.Actor,
	query usecase.CategoryQuery,
) (*entity.Page[*entity.CategorySummary], error) {
	filter := repository.CategoryFilter{
		Search:        query.Search,
		CreatorSearch: query.Creator,
	}
	if actor.ScopedToOwn() {
		filter.CreatedBy = &actor.UserID
	}
	if actor.Role == entity.RoleUser {
		filter.SubscriberID = &actor.UserID
	}

	page, limit := entity.ClampPageRequest(query.Page, query.Limit, maxCategoryPageLimit)

	total, err := s.newsletterRepo.CountCategories(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count newsletter categories")
	}

	meta := entity.NewPageMeta(page, limit, total)
	filter.Offset = meta.Offset()
	filter.Limit = meta.Limit

	categories, err := s.newsletterRepo.ListCategories(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter categories")
	}

	return &entity.Page[*entity.CategorySummary]{Items: categories, Meta: meta}, nil
}

// ListArticles returns a page of a category's articles, newest first.
func (s *newsletterService) ListArticles(
	ctx context.Context,
	actor usecase.Actor,
	newsletterID uuid.UUID,
	query usecase.ArticleQuery,
) (*entity.Page[*entity.NewsletterArticle], error) {
	category, err := s.findCategory(ctx, newsletterID)
	if err != nil {
		return nil, err
	}

	if actor.ScopedToOwn() && category.CreatedBy != actor.UserID {
		return nil, domainerrors.ErrForbidden.WrapMessage("newsletter belongs to another creator")
	}

	filter := repository.ArticleFilter{
		NewsletterID: newsletterID,
		Status:       query.Status,
		Search:       query.Search,
	}
	if actor.Role == entity.RoleUser {
		filter.Status = entity.ArticleStatusSent
	}

	page, limit := entity.ClampPageRequest(query.Page, query.Limit, maxArticlePageLimit)

	total, err := s.newsletterRepo.CountArticles(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count newsletter articles")
	}

	meta := entity.NewPageMeta(page, limit, total)
	filter.Offset = meta.Offset()
	filter.Limit = meta.Limit

	articles, err := s.newsletterRepo.ListArticles(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter articles")
	}

	return &entity.Page[*entity.NewsletterArticle]{Items: articles, Meta: meta}, nil
}

// ArticleRecipients previews the audience of a draft article, or pages the
// delivery log of a sent one.
func (s *newsletterService) ArticleRecipients(
	ctx context.Context,
	_ usecase.Actor,
	articleID uuid.UUID,
	query usecase.RecipientQuery,
) (*entity.ArticleRecipients, error) {
	article, err := s.findArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	page, limit := entity.ClampPageRequest(query.Page, query.Limit, maxRecipientPageLimit)

	if article.IsPublished() {
		return s.sentRecipients(ctx, article, query, page, limit)
	}

	return s.draftRecipients(ctx, article, query, page, limit)
}

func (s *newsletterService) sentRecipients(
	ctx context.Context,
	article *entity.NewsletterArticle,
	query usecase.RecipientQuery,
	page, limit int,
) (*entity.ArticleRecipients, error) {
	articleID := article.ID
	filter := entity.LogFilter{
		ArticleID: &articleID,
		Status:    query.Status,
		City:      query.City,
		Role:      query.Role,
		Search:    query.Search,
		WithUser:  true,
	}

	total, err := s.notificationRepo.CountNotificationLogs(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count article deliveries")
	}

	meta := entity.NewPageMeta(page, limit, total)
	filter.Offset = meta.Offset()
	filter.Limit = meta.Limit

	logs, err := s.notificationRepo.ListNotificationLogs(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list article deliveries")
	}

	items := make([]*entity.ArticleRecipient, 0, len(logs))
	for _, log := range logs {
		sentAt := log.SentAt
		items = append(items, &entity.ArticleRecipient{
			User:     log.User,
			Channels: []entity.Channel{log.Channel},
			Status:   log.Status,
			SentAt:   &sentAt,
		})
	}

	return &entity.ArticleRecipients{Article: article, Mode: entity.RecipientPreviewSent, Items: items, Meta: meta}, nil
}

func (s *newsletterService) draftRecipients(
	ctx context.Context,
	article *entity.NewsletterArticle,
	query usecase.RecipientQuery,
	page, limit int,
) (*entity.ArticleRecipients, error) {
	newsletterID := article.NewsletterID
	criteria := entity.RecipientCriteria{
		Category:     entity.CategoryNewsletter,
		NewsletterID: &newsletterID,
	}

	candidates, err := s.userRepo.FindRecipientCandidates(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find newsletter recipients")
	}

	users := make(map[uuid.UUID]*entity.User, len(candidates))
	for _, candidate := range candidates {
		if candidate.User != nil {
			users[candidate.User.ID] = candidate.User
		}
	}

	var matched []*entity.ArticleRecipient
	byUser := make(map[uuid.UUID]*entity.ArticleRecipient)
	for _, pair := range recipient.Resolve(candidates, criteria) {
		if row, ok := byUser[pair.UserID]; ok {
			row.Channels = append(row.Channels, pair.Channel)

			continue
		}

		user := users[pair.UserID]
		if !matchesRecipientQuery(user, query) {
			continue
		}

		row := &entity.ArticleRecipient{
			User:     user,
			Channels: []entity.Channel{pair.Channel},
			Status:   entity.RecipientStatusPending,
		}
		byUser[pair.UserID] = row
		matched = append(matched, row)
	}

	meta := entity.NewPageMeta(page, limit, int64(len(matched)))
	start := min(meta.Offset(), len(matched))
	end := min(start+meta.Limit, len(matched))

	return &entity.ArticleRecipients{
		Article: article,
		Mode:    entity.RecipientPreviewDraft,
		Items:   matched[start:end],
		Meta:    meta,
	}, nil
}

// matchesRecipientQuery applies the draft preview filters: a city substring,
// an exact role and a name or email substring. Substring matches ignore case.
func matchesRecipientQuery(user *entity.User, query usecase.RecipientQuery) bool {
	if query.Role != "" && user.Role != query.Role {
		return false
	}

	if city := strings.TrimSpace(query.City); city != "" {
		if user.City == nil || !containsFold(*user.City, city) {
			return false
		}
	}

	if search := strings.TrimSpace(query.Search); search != "" {
		if !containsFold(user.Name, search) && !containsFold(user.Email, search) {
			return false
		}
	}

	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ListMySubscriptions returns userID's subscriptions, most recent first.
func (s *newsletterService) ListMySubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.NewsletterSubscription, error) {
	subscriptions, err := s.newsletterRepo.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter subscriptions")
	}

	return subscriptions, nil
}

// CreateArticle stores a draft article in a category the actor owns.
func (s *newsletterService) CreateArticle(
	ctx context.Context,
	actor usecase.Actor,
	newsletterID uuid.UUID,
	input usecase.ArticleInput,
) (*entity.NewsletterArticle, error) {
	title, message, err := validateArticleInput(input)
	if err != nil {
		return nil, err
	}

	category, err := s.findCategory(ctx, newsletterID)
	if err != nil {
		return nil, err
	}

	if !actor.Owns(category.CreatedBy) {
		return nil, domainerrors.ErrForbidden.WrapMessage("newsletter belongs to another creator")
	}

	now := time.Now()
	article := &entity.NewsletterArticle{
		ID:           uuid.New(),
		NewsletterID: newsletterID,
		Title:        title,
		Message:      message,
		Status:       entity.ArticleStatusDraft,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.newsletterRepo.CreateArticle(ctx, article); err != nil {
		return nil, errors.Wrap(err, "failed to create newsletter article")
	}

	return article, nil
}

// UpdateArticle edits a draft article.
func (s *newsletterService) UpdateArticle(
	ctx context.Context,
	actor usecase.Actor,
	articleID uuid.UUID,
	input usecase.ArticleInput,
) (*entity.NewsletterArticle, error) {
	title, message, err := validateArticleInput(input)
	if err != nil {
		return nil, err
	}

	article, err := s.findOwnedArticle(ctx, actor, articleID)
	if err != nil {
		return nil, err
	}

	if article.IsPublished() {
		return nil, domainerrors.ErrArticleNotEditable.WrapMessage("failed to update article")
	}

	article.Title = title
	article.Message = message
	article.UpdatedAt = time.Now()

	if err := s.newsletterRepo.UpdateArticleContent(ctx, article); err != nil {
		if errors.Is(err, repository.ErrArticleNotEditable) {
			return nil, domainerrors.ErrArticleNotEditable.WrapMessage("article was published during update")
		}

		return nil, errors.Wrap(err, "failed to update newsletter article")
	}

	return article, nil
}

// PublishArticle delivers the article to subscribers of its category. The
// draft->sent write is conditional, so a concurrent second publish fails
// without writing logs.
func (s *newsletterService) PublishArticle(ctx context.Context, actor usecase.Actor, articleID uuid.UUID) (*entity.DeliveryResult, error) {
	article, err := s.findOwnedArticle(ctx, actor, articleID)
	if err != nil {
		return nil, err
	}

	if article.IsPublished() {
		return nil, domainerrors.ErrArticleAlreadyPublished.WrapMessage("failed to publish article")
	}

	newsletterID := article.NewsletterID
	criteria := entity.RecipientCriteria{
		Category:     entity.CategoryNewsletter,
		NewsletterID: &newsletterID,
	}

	candidates, err := s.userRepo.FindRecipientCandidates(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find newsletter recipients")
	}

	pairs := recipient.Resolve(candidates, criteria)
	if len(pairs) == 0 {
		s.log(ctx).Info("Article has no eligible recipients", slog.String("article_id", articleID.String()))

		return &entity.DeliveryResult{}, nil
	}

	result := &entity.DeliveryResult{Recipients: recipient.CountUsers(pairs)}
	publishedAt := time.Now()

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		published, err := repoFactory.NewNewsletterRepository().MarkArticlePublished(ctx, articleID, publishedAt)
		if err != nil {
			return errors.Wrap(err, "failed to mark article published")
		}

		if !published {
			return domainerrors.ErrArticleAlreadyPublished.WrapMessage("article was published concurrently")
		}

		written, err := appendDeliveryLogs(ctx, repoFactory.NewNotificationRepository(), entity.ArticleSource(articleID), pairs, entity.LogStatusSuccess, publishedAt)
		if err != nil {
			return err
		}

		result.LogCount = written

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrArticleAlreadyPublished) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to execute article publication transaction")
	}

	s.log(ctx).Info("Article published",
		slog.String("article_id", articleID.String()),
		slog.Int("recipients", result.Recipients),
		slog.Int("log_count", result.LogCount),
	)

	publishDeliveryEvent(ctx, s.publisher, s.log(ctx), &service.DeliveryEvent{
		Type:       service.EventArticlePublished,
		SourceID:   articleID.String(),
		Recipients: result.Recipients,
		LogCount:   result.LogCount,
		Status:     entity.LogStatusSuccess,
		OccurredAt: publishedAt,
	})

	return result, nil
}

// Subscribe subscribes userID to a category, refreshing an existing subscription.
func (s *newsletterService) Subscribe(ctx context.Context, userID, newsletterID uuid.UUID) (*entity.NewsletterSubscription, error) {
	if _, err := s.findCategory(ctx, newsletterID); err != nil {
		return nil, err
	}

	subscription := &entity.NewsletterSubscription{
		ID:           uuid.New(),
		UserID:       userID,
		NewsletterID: newsletterID,
		SubscribedAt: time.Now(),
	}

	if err := s.newsletterRepo.Subscribe(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to newsletter")
	}

	return subscription, nil
}

// Unsubscribe removes userID's subscription to a category.
func (s *newsletterService) Unsubscribe(ctx context.Context, userID, newsletterID uuid.UUID) error {
	if _, err := s.findCategory(ctx, newsletterID); err != nil {
		return err
	}

	if err := s.newsletterRepo.Unsubscribe(ctx, userID, newsletterID); err != nil {
		return errors.Wrap(err, "failed to unsubscribe from newsletter")
	}

	return nil
}

func (s *newsletterService) findCategory(ctx context.Context, newsletterID uuid.UUID) (*entity.NewsletterCategory, error) {
	category, err := s.newsletterRepo.FindCategoryByID(ctx, newsletterID)
	if err != nil {
		if errors.Is(err, repository.ErrNewsletterCategoryNotFound) {
			return nil, domainerrors.ErrNewsletterCategoryNotFound.WrapMessage("failed to find newsletter")
		}

		return nil, errors.Wrap(err, "failed to find newsletter category")
	}

	return category, nil
}

func (s *newsletterService) findArticle(ctx context.Context, articleID uuid.UUID) (*entity.NewsletterArticle, error) {
	article, err := s.newsletterRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound.WrapMessage("failed to find article")
		}

		return nil, errors.Wrap(err, "failed to find newsletter article")
	}

	return article, nil
}

func (s *newsletterService) findOwnedArticle(ctx context.Context, actor usecase.Actor, articleID uuid.UUID) (*entity.NewsletterArticle, error) {
	article, err := s.findArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if !actor.Owns(article.CreatedBy) {
		return nil, domainerrors.ErrForbidden.WrapMessage("article belongs to another creator")
	}

	return article, nil
}

func validateArticleInput(input usecase.ArticleInput) (string, string, error) {
	title := strings.TrimSpace(input.Title)
	message := strings.TrimSpace(input.Message)
	if title == "" || message == "" {
		return "", "", domainerrors.ErrValidationFailed.WrapMessage("title and message are required")
	}

	return title, message, nil
}
