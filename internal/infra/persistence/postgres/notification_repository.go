package postgres

import (
	"context"
	"strings"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	notificationLogBatchSize  = 100
	constraintLogSingleSource = "chk_notification_logs_single_source"
)

//nolint:gochecknoglobals
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns a user search term into a contains pattern for ILIKE.
// ok is false for a blank term.
func likePattern(search string) (pattern string, ok bool) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", false
	}

	return "%" + likeEscaper.Replace(search) + "%", true
}

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateNotificationLogs persists multiple notification log entries in a batch for better performance.
func (repo *notificationRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		if isCheckConstraintViolation(err) {
			if violatedConstraint(err) == constraintLogSingleSource {
				return domainerrors.ErrValidationFailed.WrapMessage("notification log must reference exactly one source")
			}

			return domainerrors.ErrValidationFailed.WrapMessage("notification log has an unknown channel")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or source reference in batch")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification log information in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// CountNotificationLogs counts rows matching filter.
func (repo *notificationRepository) CountNotificationLogs(ctx context.Context, filter entity.LogFilter) (int64, error) {
	var total int64

	if err := repo.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notification logs")
	}

	return total, nil
}

// ListNotificationLogs returns rows matching filter, newest first.
func (repo *notificationRepository) ListNotificationLogs(ctx context.Context, filter entity.LogFilter) ([]*entity.NotificationLog, error) {
	query := repo.filtered(ctx, filter).
		Select("notification_logs.*").
		Order("notification_logs.sent_at DESC, notification_logs.log_id DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.WithUser {
		query = query.Preload("User")
	}

	var logModels []*model.NotificationLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notification logs")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toNotificationLogDomain(logM))
	}

	return logs, nil
}

func (repo *notificationRepository) filtered(ctx context.Context, filter entity.LogFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.NotificationLogModel{})

	if filter.UserID != nil {
		query = query.Where("notification_logs.user_id = ?", *filter.UserID)
	}
	if filter.CreatorID != nil {
		query = query.Where(
			"notification_logs.campaign_id IN (SELECT campaign_id FROM campaigns WHERE created_by = ?)",
			*filter.CreatorID,
		)
	}
	if filter.Status != "" {
		query = query.Where("notification_logs.status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where(categoryPredicate(filter.Category), filter.Category)
	}
	if filter.From != nil {
		query = query.Where("notification_logs.sent_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("notification_logs.sent_at <= ?", *filter.To)
	}
	if filter.ArticleID != nil {
		query = query.Where("notification_logs.newsletter_article_id = ?", *filter.ArticleID)
	}

	pattern, searching := likePattern(filter.Search)
	city, byCity := likePattern(filter.City)
	if searching || byCity || filter.Role != "" {
		query = query.Joins("LEFT JOIN users ON users.id = notification_logs.user_id")
	}
	if byCity {
		query = query.Where("users.city ILIKE ?", city)
	}
	if filter.Role != "" {
		query = query.Where("users.role = ?", filter.Role)
	}
	if searching {
		query = query.
			Joins("LEFT JOIN campaigns ON campaigns.campaign_id = notification_logs.campaign_id").
			Where("users.name ILIKE ? OR users.email ILIKE ? OR campaigns.campaign_name ILIKE ?", pattern, pattern, pattern)
	}

	return query
}

// categoryPredicate matches campaign rows by notification type. Order and
// newsletter rows belong to their category implicitly.
func categoryPredicate(category entity.Category) string {
	campaignOfType := "notification_logs.campaign_id IN (SELECT campaign_id FROM campaigns WHERE notification_type = ?)"

	switch category {
	case entity.CategoryOrderUpdates:
		return "(notification_logs.order_id IS NOT NULL OR " + campaignOfType + ")"
	case entity.CategoryNewsletter:
		return "(notification_logs.newsletter_article_id IS NOT NULL OR " + campaignOfType + ")"
	default:
		return campaignOfType
	}
}

// --- Mapper Functions ---

// toNotificationLogDomain converts a GORM NotificationLogModel to a domain NotificationLog entity.
func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationLog{
		ID:                  data.ID,
		UserID:              data.UserID,
		Channel:             entity.Channel(data.Channel),
		Status:              data.Status,
		SentAt:              data.SentAt,
		CampaignID:          data.CampaignID,
		NewsletterArticleID: data.NewsletterArticleID,
		OrderID:             data.OrderID,
		User:                toUserDomain(data.User),
	}
}

// fromNotificationLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Channel:             string(data.Channel),
		Status:              data.Status,
		SentAt:              data.SentAt,
		CampaignID:          data.CampaignID,
		NewsletterArticleID: data.NewsletterArticleID,
		OrderID:             data.OrderID,
	}
}
