package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"rxsupply/internal/domain/entity"
	"rxsupply/internal/domain/repository"
	"rxsupply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pricingRepository implements the repository.PricingRepository interface.
type pricingRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPricingRepository is the constructor for pricingRepository.
func NewPricingRepository(db *gorm.DB, logger *slog.Logger) repository.PricingRepository {
	return &pricingRepository{
		db:     db,
		logger: logger,
	}
}

// ListRules retrieves all group pricing rules, active and inactive.
func (repo *pricingRepository) ListRules(ctx context.Context) ([]*entity.GroupPricingRule, error) {
	var ruleModels []*model.GroupPricingRuleModel

	if err := repo.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list group pricing rules")
	}

	rules := make([]*entity.GroupPricingRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, repo.toRuleDomain(ctx, ruleM))
	}

	return rules, nil
}

// --- Mapper Functions ---

// toRuleDomain converts a GORM GroupPricingRuleModel to a domain GroupPricingRule entity.
// A rule whose JSONB payload fails to decode still resolves, just with empty
// membership or overrides, so one bad row cannot take the catalog down.
func (repo *pricingRepository) toRuleDomain(ctx context.Context, data *model.GroupPricingRuleModel) *entity.GroupPricingRule {
	if data == nil {
		return nil
	}

	var groupIDs []uuid.UUID
	if len(data.GroupIDs) > 0 {
		if err := json.Unmarshal(data.GroupIDs, &groupIDs); err != nil {
			repo.logger.LogAttrs(ctx, slog.LevelWarn, "pricing rule has malformed group_ids",
				slog.String("ruleId", data.ID.String()),
				slog.String("error", err.Error()),
			)
			groupIDs = nil
		}
	}

	var overrides map[uuid.UUID]string
	if len(data.ProductOverrides) > 0 {
		if err := json.Unmarshal(data.ProductOverrides, &overrides); err != nil {
			repo.logger.LogAttrs(ctx, slog.LevelWarn, "pricing rule has malformed product_overrides",
				slog.String("ruleId", data.ID.String()),
				slog.String("error", err.Error()),
			)
			overrides = nil
		}
	}

	return &entity.GroupPricingRule{
		ID:               data.ID,
		Name:             data.Name,
		Status:           entity.RuleStatus(data.Status),
		GroupIDs:         groupIDs,
		ProductOverrides: overrides,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
