package postgres

import (
	"context"
	"fmt"
	"myGreenReco/domain"

	"gorm.io/gorm"
)

// RecordRepository scans the storefront tables feeding the recommender.
// It only ever reads.
type RecordRepository struct {
	DB *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{
		DB: db,
	}
}

type productIDRow struct {
	ProductID string `gorm:"column:product_id"`
}

func (r *RecordRepository) ScanReviews(ctx context.Context) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reviews []domain.Review
	if err := r.DB.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to scan reviews: %w", err)
	}

	return reviews, nil
}

func (r *RecordRepository) ScanInteractions(ctx context.Context, source domain.InteractionSource) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	model, err := modelForSource(source)
	if err != nil {
		return nil, err
	}

	var rows []productIDRow
	if err := r.DB.WithContext(ctx).Model(model).Select("product_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", source, err)
	}

	out := make([]domain.Interaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Interaction{
			ProductID: row.ProductID,
			Source:    source,
		})
	}

	return out, nil
}

func modelForSource(source domain.InteractionSource) (any, error) {
	switch source {
	case domain.SourceWishlist:
		return &domain.WishlistItem{}, nil
	case domain.SourceCart:
		return &domain.CartItem{}, nil
	case domain.SourceOrders:
		return &domain.Orders{}, nil
	default:
		return nil, fmt.Errorf("unknown interaction source %q", source)
	}
}
