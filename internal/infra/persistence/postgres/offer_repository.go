package postgres

import (
	"context"
	"strings"
	"time"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// Create inserts the offer row and its details in one statement batch.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Omit("User").Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) || isValueOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt
	for i := range offerM.Details {
		offer.Details[i].ID = offerM.Details[i].ID
		offer.Details[i].OfferID = offerM.ID
	}

	return nil
}

// FindByID returns an offer with its details and owner.
func (repo *offerRepository) FindByID(ctx context.Context, id uint) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.withAssociations(repo.db.WithContext(ctx)).
		Where("offers.id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// List filters offers on their per-offer detail aggregates and returns one page.
func (repo *offerRepository) List(ctx context.Context, filter repository.OfferFilter) ([]*entity.Offer, int64, error) {
	aggregates := repo.db.Model(&model.OfferDetailModel{}).
		Select("offer_id, MIN(price) AS min_price, MIN(delivery_time_in_days) AS min_delivery_time").
		Group("offer_id")

	query := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Joins("LEFT JOIN (?) AS agg ON agg.offer_id = offers.id", aggregates)

	if filter.CreatorID != nil {
		query = query.Where("offers.user_id = ?", *filter.CreatorID)
	}
	if filter.MinPrice != nil {
		query = query.Where("agg.min_price >= ?", *filter.MinPrice)
	}
	if filter.MaxDeliveryTime != nil {
		query = query.Where("agg.min_delivery_time <= ?", *filter.MaxDeliveryTime)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("(offers.title ILIKE ? OR offers.description ILIKE ?)", pattern, pattern)
	}

	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count offers")
	}

	var offerModels []*model.OfferModel
	page := repo.withAssociations(base.Select("offers.*")).
		Order(offerOrderBy(filter.Ordering))
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		page = page.Offset(filter.Offset)
	}
	if err := page.Find(&offerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, total, nil
}

// Update writes the offer's own columns and bumps updated_at.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"title":       offer.Title,
			"image":       offer.Image,
			"description": offer.Description,
			"updated_at":  now,
		})
	if result.Error != nil {
		if isValueOutOfRange(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer value does not fit its column")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	offer.UpdatedAt = now

	return nil
}

// UpdateDetail writes every column of a detail.
func (repo *offerRepository) UpdateDetail(ctx context.Context, detail *entity.OfferDetail) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferDetailModel{}).
		Where("id = ?", detail.ID).
		Updates(map[string]any{
			"title":                 detail.Title,
			"revisions":             detail.Revisions,
			"delivery_time_in_days": detail.DeliveryTimeInDays,
			"price":                 detail.Price,
			"features":              datatypes.JSONSlice[string](nonNilFeatures(detail.Features)),
			"offer_type":            detail.OfferType.String(),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isValueOutOfRange(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer detail violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer detail")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferDetailNotFound
	}

	return nil
}

// Delete removes an offer; details go with it through ON DELETE CASCADE.
func (repo *offerRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.OfferModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// FindDetailByID returns a single offer detail.
func (repo *offerRepository) FindDetailByID(ctx context.Context, id uint) (*entity.OfferDetail, error) {
	var detailM model.OfferDetailModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&detailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail by id")
	}

	return toOfferDetailDomain(&detailM), nil
}

func (repo *offerRepository) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Details", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("offer_details.id")
		}).
		Preload("User")
}

// offerOrderBy maps an ordering key onto columns. The id column breaks ties so pages are stable.
func offerOrderBy(ordering repository.OfferOrdering) clause.OrderBy {
	byID := clause.OrderByColumn{Column: clause.Column{Table: "offers", Name: "id"}}

	var primary *clause.OrderByColumn
	switch ordering {
	case repository.OfferOrderingUpdatedAt:
		primary = &clause.OrderByColumn{Column: clause.Column{Table: "offers", Name: "updated_at"}}
	case repository.OfferOrderingUpdatedAtDesc:
		primary = &clause.OrderByColumn{Column: clause.Column{Table: "offers", Name: "updated_at"}, Desc: true}
	case repository.OfferOrderingMinPrice:
		primary = &clause.OrderByColumn{Column: clause.Column{Table: "agg", Name: "min_price"}}
	case repository.OfferOrderingMinPriceDesc:
		primary = &clause.OrderByColumn{Column: clause.Column{Table: "agg", Name: "min_price"}, Desc: true}
	}

	if primary == nil {
		return clause.OrderBy{Columns: []clause.OrderByColumn{byID}}
	}

	return clause.OrderBy{Columns: []clause.OrderByColumn{*primary, byID}}
}

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nonNilFeatures(features []string) []string {
	if features == nil {
		return []string{}
	}

	return features
}

// --- Mapper Functions ---

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	details := make([]*entity.OfferDetail, 0, len(data.Details))
	for i := range data.Details {
		details = append(details, toOfferDetailDomain(&data.Details[i]))
	}

	return &entity.Offer{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Details:     details,
		User:        toUserDomain(data.User),
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	details := make([]model.OfferDetailModel, 0, len(data.Details))
	for _, d := range data.Details {
		details = append(details, *fromOfferDetailDomain(d))
	}

	return &model.OfferModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		Details:     details,
	}
}

func toOfferDetailDomain(data *model.OfferDetailModel) *entity.OfferDetail {
	if data == nil {
		return nil
	}

	return &entity.OfferDetail{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           nonNilFeatures(data.Features),
		OfferType:          entity.OfferType(data.OfferType),
	}
}

func fromOfferDetailDomain(data *entity.OfferDetail) *model.OfferDetailModel {
	if data == nil {
		return nil
	}

	return &model.OfferDetailModel{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           datatypes.JSONSlice[string](nonNilFeatures(data.Features)),
		OfferType:          data.OfferType.String(),
	}
}
