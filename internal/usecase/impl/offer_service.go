package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgExactlyThreeDetails = "An offer must contain exactly 3 details."
	msgDistinctOfferTypes  = "Each offer_type must be one of basic, standard, premium and may appear only once."
	msgDetailTypeRequired  = "offer_type is required for detail updates."
	msgDetailNotFound      = "Offer detail not found."
	detailsField           = "details"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// ListOffers returns one page of offers. A page past the end is ErrInvalidPage.
func (srv *offerService) ListOffers(ctx context.Context, query usecase.OfferQuery) (*usecase.OfferPage, error) {
	if query.Page < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPage, "page must be positive")
	}
	if !query.Ordering.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidOrdering, "ordering %q", query.Ordering)
	}

	filter := repository.OfferFilter{
		CreatorID:       query.CreatorID,
		MinPrice:        query.MinPrice,
		MaxDeliveryTime: query.MaxDeliveryTime,
		Search:          query.Search,
		Ordering:        query.Ordering,
		Offset:          (query.Page - 1) * query.PageSize,
		Limit:           query.PageSize,
	}

	page := &usecase.OfferPage{Page: query.Page, PageSize: query.PageSize}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		offers, total, err := repos.OfferRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list offers")
		}
		page.Offers = offers
		page.Count = total

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	if query.Page > 1 && int64(filter.Offset) >= page.Count {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPage, "page %d is out of range", query.Page)
	}

	for _, offer := range page.Offers {
		offer.SortDetails()
	}

	return page, nil
}

// CreateOffer stores an offer with its three tiers. Only business users may publish.
func (srv *offerService) CreateOffer(ctx context.Context, actorID uint, input usecase.CreateOfferInput) (*entity.Offer, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var offer *entity.Offer

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := requirePublisher(ctx, repos, actorID); err != nil {
			return err
		}

		if err := validateNewDetails(input.Details); err != nil {
			return err
		}

		offer = newOffer(actorID, input)
		if err := repos.OfferRepo().Create(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to create offer")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	offer.SortDetails()
	logger.Info("Offer created",
		slog.Uint64("offer_id", uint64(offer.ID)),
		slog.Uint64("user_id", uint64(actorID)),
	)

	return offer, nil
}

// AuthorizeCreate fails unless the actor may publish offers.
func (srv *offerService) AuthorizeCreate(ctx context.Context, actorID uint) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return requirePublisher(ctx, repos, actorID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to authorize offer creation")
	}

	return nil
}

// AuthorizeUpdate fails unless the offer exists and belongs to the actor.
func (srv *offerService) AuthorizeUpdate(ctx context.Context, actorID, offerID uint) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := findOwnedOffer(ctx, repos, actorID, offerID)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to authorize offer update")
	}

	return nil
}

// GetOffer returns a single offer with its details.
func (srv *offerService) GetOffer(ctx context.Context, offerID uint) (*entity.Offer, error) {
	var offer *entity.Offer

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		offer, err = findOffer(ctx, repos, offerID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get offer")
	}

	offer.SortDetails()

	return offer, nil
}

// UpdateOffer applies a partial update. Detail patches are matched by offer_type
// and all of them are validated before anything is written.
func (srv *offerService) UpdateOffer(ctx context.Context, actorID, offerID uint, input usecase.UpdateOfferInput) (*entity.Offer, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var offer *entity.Offer

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		offer, err = findOwnedOffer(ctx, repos, actorID, offerID)
		if err != nil {
			return err
		}

		targets, err := matchDetailPatches(offer, input.Details)
		if err != nil {
			return err
		}

		setIfPresent(&offer.Title, input.Title)
		setIfPresent(&offer.Image, input.Image)
		setIfPresent(&offer.Description, input.Description)

		offerRepo := repos.OfferRepo()
		if err := offerRepo.Update(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}

		for i, detail := range targets {
			applyDetailPatch(detail, input.Details[i])
			if err := offerRepo.UpdateDetail(ctx, detail); err != nil {
				return errors.Wrap(err, "failed to update offer detail")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update offer")
	}

	offer.SortDetails()
	logger.Info("Offer updated", slog.Uint64("offer_id", uint64(offer.ID)))

	return offer, nil
}

// DeleteOffer removes an offer owned by the actor.
func (srv *offerService) DeleteOffer(ctx context.Context, actorID, offerID uint) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := findOwnedOffer(ctx, repos, actorID, offerID); err != nil {
			return err
		}

		if err := repos.OfferRepo().Delete(ctx, offerID); err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to delete offer")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	logger.Info("Offer deleted", slog.Uint64("offer_id", uint64(offerID)))

	return nil
}

// GetOfferDetail returns a single offer detail.
func (srv *offerService) GetOfferDetail(ctx context.Context, detailID uint) (*entity.OfferDetail, error) {
	var detail *entity.OfferDetail

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.OfferRepo().FindDetailByID(ctx, detailID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "offer detail not found")
			}

			return errors.Wrap(err, "failed to find offer detail")
		}
		detail = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get offer detail")
	}

	return detail, nil
}

func findOffer(ctx context.Context, repos repository.RepositoryFactory, offerID uint) (*entity.Offer, error) {
	offer, err := repos.OfferRepo().FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "offer not found")
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// requirePublisher resolves the actor's profile, creating it as business, and
// rejects anyone who is not a business user.
func requirePublisher(ctx context.Context, repos repository.RepositoryFactory, actorID uint) error {
	actor, err := findActor(ctx, repos, actorID)
	if err != nil {
		return err
	}

	profile, err := resolveProfile(ctx, repos, actor, entity.ProfileTypeBusiness)
	if err != nil {
		return err
	}
	if !policy.IsBusiness(profile) {
		return errors.Wrap(domainerrors.ErrForbidden, "only business users can publish offers")
	}

	return nil
}

func findOwnedOffer(ctx context.Context, repos repository.RepositoryFactory, actorID, offerID uint) (*entity.Offer, error) {
	offer, err := findOffer(ctx, repos, offerID)
	if err != nil {
		return nil, err
	}

	if !policy.IsOwner(actorID, offer.UserID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "offer belongs to another user")
	}

	return offer, nil
}

// validateNewDetails checks the tier set of a new offer.
func validateNewDetails(details []usecase.OfferDetailInput) error {
	if len(details) != entity.RequiredOfferDetails {
		return domainerrors.NewFieldError(detailsField, msgExactlyThreeDetails)
	}

	seen := make([]entity.OfferType, 0, len(details))
	for _, d := range details {
		if !d.OfferType.IsValid() || slices.Contains(seen, d.OfferType) {
			return domainerrors.NewFieldError(detailsField, msgDistinctOfferTypes)
		}
		seen = append(seen, d.OfferType)
	}

	return nil
}

func newOffer(ownerID uint, input usecase.CreateOfferInput) *entity.Offer {
	details := make([]*entity.OfferDetail, 0, len(input.Details))
	for _, d := range input.Details {
		features := d.Features
		if features == nil {
			features = []string{}
		}

		details = append(details, &entity.OfferDetail{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           features,
			OfferType:          d.OfferType,
		})
	}

	return &entity.Offer{
		UserID:      ownerID,
		Title:       input.Title,
		Image:       input.Image,
		Description: input.Description,
		Details:     details,
	}
}

// matchDetailPatches resolves each patch to the offer's detail of the same type.
// The result is index-aligned with patches.
func matchDetailPatches(offer *entity.Offer, patches []usecase.OfferDetailPatch) ([]*entity.OfferDetail, error) {
	targets := make([]*entity.OfferDetail, 0, len(patches))
	for _, patch := range patches {
		if patch.OfferType == nil || *patch.OfferType == "" {
			return nil, domainerrors.NewFieldError(detailsField, msgDetailTypeRequired)
		}

		detail := offer.DetailByType(entity.OfferType(*patch.OfferType))
		if detail == nil {
			return nil, domainerrors.NewFieldError(detailsField, msgDetailNotFound)
		}
		targets = append(targets, detail)
	}

	return targets, nil
}

func applyDetailPatch(detail *entity.OfferDetail, patch usecase.OfferDetailPatch) {
	setIfPresent(&detail.Title, patch.Title)
	setIfPresent(&detail.Revisions, patch.Revisions)
	setIfPresent(&detail.DeliveryTimeInDays, patch.DeliveryTimeInDays)
	setIfPresent(&detail.Price, patch.Price)
	if patch.Features != nil {
		detail.Features = slices.Clone(*patch.Features)
		if detail.Features == nil {
			detail.Features = []string{}
		}
	}
}
