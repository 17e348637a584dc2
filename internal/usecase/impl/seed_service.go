package impl

import (
	"context"
	"log/slog"

	"coderr/config"
	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"
	"coderr/internal/domain/service"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultDemoCustomerPassword = "asdasd"
	defaultDemoBusinessPassword = "asdasd24"
)

type demoAccount struct {
	username    string
	email       string
	firstName   string
	lastName    string
	profileType entity.ProfileType
}

var demoAccounts = []demoAccount{
	{"andrey", "andrey@example.com", "Andrey", "Customer", entity.ProfileTypeCustomer},
	{"customer_jane", "customer_jane@example.com", "Jane", "Doe", entity.ProfileTypeCustomer},
	{"kevin", "kevin@business.de", "Kevin", "Business", entity.ProfileTypeBusiness},
	{"biz_maria", "maria@business.de", "Maria", "Business", entity.ProfileTypeBusiness},
}

var demoOffers = []struct {
	title       string
	description string
}{
	{"Website Design", "Professionelles Website-Design."},
	{"Logo Design", "Individuelle Logos für Unternehmen."},
}

var demoDetails = []entity.OfferDetail{
	{
		Title: "Basic Design", Revisions: 2, DeliveryTimeInDays: 5, Price: decimal.NewFromInt(100),
		Features: []string{"Logo Design", "Visitenkarte"}, OfferType: entity.OfferTypeBasic,
	},
	{
		Title: "Standard Design", Revisions: 5, DeliveryTimeInDays: 7, Price: decimal.NewFromInt(200),
		Features: []string{"Logo Design", "Visitenkarte", "Briefpapier"}, OfferType: entity.OfferTypeStandard,
	},
	{
		Title: "Premium Design", Revisions: 10, DeliveryTimeInDays: 10, Price: decimal.NewFromInt(500),
		Features: []string{"Logo Design", "Visitenkarte", "Briefpapier", "Flyer"}, OfferType: entity.OfferTypePremium,
	},
}

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager        repository.TransactionManager
	hasher           service.PasswordHasher
	customerPassword string
	businessPassword string
	logger           *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	srv := &seedService{
		txManager:        params.TxManager,
		hasher:           params.Hasher,
		customerPassword: defaultDemoCustomerPassword,
		businessPassword: defaultDemoBusinessPassword,
		logger:           params.Logger,
	}
	if params.Config != nil {
		if params.Config.Seed.CustomerPassword != "" {
			srv.customerPassword = params.Config.Seed.CustomerPassword
		}
		if params.Config.Seed.BusinessPassword != "" {
			srv.businessPassword = params.Config.Seed.BusinessPassword
		}
	}

	return srv
}

// SeedDemo creates the demo accounts, offers, reviews and orders. Rows that
// already exist are left alone, so running it twice changes nothing.
func (srv *seedService) SeedDemo(ctx context.Context) (*usecase.SeedReport, error) {
	report := &usecase.SeedReport{}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var businesses, customers []*entity.User
		for _, account := range demoAccounts {
			user, err := srv.ensureAccount(ctx, repos, account, report)
			if err != nil {
				return err
			}

			if account.profileType == entity.ProfileTypeBusiness {
				businesses = append(businesses, user)
			} else {
				customers = append(customers, user)
			}
		}

		offers := make([]*entity.Offer, 0, len(demoOffers))
		for i, demo := range demoOffers {
			owner := businesses[i%len(businesses)]
			offer, err := ensureOffer(ctx, repos, owner.ID, demo.title, demo.description, report)
			if err != nil {
				return err
			}
			offers = append(offers, offer)
		}

		for _, business := range businesses {
			for _, customer := range customers {
				if err := ensureReview(ctx, repos, business.ID, customer.ID, report); err != nil {
					return err
				}
			}
		}

		return ensureOrders(ctx, repos, customers[0].ID, offers, report)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed demo data")
	}

	srv.logger.Info("Demo data seeded",
		slog.Int("users", report.Users),
		slog.Int("offers", report.Offers),
		slog.Int("reviews", report.Reviews),
		slog.Int("orders", report.Orders),
	)

	return report, nil
}

// ensureAccount gets or creates the user and rewrites its profile to the demo values.
func (srv *seedService) ensureAccount(ctx context.Context, repos repository.RepositoryFactory, account demoAccount, report *usecase.SeedReport) (*entity.User, error) {
	userRepo := repos.UserRepo()

	user, err := userRepo.FindByUsername(ctx, account.username)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrUserNotFound):
		password := srv.customerPassword
		if account.profileType == entity.ProfileTypeBusiness {
			password = srv.businessPassword
		}

		hash, err := srv.hasher.Hash(password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash demo password")
		}

		user = &entity.User{
			Username:     account.username,
			Email:        account.email,
			FirstName:    account.firstName,
			LastName:     account.lastName,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrapf(err, "failed to create demo user %s", account.username)
		}
		report.Users++
	default:
		return nil, errors.Wrapf(err, "failed to find demo user %s", account.username)
	}

	profile := &entity.Profile{
		UserID:       user.ID,
		Type:         account.profileType,
		Location:     "Berlin",
		Tel:          "123456789",
		Description:  "Demo description",
		WorkingHours: "9-17",
	}

	profileRepo := repos.ProfileRepo()
	existing, err := profileRepo.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		profile.File = existing.File
		if err := profileRepo.Update(ctx, profile); err != nil {
			return nil, errors.Wrap(err, "failed to update demo profile")
		}
	case errors.Is(err, repository.ErrProfileNotFound):
		if err := profileRepo.Create(ctx, profile); err != nil {
			return nil, errors.Wrap(err, "failed to create demo profile")
		}
	default:
		return nil, errors.Wrap(err, "failed to find demo profile")
	}

	return user, nil
}

func ensureOffer(ctx context.Context, repos repository.RepositoryFactory, ownerID uint, title, description string, report *usecase.SeedReport) (*entity.Offer, error) {
	offerRepo := repos.OfferRepo()

	owned, _, err := offerRepo.List(ctx, repository.OfferFilter{CreatorID: &ownerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list demo offers")
	}
	for _, offer := range owned {
		if offer.Title == title {
			return offer, nil
		}
	}

	details := make([]*entity.OfferDetail, 0, len(demoDetails))
	for _, template := range demoDetails {
		detail := template
		detail.Features = append([]string(nil), template.Features...)
		details = append(details, &detail)
	}

	offer := &entity.Offer{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Details:     details,
	}
	if err := offerRepo.Create(ctx, offer); err != nil {
		return nil, errors.Wrapf(err, "failed to create demo offer %s", title)
	}
	report.Offers++

	return offer, nil
}

func ensureReview(ctx context.Context, repos repository.RepositoryFactory, businessUserID, reviewerID uint, report *usecase.SeedReport) error {
	reviewRepo := repos.ReviewRepo()

	exists, err := reviewRepo.ExistsForPair(ctx, businessUserID, reviewerID)
	if err != nil {
		return errors.Wrap(err, "failed to check demo review")
	}
	if exists {
		return nil
	}

	review := &entity.Review{
		BusinessUserID: businessUserID,
		ReviewerID:     reviewerID,
		Rating:         entity.MaxRating,
		Description:    "Top Qualität!",
	}
	if err := reviewRepo.Create(ctx, review); err != nil {
		return errors.Wrap(err, "failed to create demo review")
	}
	report.Reviews++

	return nil
}

// ensureOrders gives the customer one order per offer business, from the basic tier.
func ensureOrders(ctx context.Context, repos repository.RepositoryFactory, customerID uint, offers []*entity.Offer, report *usecase.SeedReport) error {
	orderRepo := repos.OrderRepo()

	existing, err := orderRepo.ListByParticipant(ctx, customerID)
	if err != nil {
		return errors.Wrap(err, "failed to list demo orders")
	}

	ordered := make(map[uint]bool, len(existing))
	for _, order := range existing {
		if order.CustomerUserID == customerID {
			ordered[order.BusinessUserID] = true
		}
	}

	for _, offer := range offers {
		detail := offer.DetailByType(entity.OfferTypeBasic)
		if detail == nil || ordered[offer.UserID] {
			continue
		}

		order := entity.NewOrderFromDetail(customerID, offer.UserID, detail)
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create demo order")
		}
		ordered[offer.UserID] = true
		report.Orders++
	}

	return nil
}
