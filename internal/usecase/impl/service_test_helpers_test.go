package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// repoMocks bundles a factory with one mock per repository it hands out.
type repoMocks struct {
	factory  *mockRepo.MockRepositoryFactory
	users    *mockRepo.MockUserRepository
	profiles *mockRepo.MockProfileRepository
	offers   *mockRepo.MockOfferRepository
	orders   *mockRepo.MockOrderRepository
	reviews  *mockRepo.MockReviewRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	repos := &repoMocks{
		factory:  mockRepo.NewMockRepositoryFactory(t),
		users:    mockRepo.NewMockUserRepository(t),
		profiles: mockRepo.NewMockProfileRepository(t),
		offers:   mockRepo.NewMockOfferRepository(t),
		orders:   mockRepo.NewMockOrderRepository(t),
		reviews:  mockRepo.NewMockReviewRepository(t),
	}

	repos.factory.EXPECT().UserRepo().Return(repos.users).Maybe()
	repos.factory.EXPECT().ProfileRepo().Return(repos.profiles).Maybe()
	repos.factory.EXPECT().OfferRepo().Return(repos.offers).Maybe()
	repos.factory.EXPECT().OrderRepo().Return(repos.orders).Maybe()
	repos.factory.EXPECT().ReviewRepo().Return(repos.reviews).Maybe()

	return repos
}

// expectTx makes txManager run the callback against repos and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *repoMocks) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

func ptr[T any](v T) *T {
	return &v
}
