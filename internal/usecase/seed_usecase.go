package usecase

import "context"

// SeedReport counts what a seed run created. Rows that already existed are not counted.
type SeedReport struct {
	Users   int
	Offers  int
	Reviews int
	Orders  int
}

// SeedUsecase fills an empty database with demo data.
type SeedUsecase interface {
	SeedDemo(ctx context.Context) (*SeedReport, error)
}
