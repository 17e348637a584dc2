// Package model holds the GORM table mappings of the marketplace.
package model

// All returns every model in dependency order, for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&OfferModel{},
		&OfferDetailModel{},
		&OrderModel{},
		&ReviewModel{},
	}
}
