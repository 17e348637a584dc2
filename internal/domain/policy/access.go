// Package policy holds the access predicates that decide whether an identity may act on a resource.
package policy

import "coderr/internal/domain/entity"

// IsBusiness reports whether the resolved profile is business-typed.
func IsBusiness(profile *entity.Profile) bool {
	return profile.IsBusiness()
}

// IsCustomer reports whether the resolved profile is customer-typed.
func IsCustomer(profile *entity.Profile) bool {
	return profile.IsCustomer()
}

// IsOwner reports whether actorID owns the resource identified by ownerID.
func IsOwner(actorID, ownerID uint) bool {
	return actorID != 0 && actorID == ownerID
}

// IsOrderBusinessOwner reports whether actorID is the business side of order.
// Staff is not granted anything here.
func IsOrderBusinessOwner(actorID uint, order *entity.Order) bool {
	return order != nil && IsOwner(actorID, order.BusinessUserID)
}

// IsStaff reports whether user carries the staff flag.
func IsStaff(user *entity.User) bool {
	return user != nil && user.IsStaff
}
