package scope

import (
	"context"
	"fmt"
)

// Scope is the (user, location) pair that partitions favorites and orders.
// The cart is deliberately partitioned by user only: it represents the
// person's in-progress shopping trip, not a single store visit.
type Scope struct {
	UserID   string
	Location string
}

func (s Scope) FavoritesKey() string {
	return fmt.Sprintf("favorites_%s_%s", s.UserID, s.Location)
}

func (s Scope) OrdersKey() string {
	return fmt.Sprintf("orders_%s_%s", s.UserID, s.Location)
}

func CartKey(userID string) string {
	return fmt.Sprintf("cart_%s", userID)
}

func RegistryKey(userID string) string {
	return fmt.Sprintf("locations_%s", userID)
}

// UserResolver yields the signed-in user, if any.
//
//go:generate mockgen -source=scope.go -package scope -destination scope_mock.go UserResolver,ActiveLocator,Resolver
type UserResolver interface {
	CurrentUserID(c context.Context) (string, bool)
}

// ActiveLocator yields the name of the currently selected location, if any.
// Implemented by the location registry.
type ActiveLocator interface {
	ActiveLocationName(c context.Context) (string, bool)
}

// Resolver derives the active namespace. "No location selected" and
// "nobody signed in" are valid outcomes, not errors.
type Resolver interface {
	CurrentUser(c context.Context) (string, bool)
	Current(c context.Context) (Scope, bool)
}

type resolver struct {
	users     UserResolver
	locations ActiveLocator
}

func NewResolver(users UserResolver, locations ActiveLocator) Resolver {
	return &resolver{
		users:     users,
		locations: locations,
	}
}

func (r *resolver) CurrentUser(c context.Context) (string, bool) {
	return r.users.CurrentUserID(c)
}

func (r *resolver) Current(c context.Context) (Scope, bool) {
	userID, found := r.users.CurrentUserID(c)
	if !found {
		return Scope{}, false
	}

	location, found := r.locations.ActiveLocationName(c)
	if !found {
		return Scope{}, false
	}

	return Scope{UserID: userID, Location: location}, true
}
