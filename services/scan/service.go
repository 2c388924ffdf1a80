package scan

import (
	"context"

	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/services/location"
)

// Registrar records a scanned location visit. Implemented by the location
// registry.
type Registrar interface {
	Register(c context.Context, loc location.Location) error
}

// CheckoutTrigger fires checkout of the current cart. Implemented by the
// cart store.
type CheckoutTrigger interface {
	Checkout(c context.Context) error
}

type service struct {
	registrar Registrar
	checkout  CheckoutTrigger
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(registrar Registrar, checkout CheckoutTrigger) *service {
	return &service{
		registrar: registrar,
		checkout:  checkout,
		logger:    mylog.New("scan"),
	}
}

type Result struct {
	Kind    Kind
	Display string
}

// Submit decodes one raw scan and dispatches it: location payloads go to
// the registry, checkout payloads to the cart, anything else bounces back
// as display text.
func (s *service) Submit(c context.Context, raw string) (Result, error) {
	payload := Decode(raw)

	switch payload.Kind {
	case KindLocation:
		err := s.registrar.Register(c, location.Location{
			ID:      payload.Location.ID,
			Name:    payload.Location.Name,
			Address: payload.Location.Address,
		})
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindLocation, Display: payload.Location.Name}, nil

	case KindCheckout:
		err := s.checkout.Checkout(c)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindCheckout}, nil

	default:
		s.logger.Log(c, "", mylog.SeverityInfo, "Undecodable scan payload, passing through for display")
		return Result{Kind: KindOpaque, Display: payload.Raw}, nil
	}
}
