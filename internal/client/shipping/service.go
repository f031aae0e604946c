// Package shipping implements the shipping query service: four stateless
// pass-through operations with no local caching or retry. Unlike the cart
// and wishlist services, failures here propagate to the caller.
package shipping

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nakhrali/storefront/internal/validation"
	"github.com/nakhrali/storefront/pkg/api"
)

// APIClient is the subset of the HTTP client the shipping service needs.
type APIClient interface {
	TrackOrder(ctx context.Context, accessToken, orderID string) (*api.TrackingResponse, error)
	GenerateLabel(ctx context.Context, accessToken, orderID string) (*api.LabelResponse, error)
	ShippingRates(ctx context.Context, accessToken string, req api.RateRequest) (*api.RateResponse, error)
	CheckServiceability(ctx context.Context, accessToken string, req api.ServiceabilityRequest) (*api.ServiceabilityResponse, error)
}

// Credentials reports the authentication state shipping queries require.
type Credentials interface {
	IsAuthenticated() bool
	AccessToken() string
}

// ErrNotAuthenticated is returned when a shipping query is made without a
// signed-in session.
var ErrNotAuthenticated = errors.New("shipping: not authenticated")

// Service is a stateless front over the shipping endpoints. The pickup
// postcode is the warehouse origin applied to every rate and
// serviceability query.
type Service struct {
	apiClient      APIClient
	creds          Credentials
	logger         *slog.Logger
	pickupPostcode string
}

// NewService creates a shipping service. A nil logger falls back to
// slog.Default().
func NewService(apiClient APIClient, creds Credentials, pickupPostcode string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		apiClient:      apiClient,
		creds:          creds,
		logger:         logger,
		pickupPostcode: pickupPostcode,
	}
}

// Track fetches tracking information for an order.
func (s *Service) Track(ctx context.Context, orderID string) (*api.TrackingResponse, error) {
	if err := validation.ValidateRequired("order id", orderID); err != nil {
		return nil, err
	}
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.apiClient.TrackOrder(ctx, token, orderID)
}

// GenerateLabel produces a shipping label for an order.
func (s *Service) GenerateLabel(ctx context.Context, orderID string) (*api.LabelResponse, error) {
	if err := validation.ValidateRequired("order id", orderID); err != nil {
		return nil, err
	}
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.apiClient.GenerateLabel(ctx, token, orderID)
}

// RateQuote quotes courier rates for a shipment from the warehouse to the
// given destination postcode.
func (s *Service) RateQuote(ctx context.Context, deliveryPostcode string, weight float64, cod bool) (*api.RateResponse, error) {
	if err := validation.ValidatePincode(deliveryPostcode); err != nil {
		return nil, err
	}
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	req := api.RateRequest{
		PickupPostcode:   s.pickupPostcode,
		DeliveryPostcode: deliveryPostcode,
		Weight:           weight,
		COD:              cod,
	}
	return s.apiClient.ShippingRates(ctx, token, req)
}

// CheckServiceability reports whether the warehouse delivers to the given
// destination postcode.
func (s *Service) CheckServiceability(ctx context.Context, deliveryPostcode string) (*api.ServiceabilityResponse, error) {
	if err := validation.ValidatePincode(deliveryPostcode); err != nil {
		return nil, err
	}
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	req := api.ServiceabilityRequest{
		PickupPostcode:   s.pickupPostcode,
		DeliveryPostcode: deliveryPostcode,
	}
	return s.apiClient.CheckServiceability(ctx, token, req)
}

func (s *Service) token() (string, error) {
	if !s.creds.IsAuthenticated() {
		return "", ErrNotAuthenticated
	}
	return s.creds.AccessToken(), nil
}
