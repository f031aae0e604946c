package shipping

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhrali/storefront/internal/validation"
	"github.com/nakhrali/storefront/pkg/api"
)

// mockAPIClient implements APIClient for testing.
type mockAPIClient struct {
	trackResp   *api.TrackingResponse
	trackErr    error
	labelResp   *api.LabelResponse
	labelErr    error
	ratesResp   *api.RateResponse
	ratesErr    error
	serviceResp *api.ServiceabilityResponse
	serviceErr  error

	lastRateReq    api.RateRequest
	lastServiceReq api.ServiceabilityRequest
	lastToken      string
}

func (m *mockAPIClient) TrackOrder(ctx context.Context, accessToken, orderID string) (*api.TrackingResponse, error) {
	m.lastToken = accessToken
	return m.trackResp, m.trackErr
}

func (m *mockAPIClient) GenerateLabel(ctx context.Context, accessToken, orderID string) (*api.LabelResponse, error) {
	m.lastToken = accessToken
	return m.labelResp, m.labelErr
}

func (m *mockAPIClient) ShippingRates(ctx context.Context, accessToken string, req api.RateRequest) (*api.RateResponse, error) {
	m.lastToken = accessToken
	m.lastRateReq = req
	return m.ratesResp, m.ratesErr
}

func (m *mockAPIClient) CheckServiceability(ctx context.Context, accessToken string, req api.ServiceabilityRequest) (*api.ServiceabilityResponse, error) {
	m.lastToken = accessToken
	m.lastServiceReq = req
	return m.serviceResp, m.serviceErr
}

type mockCredentials struct {
	authenticated bool
}

func (m *mockCredentials) IsAuthenticated() bool { return m.authenticated }
func (m *mockCredentials) AccessToken() string   { return "access-123" }

func newTestService(client *mockAPIClient, authenticated bool) *Service {
	return NewService(client, &mockCredentials{authenticated: authenticated}, "400001", nil)
}

func TestService_Track(t *testing.T) {
	client := &mockAPIClient{trackResp: &api.TrackingResponse{
		OrderID:       "order-1",
		CurrentStatus: "In Transit",
		CourierName:   "Delhivery",
	}}
	svc := newTestService(client, true)

	resp, err := svc.Track(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "In Transit", resp.CurrentStatus)
	assert.Equal(t, "access-123", client.lastToken)
}

func TestService_Track_Unauthenticated(t *testing.T) {
	svc := newTestService(&mockAPIClient{}, false)

	_, err := svc.Track(context.Background(), "order-1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestService_Track_MissingOrderID(t *testing.T) {
	svc := newTestService(&mockAPIClient{}, true)

	_, err := svc.Track(context.Background(), "")
	assert.ErrorIs(t, err, validation.Err)
}

func TestService_Track_RemoteFailurePropagates(t *testing.T) {
	client := &mockAPIClient{trackErr: errors.New("server unreachable")}
	svc := newTestService(client, true)

	_, err := svc.Track(context.Background(), "order-1")
	assert.Error(t, err)
}

func TestService_GenerateLabel(t *testing.T) {
	client := &mockAPIClient{labelResp: &api.LabelResponse{LabelURL: "https://cdn.example.com/label.pdf"}}
	svc := newTestService(client, true)

	resp, err := svc.GenerateLabel(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/label.pdf", resp.LabelURL)
}

func TestService_RateQuote(t *testing.T) {
	client := &mockAPIClient{ratesResp: &api.RateResponse{
		AvailableCourierCompanies: []api.CourierRate{
			{CourierName: "Delhivery", Rate: 89, EstimatedDeliveryDays: 3},
		},
	}}
	svc := newTestService(client, true)

	resp, err := svc.RateQuote(context.Background(), "560001", 0.5, true)
	require.NoError(t, err)
	require.Len(t, resp.AvailableCourierCompanies, 1)

	// Pickup postcode comes from the configured warehouse origin.
	assert.Equal(t, "400001", client.lastRateReq.PickupPostcode)
	assert.Equal(t, "560001", client.lastRateReq.DeliveryPostcode)
	assert.InDelta(t, 0.5, client.lastRateReq.Weight, 0.001)
	assert.True(t, client.lastRateReq.COD)
}

func TestService_RateQuote_InvalidPincode(t *testing.T) {
	svc := newTestService(&mockAPIClient{}, true)

	_, err := svc.RateQuote(context.Background(), "12345", 0.5, false)
	assert.ErrorIs(t, err, validation.Err)
}

func TestService_CheckServiceability(t *testing.T) {
	client := &mockAPIClient{serviceResp: &api.ServiceabilityResponse{
		IsServiceable:         true,
		EstimatedDeliveryDays: 4,
	}}
	svc := newTestService(client, true)

	resp, err := svc.CheckServiceability(context.Background(), "560001")
	require.NoError(t, err)
	assert.True(t, resp.IsServiceable)
	assert.Equal(t, "400001", client.lastServiceReq.PickupPostcode)
}

func TestService_CheckServiceability_InvalidPincode(t *testing.T) {
	svc := newTestService(&mockAPIClient{}, true)

	_, err := svc.CheckServiceability(context.Background(), "0000000")
	assert.ErrorIs(t, err, validation.Err)
}
