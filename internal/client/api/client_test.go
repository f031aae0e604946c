package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhrali/storefront/pkg/api"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8000/api", 0)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000/api", client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)

	client = NewClient("http://localhost:8000/api", 5*time.Second)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "priya@example.com", req.Email)
		assert.Equal(t, "emerald-ring-9", req.Password)

		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken:  "access-123",
			RefreshToken: "refresh-456",
			User:         &api.User{ID: "user-1", Email: "priya@example.com", Role: "customer"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Email:    "priya@example.com",
		Password: "emerald-ring-9",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-123", resp.AccessToken)
	assert.Equal(t, "refresh-456", resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestClient_Login_ServerError(t *testing.T) {
	tests := []struct {
		name           string
		responseBody   interface{}
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "invalid credentials",
			statusCode:     http.StatusUnauthorized,
			responseBody:   api.ErrorResponse{Error: "invalid email or password"},
			expectedErrMsg: "server error (401): invalid email or password",
		},
		{
			name:           "server failure with message field",
			statusCode:     http.StatusInternalServerError,
			responseBody:   map[string]string{"message": "database unavailable"},
			expectedErrMsg: "server error (500): database unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(tt.responseBody)
			}))
			defer server.Close()

			client := NewClient(server.URL, 0)
			_, err := client.Login(context.Background(), api.LoginRequest{Email: "a@b.c", Password: "xxxxxxxx"})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.statusCode, statusErr.Code)
		})
	}
}

func TestClient_GetCart_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(api.CartResponse{
			Items: []api.CartItem{
				{
					Product:  api.CartProduct{ID: "p-1", Name: "Emerald Ring", Slug: "emerald-ring"},
					Quantity: 2,
					Price:    4999,
				},
			},
			Totals: api.CartTotals{Subtotal: 9998, Total: 9998},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)

	resp, err := client.GetCart(context.Background(), "access-123")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "p-1", resp.Items[0].Product.ID)
	assert.Equal(t, 2, resp.Items[0].Quantity)
}

func TestClient_SyncCart(t *testing.T) {
	var received api.SyncCartRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart/sync", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)

	err := client.SyncCart(context.Background(), "access-123", api.SyncCartRequest{
		Items: []api.CartItem{{Product: api.CartProduct{ID: "p-7"}, Quantity: 1, Price: 1200}},
	})
	require.NoError(t, err)
	require.Len(t, received.Items, 1)
	assert.Equal(t, "p-7", received.Items[0].Product.ID)
}

func TestClient_RemoveWishlistItem_PathParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/wishlist/remove/wl-42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	require.NoError(t, client.RemoveWishlistItem(context.Background(), "access-123", "wl-42"))
}

func TestClient_ProductReviews_QueryEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reviews/product/p-1", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("rating"))
		assert.Equal(t, "true", r.URL.Query().Get("verified_only"))

		_ = json.NewEncoder(w).Encode(api.ProductReviewsResponse{
			Reviews:     []api.Review{{ID: "r-1", ProductID: "p-1", Rating: 5}},
			RatingStats: api.RatingStats{AverageRating: 5, TotalReviews: 1},
			Pagination:  api.Pagination{Page: 2, PerPage: 10, Total: 11, TotalPages: 2, HasPrev: true},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)

	query := url.Values{}
	query.Set("page", "2")
	query.Set("rating", "5")
	query.Set("verified_only", "true")

	resp, err := client.ProductReviews(context.Background(), "p-1", query)
	require.NoError(t, err)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, 2, resp.Pagination.Page)
}

func TestClient_SearchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "emerald", r.URL.Query().Get("search"))
		assert.Equal(t, "rings", r.URL.Query().Get("category"))

		_ = json.NewEncoder(w).Encode(api.ProductListResponse{
			Products: []api.Product{{ID: "p-1", Name: "Emerald Ring", Price: 4999}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)

	query := url.Values{}
	query.Set("search", "emerald")
	query.Set("category", "rings")

	resp, err := client.SearchProducts(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Emerald Ring", resp.Products[0].Name)
}

func TestClient_CheckServiceability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipping/serviceability", r.URL.Path)

		var req api.ServiceabilityRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "400001", req.PickupPostcode)
		assert.Equal(t, "560001", req.DeliveryPostcode)

		_ = json.NewEncoder(w).Encode(api.ServiceabilityResponse{
			IsServiceable:         true,
			EstimatedDeliveryDays: 3,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)

	resp, err := client.CheckServiceability(context.Background(), "access-123", api.ServiceabilityRequest{
		PickupPostcode:   "400001",
		DeliveryPostcode: "560001",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsServiceable)
	assert.Equal(t, 3, resp.EstimatedDeliveryDays)
}

func TestClient_NetworkError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)

	_, err := client.GetCart(context.Background(), "access-123")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "server error")
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&StatusError{Code: http.StatusUnauthorized, Message: "expired"}))
	assert.False(t, IsUnauthorized(&StatusError{Code: http.StatusNotFound, Message: "missing"}))
	assert.False(t, IsUnauthorized(context.Canceled))
}
