package fraudcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grocery-be/internal/integration"
	"grocery-be/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCreds struct {
	s *settings.Settings
}

func (c stubCreds) Get(ctx context.Context) (*settings.Settings, error) {
	return c.s, nil
}

func TestClient_CheckFraud(t *testing.T) {
	ctx := context.Background()
	creds := stubCreds{s: &settings.Settings{FraudCheckAPIKey: "fc-key"}}

	t.Run("AggregatesCouriers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/courier-check", r.URL.Path)
			assert.Equal(t, "Bearer fc-key", r.Header.Get("Authorization"))

			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "01712345678", in["phone"])

			w.Write([]byte(`{"status":"success","courierData":{
				"pathao":{"name":"Pathao","total_parcel":4,"success_parcel":3,"cancelled_parcel":1},
				"steadfast":{"name":"Steadfast","total_parcel":6,"success_parcel":5,"cancelled_parcel":1},
				"summary":{"total_parcel":10,"success_parcel":8,"cancelled_parcel":2}
			}}`))
		}))
		defer srv.Close()

		res, err := NewClient(srv.URL, creds).CheckFraud(ctx, "+880 1712-345678")
		require.NoError(t, err)
		assert.Equal(t, "01712345678", res.Phone)
		assert.Equal(t, 10, res.TotalParcel)
		assert.Equal(t, 8, res.SuccessCount)
		assert.Equal(t, 2, res.CancelCount)
		assert.Equal(t, float64(80), res.SuccessRatio)
		assert.Equal(t, RiskLow, res.Risk)
		require.Len(t, res.Couriers, 2)
		assert.Equal(t, "Pathao", res.Couriers[0].Courier)
		assert.Equal(t, float64(75), res.Couriers[0].SuccessRatio)
	})

	t.Run("NoHistory", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","courierData":{}}`))
		}))
		defer srv.Close()

		res, err := NewClient(srv.URL, creds).CheckFraud(ctx, "01712345678")
		require.NoError(t, err)
		assert.Equal(t, RiskUnknown, res.Risk)
		assert.Empty(t, res.Couriers)
	})

	t.Run("InvalidPhone", func(t *testing.T) {
		_, err := NewClient("http://unused", creds).CheckFraud(ctx, "555-1234")
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		_, err := NewClient("http://unused", stubCreds{s: &settings.Settings{}}).CheckFraud(ctx, "01712345678")
		assert.ErrorIs(t, err, integration.ErrNotConfigured)
	})
}
