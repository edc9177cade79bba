package catalogservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetPackages_ResolvesWireShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "tours key", body: `{"tours":[{"id":"t-1","title":"Island Hopper","type":"tour","subtype":"co-tour","newPrice":100,"childPrice":50,"minimumPerson":2,"times":["09:00","13:00"],"isAvailable":true}]}`},
		{name: "data key", body: `{"data":[{"id":"t-1","title":"Island Hopper","type":"tour","subtype":"co-tour","newPrice":100,"childPrice":50,"minimumPerson":2,"times":["09:00","13:00"],"isAvailable":true}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/packages", r.URL.Path)
				assert.Equal(t, "tour", r.URL.Query().Get("type"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 2*time.Second, nopLogger{})
			packages, err := client.GetPackages(context.Background(), domain.KindTour)
			require.NoError(t, err)
			require.Len(t, packages, 1)

			pkg := packages[0]
			assert.Equal(t, "t-1", pkg.ID)
			assert.Equal(t, domain.KindTour, pkg.Kind)
			assert.Equal(t, 100.0, pkg.AdultPrice)
			assert.Equal(t, []types.TimeString{"09:00", "13:00"}, pkg.Times)
		})
	}
}

func TestClient_GetPackage_DropsMalformedTimes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/packages/tr-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"tr-1","title":"Airport Transfer","type":"transfer","subtype":"Private","vehicle":"Van A","newPrice":300,"minimumPerson":1,"times":["08:00","25:99","12:00"]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})
	pkg, err := client.GetPackage(context.Background(), "tr-1")
	require.NoError(t, err)

	assert.True(t, pkg.IsPrivateTransfer())
	assert.Equal(t, "Van A", pkg.VehicleName)
	assert.Equal(t, []types.TimeString{"08:00", "12:00"}, pkg.Times)
}

func TestClient_GetPackage_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})
	_, err := client.GetPackage(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
