package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	cfg := Config{
		Scheme:     "http",
		Host:       u.Host,
		Timeout:    5 * time.Second,
		RetryCount: 0,
	}
	return New(cfg, "", "session=abc123"), srv
}

func TestClient_ListRestaurantes(t *testing.T) {
	var gotQuery url.Values
	var gotCookie string

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotCookie = r.Header.Get("Cookie")
		assert.Equal(t, "/restaurantes", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data":[{"id":"r1","name":"Al Carbón","subscriptionPlan":"BASICO","isActive":true}],
			"total":1,"page":1,"limit":5,"totalPages":1
		}`))
	}))

	f := domain.NewFilters().SetSearch("carbon").SetPlan(domain.PlanBasico)
	page, err := client.ListRestaurantes(context.Background(), f)
	require.NoError(t, err)

	assert.Len(t, page.Data, 1)
	assert.Equal(t, "Al Carbón", page.Data[0].Name)
	assert.Equal(t, 1, page.TotalPages)

	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "5", gotQuery.Get("limit"))
	assert.Equal(t, "carbon", gotQuery.Get("search"))
	assert.Equal(t, domain.PlanBasico, gotQuery.Get("subscriptionPlan"))
	assert.False(t, gotQuery.Has("city"))

	// Credentials ride along on every request.
	assert.Equal(t, "session=abc123", gotCookie)
}

func TestClient_ListRestaurantes_MissingDataYieldsEmptyPage(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":0}`))
	}))

	page, err := client.ListRestaurantes(context.Background(), domain.NewFilters())
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.Limit)
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "top-level message",
			status:  409,
			body:    `{"message":"El subdominio ya existe"}`,
			wantMsg: "El subdominio ya existe",
		},
		{
			name:    "nested error message",
			status:  422,
			body:    `{"error":{"code":"VALIDATION","message":"NIT inválido"}}`,
			wantMsg: "NIT inválido",
		},
		{
			name:    "plain error string",
			status:  400,
			body:    `{"error":"bad things"}`,
			wantMsg: "bad things",
		},
		{
			name:    "unstructured body falls back to generic",
			status:  500,
			body:    `<html>boom</html>`,
			wantMsg: domain.ErrUpstreamRejected.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			err := client.DeleteRestaurante(context.Background(), "r1")
			require.Error(t, err)

			var appErr *domain.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Equal(t, tt.status, appErr.StatusCode)
		})
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"data":[],"total":0,"page":1,"limit":5,"totalPages":0}`))
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	client := New(Config{Scheme: "http", Host: u.Host, Timeout: 5 * time.Second, RetryCount: 2}, "", "")

	_, err := client.ListRestaurantes(context.Background(), domain.NewFilters())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicado"}`))
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	client := New(Config{Scheme: "http", Host: u.Host, Timeout: 5 * time.Second, RetryCount: 3}, "", "")

	err := client.CreateAdmin(context.Background(), "r1", AdminPayload{Name: "x", Email: "x@y.co", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_AdminEndpointsHitExpectedPaths(t *testing.T) {
	var method, path string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"admins":[{"id":"a1","name":"Juan","email":"j@x.co"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	ctx := context.Background()

	admins, err := client.ListAdmins(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, admins, 1)
	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, "/restaurantes/r1/admins", path)

	require.NoError(t, client.CreateAdmin(ctx, "r1", AdminPayload{Name: "x", Email: "x@y.co", Password: "p"}))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/restaurantes/r1/admins", path)

	require.NoError(t, client.UpdateAdmin(ctx, "r1", "a1", AdminPayload{Name: "x", Email: "x@y.co"}))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/restaurantes/r1/admins/a1", path)

	require.NoError(t, client.DeleteAdmin(ctx, "r1", "a1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/restaurantes/r1/admins/a1", path)

	require.NoError(t, client.ChangeAdminPassword(ctx, "r1", "a1", "newpass123"))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/restaurantes/r1/admins/a1/change-password", path)
}

func TestClient_DeleteRestaurantePath(t *testing.T) {
	var path string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))

	require.NoError(t, client.DeleteRestaurante(context.Background(), "r9"))
	assert.Equal(t, "/restaurantes/r9/delete", path)
}

func TestClient_TransportErrorSurfacesText(t *testing.T) {
	// Point at a closed server: no response is ever received.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	u, _ := url.Parse(srv.URL)
	srv.Close()

	client := New(Config{Scheme: "http", Host: u.Host, Timeout: time.Second, RetryCount: 0}, "", "")
	err := client.DeleteRestaurante(context.Background(), "r1")
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domain.ErrUpstreamUnavailable.Code, appErr.Code)
	assert.True(t, strings.Contains(appErr.Message, "connection refused") || appErr.Message != "",
		"transport error text should surface, got %q", appErr.Message)
}
