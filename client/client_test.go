package client

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betadmin/session"
)

func signedToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "7",
		"role":  "admin",
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func authedSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(session.NewMemoryStore())
	_, err := sess.SetToken(signedToken(t), "admin@example.com")
	require.NoError(t, err)
	return sess
}

func TestGetAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	sess := authedSession(t)
	c := New(srv.URL, sess, nil)

	var out map[string]bool
	require.NoError(t, c.Get("/api/admin/users", nil, &out))

	assert.Equal(t, "Bearer "+sess.Token(), gotAuth)
	assert.True(t, out["ok"])
}

func TestGetWithoutTokenSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	sess := session.New(session.NewMemoryStore())
	c := New(srv.URL, sess, nil)

	require.NoError(t, c.Get("/api/admin/login", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestQueryParamsForwarded(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.New(session.NewMemoryStore()), nil)

	query := url.Values{}
	query.Set("page", "2")
	query.Set("search", "0821234567")
	require.NoError(t, c.Get("/api/admin/users", query, nil))

	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "0821234567", gotQuery.Get("search"))
}

func TestUnauthorizedClearsSessionAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer srv.Close()

	sess := authedSession(t)
	hookFired := false
	c := New(srv.URL, sess, func() { hookFired = true })

	err := c.Get("/api/admin/users", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Could not validate credentials", apiErr.Detail)
	assert.True(t, hookFired)
	assert.Empty(t, sess.Token())
	assert.Equal(t, session.StateUnauthenticated, sess.State())
}

func TestErrorDetailPropagated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Deposit is not pending"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.New(session.NewMemoryStore()), nil)

	err := c.Post("/api/admin/deposits/approve", map[string]uint{"deposit_id": 42}, nil)

	require.Error(t, err)
	assert.Equal(t, "Deposit is not pending", err.Error())
}

func TestErrorWithoutDetailFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, session.New(session.NewMemoryStore()), nil)

	err := c.Get("/api/admin/users", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "500")
}

func TestStructuredDetailFlattened(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","amount"],"msg":"field required"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.New(session.NewMemoryStore()), nil)

	err := c.Post("/api/admin/deposits", map[string]any{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field required")
}

func TestResolveBaseURL(t *testing.T) {
	const fallback = "http://localhost:8080"

	assert.Equal(t, fallback, ResolveBaseURL(""))
	assert.Equal(t, fallback, ResolveBaseURL("not a url"))
	assert.Equal(t, fallback, ResolveBaseURL("/relative/path"))
	assert.Equal(t, "https://api.example.com", ResolveBaseURL("https://api.example.com"))
}
