package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"smart-global-hub/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, resp dto.Response) {
	resp.StatusCode = status
	resp.Success = status < 400
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func TestSession_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	s := NewSession(path)
	s.SetAuth(&dto.AuthResponse{AccessToken: "a", RefreshToken: "r", User: dto.UserResponse{Email: "ops@example.com"}})
	s.Select("agent", "agent-1")
	require.NoError(t, s.Save())

	loaded, err := LoadSession(path)
	require.NoError(t, err)
	assert.Equal(t, "a", loaded.Token())
	assert.Equal(t, "ops@example.com", loaded.User.Email)
	assert.Equal(t, "agent-1", loaded.Selection("agent"))

	require.NoError(t, loaded.Clear())
	assert.False(t, loaded.Authenticated())
	assert.Empty(t, loaded.Selection("agent"))
	assert.NoFileExists(t, path)

	missing, err := LoadSession(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.False(t, missing.Authenticated())
}

func TestClient_LoginStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var req dto.LoginRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Password != "pw" {
				writeEnvelope(w, http.StatusUnauthorized, dto.Response{Message: "Invalid credentials"})
				return
			}
			writeEnvelope(w, http.StatusOK, dto.Response{Data: dto.AuthResponse{
				AccessToken:  "token-1",
				RefreshToken: "refresh-1",
				User:         dto.UserResponse{ID: "u1", Email: req.Email},
			}})
		case "/auth/me":
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			writeEnvelope(w, http.StatusOK, dto.Response{Data: dto.UserResponse{ID: "u1"}})
		}
	}))
	defer srv.Close()

	var fired int32
	path := filepath.Join(t.TempDir(), "session.json")
	c := New(srv.URL, NewSession(path), WithUnauthorizedHandler(func() { atomic.AddInt32(&fired, 1) }))

	_, err := c.Login(context.Background(), "ops@example.com", "bad")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired), "failed login must not count as a lost session")

	user, err := c.Login(context.Background(), "ops@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.FileExists(t, path)

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", me.ID)
}

func TestClient_UnauthorizedFiresOnce(t *testing.T) {
	var loginCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			atomic.AddInt32(&loginCalls, 1)
			writeEnvelope(w, http.StatusOK, dto.Response{Data: dto.AuthResponse{AccessToken: "expired"}})
			return
		}
		writeEnvelope(w, http.StatusUnauthorized, dto.Response{Message: "Invalid or expired token"})
	}))
	defer srv.Close()

	var fired int32
	session := NewSession("")
	c := New(srv.URL, session, WithUnauthorizedHandler(func() { atomic.AddInt32(&fired, 1) }))

	_, err := c.Login(context.Background(), "ops@example.com", "pw")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.Me(context.Background())
		require.Error(t, err)
		assert.True(t, IsUnauthorized(err))
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	assert.False(t, session.Authenticated())
	assert.Equal(t, int32(1), atomic.LoadInt32(&loginCalls), "client must never retry on its own")

	// a new login re-arms the handler
	_, err = c.Login(context.Background(), "ops@example.com", "pw")
	require.NoError(t, err)
	_, err = c.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&fired))
}

func TestClient_ListTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "partial", r.URL.Query().Get("status"))
		assert.Empty(t, r.URL.Query().Get("agentId"))

		writeEnvelope(w, http.StatusOK, dto.Response{
			Data: []dto.TransactionResponse{{ID: "t2", TotalEarnings: decimal.RequireFromString("9.255")}},
			Meta: &dto.Meta{TotalItems: 3, TotalPages: 3, CurrentPage: 2},
			Overview: []dto.TransactionOverview{{
				QuoteCurrency: "USD",
				Count:         3,
			}},
		})
	}))
	defer srv.Close()

	session := NewSession("")
	session.AccessToken = "t"
	c := New(srv.URL, session)

	page, overview, err := c.ListTransactions(context.Background(), TransactionQuery{Page: 2, Limit: 1, Status: "partial"})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, 2, page.Meta.CurrentPage)
	assert.LessOrEqual(t, len(page.Data), 1)
	assert.Equal(t, "9.255", page.Data[0].TotalEarnings.String())
	require.Len(t, overview, 1)
	assert.Equal(t, int64(3), overview[0].Count)
}

func TestClient_ValidationErrorCarriesFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, dto.Response{
			Message: "Validation failed",
			Errors:  []dto.FieldError{{Field: "baseAmount", Message: "must be greater than 0"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, NewSession(""))
	_, err := c.CreateTransaction(context.Background(), dto.TransactionRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Validation failed", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "baseAmount must be greater than 0")
}
