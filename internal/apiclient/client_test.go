package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nfrund/storefront/internal/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON_Success(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/users/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-123", r.Header.Get(apiclient.HeaderRequestID))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		http.SetCookie(w, &http.Cookie{Name: "sessionId", Value: "abc"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"message":"successfully login"},"errors":null}`))
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL + "/")
	ctx := apiclient.WithRequestID(context.Background(), "req-123")
	resp, err := client.PostJSON(ctx, "/api/v1/users/login", map[string]string{"email": "a@b.c", "password": "pw"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data":{"message":"successfully login"},"errors":null}`, string(resp.Body))
	assert.Contains(t, resp.Header.Values("Set-Cookie")[0], "sessionId=abc")
	assert.Equal(t, map[string]string{"email": "a@b.c", "password": "pw"}, got)
}

func TestPostJSON_GeneratesRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get(apiclient.HeaderRequestID))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := apiclient.New(srv.URL).PostJSON(context.Background(), "/x", struct{}{})
	require.NoError(t, err)
}

func TestPostJSON_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"data":null,"errors":[{"field":"email","message":"invalid"}]}`))
	}))
	defer srv.Close()

	resp, err := apiclient.New(srv.URL).PostJSON(context.Background(), "/api/v1/users/login", struct{}{})
	assert.Nil(t, resp)

	var statusErr *apiclient.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Response.StatusCode)
	assert.Contains(t, string(statusErr.Response.Body), `"field":"email"`)
	assert.Contains(t, err.Error(), "status 400")
}

func TestPostJSON_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := apiclient.New(url).PostJSON(context.Background(), "/api/v1/users/login", struct{}{})
	require.Error(t, err)

	var statusErr *apiclient.StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestPostJSON_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, apiclient.WithTimeout(20*time.Millisecond))
	_, err := client.PostJSON(context.Background(), "/slow", struct{}{})
	assert.Error(t, err)
}
