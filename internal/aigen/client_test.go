package aigen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPicksVariant(t *testing.T) {
	assert.IsType(t, Unavailable{}, New("", "key", 0))
	assert.IsType(t, &HTTPGenerator{}, New("https://gen.example.com/v1/text", "key", 0))
}

func TestUnavailableGenerator(t *testing.T) {
	_, err := Unavailable{}.GenerateAppeal(context.Background(), "EMPTY_BOX", "114-9283-001")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPGeneratorMissingCredential(t *testing.T) {
	g := NewHTTPGenerator("https://gen.example.com/v1/text", "", time.Second)

	_, err := g.GenerateAppeal(context.Background(), "EMPTY_BOX", "114-9283-001")
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestHTTPGeneratorSuccess(t *testing.T) {
	var gotAuth string
	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(generateResponse{Text: "Dear SAFE-T team, ..."})
	}))
	defer srv.Close()

	g := NewHTTPGenerator(srv.URL, "secret-key", time.Second)
	text, err := g.GenerateAppeal(context.Background(), "EMPTY_BOX", "114-9283-001")

	require.NoError(t, err)
	assert.Equal(t, "Dear SAFE-T team, ...", text)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Contains(t, gotReq.Prompt, "114-9283-001")
	assert.Contains(t, gotReq.Prompt, "EMPTY_BOX")
}

func TestHTTPGeneratorUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewHTTPGenerator(srv.URL, "secret-key", time.Second)
	_, err := g.GenerateAppeal(context.Background(), "DAMAGED", "114-9283-001")

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, http.StatusServiceUnavailable, callErr.StatusCode)
	assert.Contains(t, callErr.Message, "model overloaded")
}

func TestHTTPGeneratorEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer srv.Close()

	g := NewHTTPGenerator(srv.URL, "secret-key", time.Second)
	_, err := g.GenerateAppeal(context.Background(), "SWITCHED", "114-9283-001")

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Contains(t, callErr.Message, "empty generation result")
}

func TestHTTPGeneratorTransportFailure(t *testing.T) {
	// Closed server: the dial fails, and the failure comes back as a
	// CallError value, never a panic.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	g := NewHTTPGenerator(srv.URL, "secret-key", time.Second)
	_, err := g.GenerateAppeal(context.Background(), "EMPTY_BOX", "114-9283-001")

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Zero(t, callErr.StatusCode)
}
