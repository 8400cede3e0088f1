package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmbookAdmin/internal/config"
	"dmbookAdmin/internal/docstore"
)

const fixture = `{
	"App": {
		"Estate": {
			"Hottel": {
				"E1": {"IDUser": "U1", "IsAccepted": "1", "NameEn": "Hotel X"}
			}
		},
		"User": {
			"U1": {"Email": "a@b.com", "FirstName": "Sara", "TypeUser": "2"}
		},
		"AllPosts": {
			"P1": {"Status": "1", "Text": "hello"}
		}
	}
}`

func newTestApp(t *testing.T) (http.Handler, *docstore.Memory) {
	t.Helper()
	mem := docstore.NewMemory()
	require.NoError(t, mem.Load(strings.NewReader(fixture)))

	cfg := config.Default()
	cfg.Store.Driver = config.DriverMemory
	logger := zerolog.Nop()

	app := initializeApp(mem, nil, cfg, &logger)
	return app.routes(), mem
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAcceptEstateThenListProviders(t *testing.T) {
	h, _ := newTestApp(t)

	rr := serve(h, http.MethodGet, "/providers", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = serve(h, http.MethodPut, "/update-isaccepted/Hottel/E1", `{"IsAccepted":2}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"message":"Estate has been accepted.","IsAccepted":"2"}`, rr.Body.String())

	rr = serve(h, http.MethodGet, "/providers", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "E1", listed[0]["id"])
	assert.Equal(t, "Hotel X", listed[0]["companyName"])
	assert.Equal(t, "a@b.com", listed[0]["email"])
	assert.Equal(t, "No Phone", listed[0]["phone"])
	assert.Equal(t, "Unknown City", listed[0]["city"])
}

func TestRejectEstateRemovesIt(t *testing.T) {
	h, mem := newTestApp(t)

	rr := serve(h, http.MethodPut, "/update-isaccepted/Hottel/E1", `{"IsAccepted":"3"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	snap, err := mem.Read(t.Context(), "App/Estate/Hottel/E1")
	require.NoError(t, err)
	assert.False(t, snap.Exists())

	rr = serve(h, http.MethodGet, "/estate-with-owner/E1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPostStatusFlow(t *testing.T) {
	h, _ := newTestApp(t)

	rr := serve(h, http.MethodPatch, "/posts/P1/status", `{"status":"2"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = serve(h, http.MethodGet, "/posts/P1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Status":"2","Text":"hello"}`, rr.Body.String())

	rr = serve(h, http.MethodPatch, "/posts/P1/status", `{"status":"5"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(h, http.MethodGet, "/posts/P9", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Post not found."}`, rr.Body.String())
}

func TestResponsesCarryStandardHeaders(t *testing.T) {
	h, _ := newTestApp(t)

	rr := serve(h, http.MethodGet, "/allusers", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "deny", rr.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/allusers", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestApp(t)

	rr := serve(h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Route not found"}`, rr.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/posts/P1/status", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/allusers", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverPanic(t *testing.T) {
	logger := zerolog.Nop()
	app := &application{log: &logger}
	h := app.logRequest(app.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "close", rr.Header().Get("Connection"))
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
}
