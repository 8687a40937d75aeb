package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/feed"
)

func testView() *feed.View {
	return feed.NewView(
		[]feed.Stop{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		nil,
		[]feed.Trip{{ID: "t1"}},
		[]feed.StopTime{
			{TripID: "t1", StopID: "A", StopSequence: 1, ArrivalTime: 100, DepartureTime: 100},
			{TripID: "t1", StopID: "B", StopSequence: 2, ArrivalTime: 200, DepartureTime: 200},
			{TripID: "t1", StopID: "C", StopSequence: 3, ArrivalTime: 300, DepartureTime: 300},
		},
		nil, nil,
	)
}

func TestHealthEndpoint(t *testing.T) {
	r := NewRouter(testView(), nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestRouteEndpointFindsJourney(t *testing.T) {
	r := NewRouter(testView(), nil)
	req := httptest.NewRequest(http.MethodGet, "/route?from=A&to=C&depart=00:00:00", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp routeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Legs, 1)
	assert.Equal(t, "transit", resp.Legs[0].Mode)
	assert.Equal(t, "t1", resp.Legs[0].TripID)
}

func TestRouteEndpointGeoJSON(t *testing.T) {
	r := NewRouter(testView(), nil)
	req := httptest.NewRequest(http.MethodGet, "/route?from=A&to=C&depart=00:00:00&format=geojson", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "transit", fc.Features[0].Properties["mode"])
}

func TestRouteEndpointUnknownStop(t *testing.T) {
	r := NewRouter(testView(), nil)
	req := httptest.NewRequest(http.MethodGet, "/route?from=A&to=nope&depart=00:00:00", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouteEndpointMissingParams(t *testing.T) {
	r := NewRouter(testView(), nil)
	req := httptest.NewRequest(http.MethodGet, "/route", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
