package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antigravity/transit-raptor/feed"
	"github.com/antigravity/transit-raptor/geometry"
	"github.com/antigravity/transit-raptor/raptor"
)

// Handler holds the feed view the search reads from. A Handler is safe
// for concurrent requests: the view is read-only and every request gets
// its own label store. DB is the pool backing View when it came from
// feed.LoadPostgres; Health pings it when present, mirroring the
// teacher's own pool-ping /health. It is nil for a directory- or
// zip-backed feed.
type Handler struct {
	View *feed.View
	DB   *pgxpool.Pool
}

// Health reports liveness, and pings the database when the feed is
// Postgres-backed.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if h.DB == nil {
		w.Write([]byte(`{"status":"ok"}`))
		return
	}
	if err := h.DB.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":"error","db":"disconnected"}`))
		return
	}
	w.Write([]byte(`{"status":"ok","db":"connected"}`))
}

type routeResponse struct {
	Warning string        `json:"warning,omitempty"`
	Legs    []legResponse `json:"legs"`
}

type legResponse struct {
	Mode       string  `json:"mode"`
	FromStopID string  `json:"from_stop_id"`
	ToStopID   string  `json:"to_stop_id"`
	TripID     string  `json:"trip_id,omitempty"`
	BoardTime  float64 `json:"board_time,omitempty"`
	AlightTime float64 `json:"alight_time,omitempty"`
}

// Route answers GET /route?from=...&to=...&depart=...&transfers=...
// depart is an HH:MM:SS time of day, from service-day midnight, the same
// convention raptorcli route's --depart flag uses.
func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	to := q.Get("to")
	if from == "" || to == "" {
		http.Error(w, "missing from/to stop id", http.StatusBadRequest)
		return
	}

	depTime, err := feed.ParseGTFSTime(q.Get("depart"))
	if err != nil {
		http.Error(w, "invalid depart time, expected HH:MM:SS", http.StatusBadRequest)
		return
	}

	maxTransfers := 4
	if v := q.Get("transfers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid transfers bound", http.StatusBadRequest)
			return
		}
		maxTransfers = n
	}

	res, err := raptor.Search(r.Context(), h.View, from, to, depTime, maxTransfers)
	if err != nil {
		if errors.Is(err, raptor.ErrUnknownStop) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var journey *raptor.Journey
	if res.Reached(to) {
		journey, err = raptor.Reconstruct(h.View, res.Store, to)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	if q.Get("format") == "geojson" {
		h.writeGeoJSON(w, journey)
		return
	}

	resp := routeResponse{Warning: res.Warning}
	if journey != nil {
		for _, leg := range journey.Legs {
			resp.Legs = append(resp.Legs, legResponse{
				Mode:       leg.Mode.String(),
				FromStopID: leg.FromStopID,
				ToStopID:   leg.ToStopID,
				TripID:     leg.TripID,
				BoardTime:  leg.BoardTime,
				AlightTime: leg.AlightTime,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// writeGeoJSON answers format=geojson by encoding every leg's polyline as
// a FeatureCollection, one LineString feature per leg.
func (h *Handler) writeGeoJSON(w http.ResponseWriter, journey *raptor.Journey) {
	var legs [][]geometry.Point
	var modes, tripIDs []string
	if journey != nil {
		for _, leg := range journey.Legs {
			pts := make([]geometry.Point, len(leg.Geometry))
			for i, c := range leg.Geometry {
				pts[i] = geometry.Point(c)
			}
			legs = append(legs, pts)
			modes = append(modes, leg.Mode.String())
			tripIDs = append(tripIDs, leg.TripID)
		}
	}

	body, err := geometry.MarshalJourney(legs, modes, tripIDs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(body)
}
