package feed

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// The row types below mirror the GTFS tabular form byte-for-byte: one
// struct per file, `csv` tags matching the standard column names. This
// is the "feed expressed in the standard GTFS tabular form" loader (§6):
// a plain directory of stops.txt/routes.txt/trips.txt/stop_times.txt/
// transfers.txt/shapes.txt, read with gocsv the way a tabular-GTFS
// ingestion pipeline normally would.

type stopRow struct {
	ID   string  `csv:"stop_id"`
	Name string  `csv:"stop_name"`
	Lat  float64 `csv:"stop_lat"`
	Lon  float64 `csv:"stop_lon"`
}

type routeRow struct {
	ID        string `csv:"route_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Color     string `csv:"route_color"`
}

type tripRow struct {
	ID      string `csv:"trip_id"`
	RouteID string `csv:"route_id"`
	ShapeID string `csv:"shape_id"`
}

type stopTimeRow struct {
	TripID            string `csv:"trip_id"`
	StopID            string `csv:"stop_id"`
	StopSequence      int    `csv:"stop_sequence"`
	ArrivalTime       string `csv:"arrival_time"`
	DepartureTime     string `csv:"departure_time"`
	ShapeDistTraveled string `csv:"shape_dist_traveled"`
}

type transferRow struct {
	FromStopID      string  `csv:"from_stop_id"`
	ToStopID        string  `csv:"to_stop_id"`
	TransferType    int     `csv:"transfer_type"`
	MinTransferTime float64 `csv:"min_transfer_time"`
}

type shapeRow struct {
	ShapeID           string  `csv:"shape_id"`
	Lat               float64 `csv:"shape_pt_lat"`
	Lon               float64 `csv:"shape_pt_lon"`
	Sequence          int     `csv:"shape_pt_sequence"`
	ShapeDistTraveled string  `csv:"shape_dist_traveled"`
}

// LoadDirectory reads a GTFS feed laid out as a plain directory of the
// standard *.txt tables and returns a validated View. shapes.txt and the
// shape_dist_traveled column are optional; when absent, callers fall
// back to straight-line leg geometry (spec §4.6/§6).
func LoadDirectory(dir string) (*View, error) {
	stops, err := readTable[stopRow](dir, "stops.txt", true)
	if err != nil {
		return nil, err
	}
	routes, err := readTable[routeRow](dir, "routes.txt", true)
	if err != nil {
		return nil, err
	}
	trips, err := readTable[tripRow](dir, "trips.txt", true)
	if err != nil {
		return nil, err
	}
	stopTimes, err := readTable[stopTimeRow](dir, "stop_times.txt", true)
	if err != nil {
		return nil, err
	}
	transfers, err := readTable[transferRow](dir, "transfers.txt", false)
	if err != nil {
		return nil, err
	}
	shapes, err := readTable[shapeRow](dir, "shapes.txt", false)
	if err != nil {
		return nil, err
	}

	feedStops := make([]Stop, len(stops))
	for i, r := range stops {
		feedStops[i] = Stop{ID: r.ID, Name: r.Name, Lat: r.Lat, Lon: r.Lon}
	}

	feedRoutes := make([]Route, len(routes))
	for i, r := range routes {
		feedRoutes[i] = Route{ID: r.ID, ShortName: r.ShortName, LongName: r.LongName, Color: r.Color}
	}

	feedTrips := make([]Trip, len(trips))
	for i, r := range trips {
		feedTrips[i] = Trip{ID: r.ID, RouteID: r.RouteID, ShapeID: r.ShapeID}
	}

	feedStopTimes := make([]StopTime, len(stopTimes))
	for i, r := range stopTimes {
		arr, err := ParseGTFSTime(r.ArrivalTime)
		if err != nil {
			return nil, invariantf("stop_times.txt trip %q: %v", r.TripID, err)
		}
		dep, err := ParseGTFSTime(r.DepartureTime)
		if err != nil {
			return nil, invariantf("stop_times.txt trip %q: %v", r.TripID, err)
		}
		dist, hasDist := parseOptionalFloat(r.ShapeDistTraveled)
		feedStopTimes[i] = StopTime{
			TripID:            r.TripID,
			StopID:            r.StopID,
			StopSequence:      r.StopSequence,
			ArrivalTime:       arr,
			DepartureTime:     dep,
			ShapeDistTraveled: dist,
			HasShapeDist:      hasDist,
		}
	}

	feedTransfers := make([]Transfer, len(transfers))
	for i, r := range transfers {
		feedTransfers[i] = Transfer{
			FromStopID:      r.FromStopID,
			ToStopID:        r.ToStopID,
			Kind:            TransferKind(r.TransferType),
			MinTransferTime: r.MinTransferTime,
		}
	}

	byShape := make(map[string][]shapeRow)
	for _, r := range shapes {
		byShape[r.ShapeID] = append(byShape[r.ShapeID], r)
	}
	feedShapes := make([]Shape, 0, len(byShape))
	for id, rows := range byShape {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Sequence < rows[j].Sequence })
		points := make([]ShapePoint, len(rows))
		for i, r := range rows {
			dist, hasDist := parseOptionalFloat(r.ShapeDistTraveled)
			points[i] = ShapePoint{Lat: r.Lat, Lon: r.Lon, DistTraveled: dist, HasDist: hasDist}
		}
		feedShapes = append(feedShapes, Shape{ID: id, Points: points})
	}

	view := NewView(feedStops, feedRoutes, feedTrips, feedStopTimes, feedTransfers, feedShapes)
	if err := Validate(view); err != nil {
		return nil, err
	}
	return view, nil
}

// readTable unmarshals a single GTFS table file with gocsv. When
// required is false and the file does not exist, it returns an empty
// slice rather than an error — stop_times.txt always exists but
// transfers.txt and shapes.txt are optional per spec §6.
func readTable[T any](dir, name string, required bool) ([]T, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil, nil
		}
		return nil, invariantf("opening %s: %v", name, err)
	}
	defer f.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, invariantf("parsing %s: %v", name, err)
	}
	return rows, nil
}

// ParseGTFSTime parses an HH:MM:SS GTFS time-of-day string (hours may
// exceed 23 for service past midnight) into seconds since service-day
// midnight.
func ParseGTFSTime(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid GTFS time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid GTFS time %q: %v", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid GTFS time %q: %v", s, err)
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid GTFS time %q: %v", s, err)
	}
	return float64(h*3600+m*60) + sec, nil
}

func parseOptionalFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
