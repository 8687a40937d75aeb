package feed

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadPostgres reads a GTFS feed staged in a Postgres/PostGIS database and
// returns a validated View. The schema is expected to mirror the standard
// GTFS tables column-for-column, with stops.location a PostGIS geography
// point extracted via ST_X/ST_Y.
func LoadPostgres(ctx context.Context, db *pgxpool.Pool) (*View, error) {
	log.Println("loading GTFS feed from database...")
	start := time.Now()

	stops, err := loadStops(ctx, db)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d stops", len(stops))

	routes, err := loadRoutes(ctx, db)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d routes", len(routes))

	trips, err := loadTrips(ctx, db)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d trips", len(trips))

	stopTimes, err := loadStopTimes(ctx, db)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d stop_times", len(stopTimes))

	transfers, err := loadTransfers(ctx, db)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d transfers", len(transfers))

	view := NewView(stops, routes, trips, stopTimes, transfers, nil)
	if err := Validate(view); err != nil {
		return nil, err
	}

	log.Printf("GTFS feed load complete in %s", time.Since(start))
	return view, nil
}

func loadStops(ctx context.Context, db *pgxpool.Pool) ([]Stop, error) {
	rows, err := db.Query(ctx, `SELECT stop_id, stop_name, ST_Y(location::geometry), ST_X(location::geometry) FROM stops`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Stop
	for rows.Next() {
		var s Stop
		if err := rows.Scan(&s.ID, &s.Name, &s.Lat, &s.Lon); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func loadRoutes(ctx context.Context, db *pgxpool.Pool) ([]Route, error) {
	rows, err := db.Query(ctx, `SELECT route_id, route_short_name, route_long_name, COALESCE(route_color, '') FROM routes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.ID, &r.ShortName, &r.LongName, &r.Color); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func loadTrips(ctx context.Context, db *pgxpool.Pool) ([]Trip, error) {
	rows, err := db.Query(ctx, `SELECT trip_id, route_id, COALESCE(shape_id, '') FROM trips`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trip
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.RouteID, &t.ShapeID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func loadStopTimes(ctx context.Context, db *pgxpool.Pool) ([]StopTime, error) {
	rows, err := db.Query(ctx, `
		SELECT trip_id, stop_id, stop_sequence,
		       EXTRACT(EPOCH FROM arrival_time), EXTRACT(EPOCH FROM departure_time),
		       shape_dist_traveled
		FROM stop_times
		ORDER BY trip_id, stop_sequence
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StopTime
	for rows.Next() {
		var st StopTime
		var dist *float64
		if err := rows.Scan(&st.TripID, &st.StopID, &st.StopSequence, &st.ArrivalTime, &st.DepartureTime, &dist); err != nil {
			return nil, err
		}
		if dist != nil {
			st.ShapeDistTraveled = *dist
			st.HasShapeDist = true
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func loadTransfers(ctx context.Context, db *pgxpool.Pool) ([]Transfer, error) {
	rows, err := db.Query(ctx, `
		SELECT from_stop_id, to_stop_id, transfer_type, COALESCE(min_transfer_time, 0)
		FROM transfers
		WHERE transfer_type = 2
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transfer
	for rows.Next() {
		var t Transfer
		var kind int
		if err := rows.Scan(&t.FromStopID, &t.ToStopID, &kind, &t.MinTransferTime); err != nil {
			return nil, err
		}
		t.Kind = TransferKind(kind)
		out = append(out, t)
	}
	return out, rows.Err()
}
