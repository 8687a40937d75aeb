package feed

import (
	"sort"

	"github.com/patrickbr/gtfsparser"
)

// LoadZip reads a standard GTFS zip archive with gtfsparser and returns a
// validated View. Only stop_times belonging to a trip present in the
// parsed feed's Trips map are considered, matching gtfsparser's own
// filtering of trips against active services.
func LoadZip(path string) (*View, error) {
	f := gtfsparser.NewFeed()
	if err := f.Parse(path); err != nil {
		return nil, invariantf("parsing %s: %v", path, err)
	}

	stops := make([]Stop, 0, len(f.Stops))
	for id, s := range f.Stops {
		stops = append(stops, Stop{ID: id, Name: s.Name, Lat: float64(s.Lat), Lon: float64(s.Lon)})
	}

	routes := make([]Route, 0, len(f.Routes))
	for id, r := range f.Routes {
		routes = append(routes, Route{ID: id, ShortName: r.Short_name, LongName: r.Long_name, Color: r.Color})
	}

	trips := make([]Trip, 0, len(f.Trips))
	var stopTimes []StopTime
	for id, t := range f.Trips {
		shapeID := ""
		if t.Shape != nil {
			shapeID = t.Shape.Id
		}
		routeID := ""
		if t.Route != nil {
			routeID = t.Route.Id
		}
		trips = append(trips, Trip{ID: id, RouteID: routeID, ShapeID: shapeID})

		for _, s := range t.StopTimes {
			dist, hasDist := 0.0, false
			if s.HasDistanceTraveled() {
				dist, hasDist = float64(s.Shape_dist_traveled()), true
			}
			stopTimes = append(stopTimes, StopTime{
				TripID:            id,
				StopID:            s.Stop().Id,
				StopSequence:      int(s.Sequence()),
				ArrivalTime:       float64(s.Arrival_time().SecondsSinceMidnight()),
				DepartureTime:     float64(s.Departure_time().SecondsSinceMidnight()),
				ShapeDistTraveled: dist,
				HasShapeDist:      hasDist,
			})
		}
	}

	transfers := make([]Transfer, 0, len(f.Transfers))
	for key, tr := range f.Transfers {
		transfers = append(transfers, Transfer{
			FromStopID:      key.From_stop.Id,
			ToStopID:        key.To_stop.Id,
			Kind:            TransferKind(tr.Transfer_type),
			MinTransferTime: float64(tr.Min_transfer_time),
		})
	}

	shapes := make([]Shape, 0, len(f.Shapes))
	for id, s := range f.Shapes {
		points := make([]ShapePoint, len(s.Points))
		for i, p := range s.Points {
			dist, hasDist := 0.0, false
			if p.HasDistanceTraveled() {
				dist, hasDist = float64(p.Dist_traveled), true
			}
			points[i] = ShapePoint{Lat: float64(p.Lat), Lon: float64(p.Lon), DistTraveled: dist, HasDist: hasDist}
		}
		shapes = append(shapes, Shape{ID: id, Points: points})
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].ID < shapes[j].ID })

	view := NewView(stops, routes, trips, stopTimes, transfers, shapes)
	if err := Validate(view); err != nil {
		return nil, err
	}
	return view, nil
}
