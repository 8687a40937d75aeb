package geometry

import (
	geojson "github.com/paulmach/go.geojson"
)

// Feature encodes a leg's polyline as a GeoJSON LineString feature, with
// mode and trip_id carried as properties for downstream consumers (maps,
// debugging tools).
func Feature(points []Point, mode string, tripID string) *geojson.Feature {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p[0], p[1]}
	}

	f := geojson.NewFeature(geojson.NewLineStringGeometry(coords))
	f.SetProperty("mode", mode)
	if tripID != "" {
		f.SetProperty("trip_id", tripID)
	}
	return f
}

// MarshalJourney encodes every leg's geometry as a GeoJSON FeatureCollection.
func MarshalJourney(legs [][]Point, modes []string, tripIDs []string) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for i, pts := range legs {
		fc.AddFeature(Feature(pts, modes[i], tripIDs[i]))
	}
	return fc.MarshalJSON()
}
