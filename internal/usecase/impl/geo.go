// Package impl contains the implementations of the use case interfaces.
package impl

import (
	"math"

	"convoytrack/internal/domain/entity"

	"github.com/paulmach/orb/geo"
)

const earthRadiusKm = 6371.0

// distanceKm returns the great-circle distance between two coordinates in
// kilometers, using the haversine formula. Callers validate that both
// positions are actually known before calling; absent coordinates never
// reach this function.
func distanceKm(a, b entity.Coordinate) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// bearingDeg returns the initial bearing from a to b in compass degrees,
// normalized to [0, 360).
func bearingDeg(a, b entity.Coordinate) float64 {
	deg := geo.Bearing(a.Point(), b.Point())
	if deg < 0 {
		deg += 360
	}

	return deg
}
