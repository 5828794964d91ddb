// Package geo implements the great-circle math behind the "stores near me"
// query: distance between two points, the bounding box used to prefilter
// candidates in the database, and the exact nearest-first stage applied to
// those candidates.
package geo

import (
	"errors"
	"math"
	"sort"
)

// EarthRadius is the sphere radius, in meters, used for all distances.
const EarthRadius = 6378100.0

var ErrInvalidPoint = errors.New("coordinates must be a valid longitude and latitude")

// Point is a position in degrees.
type Point struct {
	Lng float64
	Lat float64
}

func (p Point) Validate() error {
	if math.IsNaN(p.Lng) || math.IsNaN(p.Lat) || math.IsInf(p.Lng, 0) || math.IsInf(p.Lat, 0) {
		return ErrInvalidPoint
	}
	if p.Lng < -180 || p.Lng > 180 || p.Lat < -90 || p.Lat > 90 {
		return ErrInvalidPoint
	}
	return nil
}

// Distance returns the haversine distance between a and b in meters.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := lat2 - lat1
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadius * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Box is a lat/lng rectangle. When MinLng > MaxLng the box crosses the
// antimeridian and covers lng >= MinLng or lng <= MaxLng.
type Box struct {
	MinLng float64
	MaxLng float64
	MinLat float64
	MaxLat float64
}

func (b Box) WrapsAntimeridian() bool {
	return b.MinLng > b.MaxLng
}

func (b Box) Contains(p Point) bool {
	if p.Lat < b.MinLat || p.Lat > b.MaxLat {
		return false
	}
	if b.WrapsAntimeridian() {
		return p.Lng >= b.MinLng || p.Lng <= b.MaxLng
	}
	return p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// BoundingBox returns a box that contains every point within radius meters
// of center. The box is padded slightly so rounding never drops a point the
// exact distance filter would keep.
func BoundingBox(center Point, radius float64) Box {
	angular := radius * 1.001 / EarthRadius
	lat := radians(center.Lat)

	minLat := lat - angular
	maxLat := lat + angular

	if minLat <= -math.Pi/2 || maxLat >= math.Pi/2 {
		return Box{
			MinLng: -180,
			MaxLng: 180,
			MinLat: math.Max(degrees(minLat), -90),
			MaxLat: math.Min(degrees(maxLat), 90),
		}
	}

	dLng := degrees(math.Asin(math.Sin(angular) / math.Cos(lat)))
	minLng := center.Lng - dLng
	maxLng := center.Lng + dLng

	if dLng >= 180 {
		minLng, maxLng = -180, 180
	} else {
		if minLng < -180 {
			minLng += 360
		}
		if maxLng > 180 {
			maxLng -= 360
		}
	}

	return Box{
		MinLng: minLng,
		MaxLng: maxLng,
		MinLat: degrees(minLat),
		MaxLat: degrees(maxLat),
	}
}

type Ranked[T any] struct {
	Item     T
	Distance float64
}

// Nearest keeps the items within maxDistance meters of center, orders them
// nearest first and returns at most limit of them. Items at the same
// distance keep their input order.
func Nearest[T any](center Point, items []T, pointOf func(T) Point, maxDistance float64, limit int) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(items))
	for _, item := range items {
		d := Distance(center, pointOf(item))
		if d <= maxDistance {
			ranked = append(ranked, Ranked[T]{Item: item, Distance: d})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
