// Package geo resolves the single point used to place an element on the map.
package geo

import (
	"errors"
	"fmt"

	"cycleparking/internal/models"

	"github.com/paulmach/orb"
)

// ErrNoPosition is returned when an element has neither a center nor its own
// coordinates. Overpass "out center" always provides one of the two, so this
// is a broken upstream contract rather than a recoverable case.
var ErrNoPosition = errors.New("element has no position")

// Position returns the element's location as an orb.Point, which is ordered
// [lon, lat]. The center wins when present.
func Position(e models.Element) (orb.Point, error) {
	if e.Center != nil {
		return orb.Point{e.Center.Lon, e.Center.Lat}, nil
	}
	if e.Lat != nil && e.Lon != nil {
		return orb.Point{*e.Lon, *e.Lat}, nil
	}
	return orb.Point{}, fmt.Errorf("%s: %w", e.Ref(), ErrNoPosition)
}
