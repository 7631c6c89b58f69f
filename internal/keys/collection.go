package keys

import (
	"fmt"
	"strings"
	"time"
)

const dataset = "cycle_parking"

// sanitizeKey replaces spaces with hyphens, lowercases the string and trims
// surrounding slashes so keys never start with an empty segment.
func sanitizeKey(s string) string {
	return strings.Trim(strings.ToLower(strings.ReplaceAll(s, " ", "-")), "/")
}

// Collection returns the object key for one run's GeoJSON output.
func Collection(prefix string, at time.Time, runID string) string {
	return join(prefix, fmt.Sprintf("%s/%s/%s.geojson", dataset, at.UTC().Format("2006-01-02"), sanitizeKey(runID)))
}

// Latest returns the stable key that always holds the most recent output.
func Latest(prefix string) string {
	return join(prefix, dataset+"/latest.geojson")
}

func join(prefix, rest string) string {
	if p := sanitizeKey(prefix); p != "" {
		return p + "/" + rest
	}
	return rest
}
