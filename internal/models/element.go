package models

import "fmt"

// ElementType is the OSM primitive an Overpass element was read from.
type ElementType string

const (
	ElementTypeNode     ElementType = "node"
	ElementTypeWay      ElementType = "way"
	ElementTypeRelation ElementType = "relation"
)

// Coordinates is a WGS84 position as Overpass reports it.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is one bicycle parking entry from an Overpass "out center" response.
// Nodes carry Lat/Lon directly; ways and relations carry Center instead.
type Element struct {
	Type   ElementType  `json:"type"`
	ID     int64        `json:"id"`
	Lat    *float64     `json:"lat,omitempty"`
	Lon    *float64     `json:"lon,omitempty"`
	Center *Coordinates `json:"center,omitempty"`
	Tags   Tags         `json:"tags,omitempty"`
}

// Ref is the "type/id" pair used in OSM editor URLs.
func (e Element) Ref() string {
	return fmt.Sprintf("%s/%d", e.Type, e.ID)
}

// Tags holds the free-form OSM tags of an element. A missing key and an empty
// value both mean "not specified".
type Tags map[string]string

// Get returns the tag value, or "" when the tag is absent.
func (t Tags) Get(key string) string {
	return t[key]
}

// Has reports whether the tag is present with a non-empty value.
func (t Tags) Has(key string) bool {
	return t[key] != ""
}

// Lookup returns the tag value and whether the key was present at all.
func (t Tags) Lookup(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}
