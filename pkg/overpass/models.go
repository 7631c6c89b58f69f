package overpass

import "cycleparking/internal/models"

// Response is the top-level Overpass JSON document. Only the fields the tool
// reads are modelled.
type Response struct {
	Version   float64          `json:"version"`
	Generator string           `json:"generator"`
	OSM3S     OSM3S            `json:"osm3s"`
	Elements  []models.Element `json:"elements"`
}

// OSM3S carries the data timestamp of the Overpass instance.
type OSM3S struct {
	TimestampOSMBase string `json:"timestamp_osm_base"`
	Copyright        string `json:"copyright"`
}
