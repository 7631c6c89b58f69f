package models

import "time"

// CollectionPublished announces a freshly written GeoJSON collection to
// downstream consumers (tile builders, cache purgers).
type CollectionPublished struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	AreaID      int64     `json:"area_id"`
	Features    int       `json:"features"`
	Hubs        int       `json:"hubs"`
	OutputPath  string    `json:"output_path"`
	Bucket      string    `json:"bucket,omitempty"`
	Key         string    `json:"key,omitempty"`
	LatestKey   string    `json:"latest_key,omitempty"`
}
