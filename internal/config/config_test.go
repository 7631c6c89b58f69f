package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputPath, cfg.Output.Path)
	assert.True(t, cfg.Editor.IncludeLink)
	assert.Equal(t, DefaultMapLayerReference, cfg.Editor.MapLayerReference)
	assert.Equal(t, DefaultEditorBaseURL, cfg.Editor.BaseURL)
	assert.Equal(t, int64(DefaultQueryAreaID), cfg.Overpass.AreaID)
	assert.Equal(t, DefaultOverpassURL, cfg.Overpass.URL)
	assert.Equal(t, DefaultPanoramaxURL, cfg.Panoramax.URL)
	assert.False(t, cfg.Minio.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INCLUDE_EDITOR_LINK", "false")
	t.Setenv("QUERY_AREA_ID", "3600062149")
	t.Setenv("OUTPUT_PATH", "/tmp/parking.geojson")
	t.Setenv("KAFKA_BROKER", "localhost:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Editor.IncludeLink)
	assert.Equal(t, int64(3600062149), cfg.Overpass.AreaID)
	assert.Equal(t, "/tmp/parking.geojson", cfg.Output.Path)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, "cycle-parking.published", cfg.Kafka.Topic)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "non-positive area", env: map[string]string{"QUERY_AREA_ID": "0"}},
		{name: "minio without credentials", env: map[string]string{"MINIO_ENDPOINT": "localhost:9000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
