package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultMapLayerReference = "https://studio.mapcomplete.org/12363857/layers/sheffield_cycle_parking/sheffield_cycle_parking.json"
	DefaultEditorBaseURL     = "https://mapcomplete.org/theme.html"
	DefaultOverpassURL       = "https://overpass-api.de/api/interpreter"
	DefaultPanoramaxURL      = "https://api.panoramax.xyz/api/search"
	DefaultOutputPath        = "./out.geojson"
	DefaultUserAgent         = "cycle-parking-geojson/1.0"
)

// DefaultQueryAreaID is the Overpass area for Sheffield.
const DefaultQueryAreaID int64 = 3600106956

type Config struct {
	Output    OutputConfig
	Editor    EditorConfig
	Overpass  OverpassConfig
	Panoramax PanoramaxConfig
	Minio     MinioConfig
	Kafka     KafkaConfig
	Log       LogConfig
	UserAgent string
}

type OutputConfig struct {
	Path string
}

type EditorConfig struct {
	IncludeLink       bool
	BaseURL           string
	MapLayerReference string
}

type OverpassConfig struct {
	URL    string
	AreaID int64
}

type PanoramaxConfig struct {
	URL string
}

// MinioConfig is optional. Publishing to object storage is skipped when
// Endpoint is empty.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Prefix    string
}

func (c MinioConfig) Enabled() bool {
	return c.Endpoint != ""
}

// KafkaConfig is optional. The publish notification is skipped when Broker is
// empty.
type KafkaConfig struct {
	Broker string
	Topic  string
}

func (c KafkaConfig) Enabled() bool {
	return c.Broker != ""
}

type LogConfig struct {
	Level string
}

// Load builds the configuration from the process environment. Every key has a
// default, so an empty environment reproduces the stock Sheffield run.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("OUTPUT_PATH", DefaultOutputPath)
	v.SetDefault("INCLUDE_EDITOR_LINK", true)
	v.SetDefault("EDITOR_BASE_URL", DefaultEditorBaseURL)
	v.SetDefault("MAP_LAYER_REFERENCE", DefaultMapLayerReference)
	v.SetDefault("OVERPASS_URL", DefaultOverpassURL)
	v.SetDefault("QUERY_AREA_ID", DefaultQueryAreaID)
	v.SetDefault("PANORAMAX_URL", DefaultPanoramaxURL)
	v.SetDefault("USER_AGENT", DefaultUserAgent)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MINIO_BUCKET", "cycle-parking")
	v.SetDefault("MINIO_PREFIX", "geojson")
	v.SetDefault("KAFKA_TOPIC", "cycle-parking.published")

	cfg := &Config{
		Output: OutputConfig{
			Path: v.GetString("OUTPUT_PATH"),
		},
		Editor: EditorConfig{
			IncludeLink:       v.GetBool("INCLUDE_EDITOR_LINK"),
			BaseURL:           v.GetString("EDITOR_BASE_URL"),
			MapLayerReference: v.GetString("MAP_LAYER_REFERENCE"),
		},
		Overpass: OverpassConfig{
			URL:    v.GetString("OVERPASS_URL"),
			AreaID: v.GetInt64("QUERY_AREA_ID"),
		},
		Panoramax: PanoramaxConfig{
			URL: v.GetString("PANORAMAX_URL"),
		},
		Minio: MinioConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			Prefix:    v.GetString("MINIO_PREFIX"),
		},
		Kafka: KafkaConfig{
			Broker: v.GetString("KAFKA_BROKER"),
			Topic:  v.GetString("KAFKA_TOPIC"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		UserAgent: v.GetString("USER_AGENT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Output.Path == "" {
		return fmt.Errorf("OUTPUT_PATH must not be empty")
	}
	if c.Overpass.AreaID <= 0 {
		return fmt.Errorf("QUERY_AREA_ID must be positive, got %d", c.Overpass.AreaID)
	}
	if c.Minio.Enabled() && (c.Minio.AccessKey == "" || c.Minio.SecretKey == "") {
		return fmt.Errorf("MINIO_ENDPOINT is set but MINIO_ACCESS_KEY or MINIO_SECRET_KEY is missing")
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return fmt.Errorf("KAFKA_BROKER is set but KAFKA_TOPIC is empty")
	}
	return nil
}
