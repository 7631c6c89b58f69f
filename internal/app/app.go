// Package app wires the clients and runs one fetch, enrich and write cycle.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cycleparking/internal/assemble"
	"cycleparking/internal/config"
	"cycleparking/internal/describe"
	"cycleparking/internal/keys"
	"cycleparking/internal/models"
	"cycleparking/internal/storage"
	"cycleparking/pkg/kafkaclient"
	"cycleparking/pkg/overpass"
	"cycleparking/pkg/panoramax"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// Source fetches the raw bicycle parking elements for an area.
type Source interface {
	BicycleParking(ctx context.Context, areaID int64) (*overpass.Response, error)
}

// ObjectStore receives a copy of the collection after the local write.
type ObjectStore interface {
	Bucket() string
	EnsureBucket(ctx context.Context, location string) error
	Put(ctx context.Context, key string, data []byte, metadata map[string]string) (minio.UploadInfo, error)
}

// Notifier announces a published collection.
type Notifier interface {
	Publish(ctx context.Context, key string, v any) error
	Close() error
}

type App struct {
	cfg       *config.Config
	source    Source
	assembler *assemble.Assembler
	store     ObjectStore
	notifier  Notifier
	logger    *zap.Logger
	now       func() time.Time
	newRunID  func() string
}

// New builds an App from configuration. Object storage and Kafka are only
// connected when configured.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	images := panoramax.NewClient(cfg.Panoramax.URL, cfg.UserAgent, logger.Named("panoramax"))
	describer := describe.NewDescriber(images, logger.Named("describe"))

	var editor *describe.EditorLink
	if cfg.Editor.IncludeLink {
		editor = &describe.EditorLink{BaseURL: cfg.Editor.BaseURL, LayerReference: cfg.Editor.MapLayerReference}
	}

	a := &App{
		cfg:       cfg,
		source:    overpass.NewClient(cfg.Overpass.URL, cfg.UserAgent, logger.Named("overpass")),
		assembler: assemble.NewAssembler(describer, editor, logger.Named("assemble")),
		logger:    logger,
		now:       time.Now,
		newRunID:  func() string { return uuid.NewString() },
	}

	if cfg.Minio.Enabled() {
		s3, err := storage.NewS3Service(cfg.Minio, logger.Named("storage"))
		if err != nil {
			return nil, err
		}
		a.store = s3
	}
	if cfg.Kafka.Enabled() {
		a.notifier = kafkaclient.NewProducer(cfg.Kafka.Broker, cfg.Kafka.Topic, logger.Named("kafka"))
	}
	return a, nil
}

// Close releases the Kafka writer, if any.
func (a *App) Close() error {
	if a.notifier != nil {
		return a.notifier.Close()
	}
	return nil
}

// Run performs one complete batch. Nothing is written unless every element
// was assembled successfully.
func (a *App) Run(ctx context.Context) error {
	start := a.now()
	runID := a.newRunID()
	log := a.logger.With(zap.String("run_id", runID))

	resp, err := a.source.BicycleParking(ctx, a.cfg.Overpass.AreaID)
	if err != nil {
		return fmt.Errorf("fetch bicycle parking: %w", err)
	}

	fc, err := a.assembler.Build(ctx, resp.Elements)
	if err != nil {
		return err
	}
	// An interrupted run loses its image lookups; keep the previous output.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("build collection: %w", err)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	if err := storage.WriteFile(a.cfg.Output.Path, data); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	log.Info("Wrote collection", zap.String("path", a.cfg.Output.Path), zap.Int("bytes", len(data)))

	event := models.CollectionPublished{
		RunID:       runID,
		GeneratedAt: start.UTC(),
		AreaID:      a.cfg.Overpass.AreaID,
		Features:    len(fc.Features),
		Hubs:        countHubs(fc),
		OutputPath:  a.cfg.Output.Path,
	}

	if a.store != nil {
		if err := a.upload(ctx, &event, data); err != nil {
			return err
		}
	}
	if a.notifier != nil {
		if err := a.notifier.Publish(ctx, runID, event); err != nil {
			return fmt.Errorf("announce collection: %w", err)
		}
	}

	log.Info("Finished", zap.Duration("took", time.Since(start)))
	return nil
}

func (a *App) upload(ctx context.Context, event *models.CollectionPublished, data []byte) error {
	if err := a.store.EnsureBucket(ctx, ""); err != nil {
		return fmt.Errorf("prepare bucket: %w", err)
	}

	metadata := map[string]string{
		"run-id":   event.RunID,
		"area-id":  fmt.Sprint(event.AreaID),
		"features": fmt.Sprint(event.Features),
	}
	event.Bucket = a.store.Bucket()
	event.Key = keys.Collection(a.cfg.Minio.Prefix, event.GeneratedAt, event.RunID)
	event.LatestKey = keys.Latest(a.cfg.Minio.Prefix)

	for _, key := range []string{event.Key, event.LatestKey} {
		if _, err := a.store.Put(ctx, key, data, metadata); err != nil {
			return fmt.Errorf("upload collection: %w", err)
		}
	}
	return nil
}

func countHubs(fc *geojson.FeatureCollection) int {
	n := 0
	for _, f := range fc.Features {
		if f.Properties.MustBool("is_hub", false) {
			n++
		}
	}
	return n
}
