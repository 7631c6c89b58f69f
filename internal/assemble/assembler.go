// Package assemble turns Overpass elements into the ordered GeoJSON collection
// the map renders.
package assemble

import (
	"context"
	"fmt"
	"slices"

	"cycleparking/internal/describe"
	"cycleparking/internal/enrich"
	"cycleparking/internal/models"
	"cycleparking/pkg/geo"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

type Assembler struct {
	describer *describe.Describer
	editor    *describe.EditorLink
	logger    *zap.Logger
}

// NewAssembler returns an Assembler. A nil editor omits the Edit line.
func NewAssembler(describer *describe.Describer, editor *describe.EditorLink, logger *zap.Logger) *Assembler {
	return &Assembler{describer: describer, editor: editor, logger: logger}
}

func (a *Assembler) locate(_ context.Context, it *Item) error {
	p, err := geo.Position(it.Element)
	if err != nil {
		return err
	}
	it.Point = p
	return nil
}

func (a *Assembler) render(ctx context.Context, it *Item) error {
	it.Description = a.describer.Describe(ctx, it.Element.Tags)
	return ctx.Err()
}

func (a *Assembler) link(_ context.Context, it *Item) error {
	it.Description.Lines = append(it.Description.Lines, a.editor.Line(it.Element, it.Point))
	return nil
}

func (a *Assembler) pipeline() *enrich.Pipeline[Item] {
	stages := []enrich.Stage[Item]{enrich.NewStage(a.locate, a.render)}
	if a.editor != nil {
		stages = append(stages, enrich.NewStage(a.link))
	}
	return enrich.NewPipeline(stages...)
}

// Build processes every element concurrently, waits for all of them and
// returns the sorted collection. Any missing position aborts the build.
func (a *Assembler) Build(ctx context.Context, elements []models.Element) (*geojson.FeatureCollection, error) {
	items := make([]*Item, len(elements))
	for i, e := range elements {
		items[i] = NewItem(e)
	}

	if err := a.pipeline().Process(ctx, items); err != nil {
		return nil, fmt.Errorf("assemble features: %w", err)
	}

	SortHubsLast(items)

	fc := geojson.NewFeatureCollection()
	hubs := 0
	for _, it := range items {
		if it.Description.IsHub {
			hubs++
		}
		fc.Append(it.Feature())
	}

	a.logger.Info("Assembled features", zap.Int("features", len(fc.Features)), zap.Int("hubs", hubs))
	return fc, nil
}

// SortHubsLast stably orders non-hubs before hubs, keeping input order within
// each group. The renderer draws later features above earlier ones, so hubs
// end up on top of the map.
func SortHubsLast(items []*Item) {
	slices.SortStableFunc(items, func(a, b *Item) int {
		return rank(a.Description.IsHub) - rank(b.Description.IsHub)
	})
}

func rank(b bool) int {
	if b {
		return 1
	}
	return 0
}
