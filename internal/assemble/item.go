package assemble

import (
	"cycleparking/internal/describe"
	"cycleparking/internal/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Item carries one element through the pipeline. Each step writes its own
// field, so steps of the same stage never race.
type Item struct {
	Element     models.Element
	Point       orb.Point
	Description describe.Description
}

func NewItem(e models.Element) *Item {
	return &Item{Element: e}
}

// Feature converts the item into a GeoJSON point feature. The access property
// is the raw tag and is omitted when the element has none.
func (it *Item) Feature() *geojson.Feature {
	f := geojson.NewFeature(it.Point)
	if access, ok := it.Element.Tags.Lookup(describe.TagAccess); ok {
		f.Properties["access"] = access
	}
	f.Properties["text"] = it.Description.Text()
	f.Properties["is_hub"] = it.Description.IsHub
	f.Properties["is_hangar"] = it.Description.IsHangar
	return f
}
