// Package describe turns the OSM tags of a bicycle parking into the markdown
// popup text and classification flags shown on the map.
package describe

import (
	"context"
	"fmt"
	"strings"

	"cycleparking/internal/models"
	"cycleparking/pkg/panoramax"

	"go.uber.org/zap"
)

const wallLoopsWarning = "**Wheel benders - not recommended for use**\n"

// ImageLookup resolves a Panoramax picture id to attribution data.
type ImageLookup interface {
	Lookup(ctx context.Context, id string) (*panoramax.Image, error)
}

// Description is the rendered text of one element plus its flags.
type Description struct {
	Lines    []string
	IsHub    bool
	IsHangar bool
}

// Text joins the lines with newlines.
func (d Description) Text() string {
	return strings.Join(d.Lines, "\n")
}

type Describer struct {
	images ImageLookup
	logger *zap.Logger
}

// NewDescriber returns a Describer. images may be nil, in which case
// panoramax tags are ignored.
func NewDescriber(images ImageLookup, logger *zap.Logger) *Describer {
	return &Describer{images: images, logger: logger}
}

// Title picks the heading for an element: its name, else a label for the kind
// of parking.
func Title(tags models.Tags) string {
	switch {
	case tags.Has(TagName):
		return tags.Get(TagName)
	case tags.Get(TagBicycleParking) == "informal":
		return "Informal bike parking"
	case IsHangarOperator(tags.Get(TagOperator)):
		return "Bike hangar"
	case tags.Get(TagLocation) == "underground":
		return "Underground bike parking"
	default:
		return "Bike parking"
	}
}

// IsHub reports whether the element is a non-private parking building.
func IsHub(tags models.Tags) bool {
	return tags.Get(TagBicycleParking) == "building" && tags.Get(TagAccess) != "private"
}

// Describe renders the body lines for an element. A failed picture lookup is
// logged and only drops the picture lines.
func (d *Describer) Describe(ctx context.Context, tags models.Tags) Description {
	var lines []string
	addProp := func(name, value string) {
		lines = append(lines, fmt.Sprintf("**%s:** %s", name, value))
	}

	lines = append(lines, "# "+Title(tags))

	if tags.Get(TagBicycleParking) == "wall_loops" {
		lines = append(lines, wallLoopsWarning)
	}

	if tags.Has(TagDescription) {
		lines = append(lines, tags.Get(TagDescription))
	}

	if label, ok := AccessLabel(tags.Get(TagAccess), tags.Get(TagPrivate)); ok {
		addProp("Access", label)
	}

	if tags.Get(TagFee) == "yes" {
		addProp("Fee", Booleanise(tags.Get(TagFee)))
		if tags.Has(TagCharge) {
			addProp("Cost", tags.Get(TagCharge))
		}
	}

	if tags.Has(TagCovered) && !ImpliesCovered(tags.Get(TagBicycleParking)) {
		addProp("Covered", Booleanise(tags.Get(TagCovered)))
	}

	if tags.Has(TagCapacity) {
		addProp("Capacity", tags.Get(TagCapacity))
	}

	if tags.Has(TagOperator) {
		addProp("Operated by", tags.Get(TagOperator))
	}

	if tags.Has(TagWebsite) {
		lines = append(lines, fmt.Sprintf("**[[%s|Website]]**", tags.Get(TagWebsite)))
	}

	if id := tags.Get(TagPanoramax); id != "" && d.images != nil {
		img, err := d.images.Lookup(ctx, id)
		if err != nil {
			d.logger.Warn("Skipping panoramax picture", zap.String("panoramax", id), zap.Error(err))
		} else {
			lines = append(lines,
				fmt.Sprintf("{{%s}}", img.ThumbnailHref),
				fmt.Sprintf("Image is licensed by %s under %s", strings.Join(img.Attributions, ", "), img.License),
			)
		}
	}

	return Description{
		Lines:    lines,
		IsHub:    IsHub(tags),
		IsHangar: IsHangarOperator(tags.Get(TagOperator)),
	}
}
