package describe

import (
	"fmt"
	"net/url"
	"strconv"

	"cycleparking/internal/models"

	"github.com/paulmach/orb"
)

// EditorLink builds the MapComplete "Edit" line for an element.
type EditorLink struct {
	BaseURL        string
	LayerReference string
}

// Line returns a wiki-style link opening the editor at the element's position
// with the custom layer loaded.
func (l EditorLink) Line(e models.Element, p orb.Point) string {
	return fmt.Sprintf("[[%s?z=18&lat=%s&lon=%s&userlayout=%s#%s|Edit]]",
		l.BaseURL,
		formatCoord(p.Lat()),
		formatCoord(p.Lon()),
		url.QueryEscape(l.LayerReference),
		e.Ref(),
	)
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
