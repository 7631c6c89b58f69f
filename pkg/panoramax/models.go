package panoramax

// SearchResponse is the STAC-flavoured GeoJSON returned by /api/search.
type SearchResponse struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one picture. Only the fields needed for attribution are modelled.
type Feature struct {
	ID         string       `json:"id"`
	Assets     Assets       `json:"assets"`
	Properties FeatureProps `json:"properties"`
	Providers  []Provider   `json:"providers"`
}

type Assets struct {
	Thumb Asset `json:"thumb"`
	SD    Asset `json:"sd"`
	HD    Asset `json:"hd"`
}

type Asset struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

type FeatureProps struct {
	License  string `json:"license"`
	Datetime string `json:"datetime"`
}

type Provider struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// Image is the attribution data for one picture. Attributions are in
// presentation order, which is the reverse of the provider order upstream.
type Image struct {
	ThumbnailHref string
	License       string
	Attributions  []string
}
