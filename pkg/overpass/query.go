package overpass

import "fmt"

// BicycleParkingQuery returns the Overpass QL selecting every bicycle parking
// node, way and relation inside the given area, with centers for non-nodes.
func BicycleParkingQuery(areaID int64) string {
	return fmt.Sprintf(`
[out:json][timeout:25];
area(id:%d)->.searchArea;
nwr["amenity"="bicycle_parking"](area.searchArea);
out center;
`, areaID)
}
