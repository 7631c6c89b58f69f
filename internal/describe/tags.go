package describe

// OSM tag keys read from bicycle parking elements.
const (
	TagName           = "name"
	TagBicycleParking = "bicycle_parking"
	TagOperator       = "operator"
	TagLocation       = "location"
	TagDescription    = "description"
	TagAccess         = "access"
	TagPrivate        = "private"
	TagFee            = "fee"
	TagCharge         = "charge"
	TagCovered        = "covered"
	TagCapacity       = "capacity"
	TagWebsite        = "website"
	TagPanoramax      = "panoramax"
)

var booleanLabels = map[string]string{
	"yes":     "Yes",
	"no":      "No",
	"partial": "Partially",
}

var accessLabels = map[string]string{
	"customers": "Customers only",
	"members":   "Members only",
	"private":   "Private",
}

var privateLabels = map[string]string{
	"students":  "Students only",
	"employees": "Employees only",
}

var hangarOperators = map[string]struct{}{
	"Falco":     {},
	"Cyclehoop": {},
}

// Parking types that are covered by definition.
var implicitCovered = map[string]struct{}{
	"shed":     {},
	"building": {},
}

// Booleanise turns yes/no/partial into display labels. Anything else is
// returned unchanged.
func Booleanise(v string) string {
	if label, ok := booleanLabels[v]; ok {
		return label
	}
	return v
}

// AccessLabel resolves the access tag to a display label. The private tag only
// refines a recognised access value. ok is false when access is not one of the
// restricted values, in which case no Access line is shown.
func AccessLabel(access, private string) (label string, ok bool) {
	label, ok = accessLabels[access]
	if !ok {
		return "", false
	}
	if finer, found := privateLabels[private]; found {
		return finer, true
	}
	return label, true
}

// IsHangarOperator reports whether the operator runs enclosed bike hangars.
// The match is exact and case-sensitive.
func IsHangarOperator(operator string) bool {
	_, ok := hangarOperators[operator]
	return ok
}

// ImpliesCovered reports whether the bicycle_parking type is always covered.
func ImpliesCovered(bicycleParking string) bool {
	_, ok := implicitCovered[bicycleParking]
	return ok
}
