package quiz

// SmileType is the respondent-facing classification derived from the top
// recommendation's procedure category.
type SmileType struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Static label table keyed by procedure category. Deliberately separate from
// the procedure catalog: labels are copy, not catalog data.
var smileTypes = map[string]SmileType{
	"cosmetic":    {Code: "glow_seeker", Name: "The Glow Seeker"},
	"orthodontic": {Code: "alignment_achiever", Name: "The Alignment Achiever"},
	"restorative": {Code: "comeback_smile", Name: "The Comeback Smile"},
	"preventive":  {Code: "healthy_maintainer", Name: "The Healthy Maintainer"},
	"comfort":     {Code: "comfort_first", Name: "The Comfort-First Smile"},
}

// defaultSmileType covers the degenerate case of no positive-score procedure
// and any category the label table does not know.
var defaultSmileType = smileTypes["preventive"]

// Classify maps the top-ranked procedure's category to a smile type. It never
// fails: an empty ranking or an unknown key/category yields the default.
func Classify(ranked []Recommendation, categoryOf func(key string) (string, bool)) SmileType {
	if len(ranked) == 0 {
		return defaultSmileType
	}

	category, ok := categoryOf(ranked[0].Key)
	if !ok {
		return defaultSmileType
	}
	smile, ok := smileTypes[category]
	if !ok {
		return defaultSmileType
	}
	return smile
}
