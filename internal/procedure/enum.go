package procedure

type Category string

const (
	CategoryCosmetic    Category = "cosmetic"
	CategoryOrthodontic Category = "orthodontic"
	CategoryRestorative Category = "restorative"
	CategoryPreventive  Category = "preventive"
	CategoryComfort     Category = "comfort"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCosmetic, CategoryOrthodontic, CategoryRestorative, CategoryPreventive, CategoryComfort:
		return true
	}
	return false
}
