package valueobjects

// Category is the task's work type. The dropdown offers the fixed set
// below, but cells edited outside the tracker may hold anything, so free
// text is tolerated: NewCategory never rejects, and IsKnown only reports
// membership in the fixed set.
type Category string

const (
	CategoryRepair     Category = "repair"
	CategoryManagement Category = "management"
	CategoryOther      Category = "other"
)

var knownCategories = map[Category]bool{
	CategoryRepair:     true,
	CategoryManagement: true,
	CategoryOther:      true,
}

// AllCategories lists the categories offered by the entry form.
func AllCategories() []Category {
	return []Category{CategoryRepair, CategoryManagement, CategoryOther}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsKnown() bool {
	return knownCategories[c]
}

func NewCategory(s string) Category {
	return Category(s)
}
