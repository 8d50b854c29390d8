package catalog

// Category classifies a catalog model by intended use.
type Category string

// Model categories.
const (
	CategoryUtility     Category = "utility"     // e.g. image classifiers, general helpers
	CategoryDiagnostic  Category = "diagnostic"  // e.g. sound or signal analyzers
	CategoryPerformance Category = "performance" // e.g. benchmark models
	CategoryFun         Category = "fun"         // e.g. novelty identifiers
	CategoryOther       Category = "other"
)

// DefaultSyncCategory is the category every hub-synced record receives.
// Operators re-categorize curated records by hand.
const DefaultSyncCategory = CategoryUtility

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether the category is a member of the closed vocabulary.
func (c Category) Valid() bool {
	switch c {
	case CategoryUtility, CategoryDiagnostic, CategoryPerformance, CategoryFun, CategoryOther:
		return true
	}
	return false
}

// Display returns a human-readable form of the category.
func (c Category) Display() string {
	return titleCaser.String(string(c))
}
