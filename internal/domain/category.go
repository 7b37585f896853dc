package domain

// StorageCategory is the storage class shared by products and sections.
// A product may only be stocked in a section of the same category; the match
// is exact and never auto-corrected.
type StorageCategory string

const (
	CategoryFresh        StorageCategory = "FRESH"
	CategoryRefrigerated StorageCategory = "REFRIGERATED"
	CategoryFrozen       StorageCategory = "FROZEN"
)

// Valid reports whether c is one of the known storage classes.
func (c StorageCategory) Valid() bool {
	switch c {
	case CategoryFresh, CategoryRefrigerated, CategoryFrozen:
		return true
	}
	return false
}

// Permits reports whether a product of category p may be stored under c.
func (c StorageCategory) Permits(p StorageCategory) bool {
	return c == p
}
