package entity

// Category agrupa productos dentro de una organización (devices, digital_assets, materials).
// (Name, OrganizationID) es único compuesto.
type Category struct {
	ID             string
	OrganizationID string
	Name           string
}

// DefaultCategoryNames categorías provisionadas al crear una organización.
var DefaultCategoryNames = []string{"devices", "digital_assets", "materials"}
