package catalog

// Product is an immutable catalog record. JSON tags follow the camelCase
// convention used across the project.
type Product struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"shortDescription"`
	Price            int        `json:"price"`
	Images           []string   `json:"images"`
	Categories       []string   `json:"categories"`
	Material         string     `json:"material"`
	Dimensions       Dimensions `json:"dimensions"`
	InStock          bool       `json:"inStock"`
	Featured         bool       `json:"featured"`
	Rating           float64    `json:"rating"`
	Colors           []string   `json:"colors,omitempty"`
	Reviews          []Review   `json:"reviews"`
}

// Dimensions are in inches.
type Dimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// Review is owned by its product and never queried on its own.
type Review struct {
	ID       int    `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

// PrimaryImage returns the first image URL or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
