package catalog

// Product is immutable reference data supplied at build time.
// Price keeps the app's display convention ("$5.99"); use ParsePrice
// before doing arithmetic on it. Image is an opaque asset reference.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}

type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}
