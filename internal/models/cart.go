package models

// ProductRef is the product snapshot carried by a cart line. It is copied
// from the catalog at add time so the cart stays renderable offline.
type ProductRef struct {
	ID    string `json:"id"`    // product identifier
	Name  string `json:"name"`  // display name
	Image string `json:"image"` // main image URL
	Slug  string `json:"slug"`  // catalog slug
}

// VariantRef is the optional variant snapshot carried by a cart line.
type VariantRef struct {
	ID    string  `json:"id"`    // variant identifier
	Price float64 `json:"price"` // variant price at add time
}

// CartLine is one cart entry. A line is identified by the pair
// (Product.ID, Variant.ID or absent); Quantity is always >= 1 — removal is
// the only valid response to a non-positive quantity.
type CartLine struct {
	Product   ProductRef  `json:"product"`
	Variant   *VariantRef `json:"variant,omitempty"`
	Quantity  int         `json:"quantity"`
	UnitPrice float64     `json:"price"`
}

// VariantID returns the line's variant identifier, or "" for the base product.
func (l CartLine) VariantID() string {
	if l.Variant == nil {
		return ""
	}
	return l.Variant.ID
}

// Matches reports whether the line is keyed by the given product/variant pair.
func (l CartLine) Matches(productID, variantID string) bool {
	return l.Product.ID == productID && l.VariantID() == variantID
}

// Subtotal returns quantity times unit price.
func (l CartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}
