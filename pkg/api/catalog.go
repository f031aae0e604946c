package api

// Product is the catalog summary used in search results and wishlist entries.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	MainImage string  `json:"main_image"`
	Price     float64 `json:"price"`
	Category  string  `json:"category,omitempty"`
	Material  string  `json:"material,omitempty"`
}

// Pagination describes the paging state of a listing response.
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ProductListResponse is returned by GET /products.
type ProductListResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}
