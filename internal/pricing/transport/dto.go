// Package transport defines wire types for live parts pricing.
package transport

// Query identifies the vehicle or part to price. Exactly one of VIN or
// Keyword should be set; both set prefers VIN.
type Query struct {
	VIN     string
	Keyword string
}

// Part is one priced part returned by the pricing API.
type Part struct {
	PartName   string `json:"part_name"`
	PartNumber string `json:"part_number"`
	Brand      string `json:"brand"`
	Price      string `json:"price"`
	InStock    bool   `json:"in_stock"`
	Supplier   string `json:"supplier"`
}
