package domain

// SaleRecord is one validated transaction line from the sales document.
// Quantity may be negative, which means the sale is a return.
type SaleRecord struct {
	SaleID   int64
	Product  string
	Quantity int64
}
