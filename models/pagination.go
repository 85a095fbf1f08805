package models

// Default and maximum values for offset pagination.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination addresses a fixed-size page of a result set by its 1-based
// page number.
type Pagination struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

// Offset returns the number of rows to skip before the requested page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit). A zero limit yields zero pages.
func (p Pagination) TotalPages(total int) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
