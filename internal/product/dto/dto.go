package dto

type ProductFilters struct {
	TenantID   string
	CategoryID string
	Page       int
	PageSize   int
}
