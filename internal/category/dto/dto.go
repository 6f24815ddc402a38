package dto

type CategoryFilters struct {
	TenantID string
	Page     int
	PageSize int
}
