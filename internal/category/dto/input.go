package dto

type CreateCategoryInput struct {
	TenantID    string
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	ID          string
	TenantID    string
	Name        string
	Description string
}
