package model

type Category struct {
	BaseModel
	TenantID    string  `db:"tenant_id" json:"tenant_id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}
