package dto

type Stats struct {
	TotalProducts   int `json:"totalProducts"`
	TotalCategories int `json:"totalCategories"`
	TotalInventory  int `json:"totalInventory"`
}
