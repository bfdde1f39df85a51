package entities

import "time"

// CatalogProfessional is a human-maintained reference record for a known
// professional role and its market monthly rate.
//
// Storage model (DynamoDB):
//   - PK: id
type CatalogProfessional struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	Profile      string    `json:"profile"`
	MonthlyValue float64   `json:"monthlyValue"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CatalogMaterial is a human-maintained reference record for a known
// material/equipment item and its unit price. Items without a confirmed
// price carry Source "pendiente de cotización".
//
// Storage model (DynamoDB):
//   - PK: id
type CatalogMaterial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	UnitPrice float64   `json:"unitPrice"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
