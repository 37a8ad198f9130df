package model

import "cleanmatch/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldCategoryID  = "category_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldBasePrice   = "base_price"
	FieldActive      = "active"
)

// Service is a cleaning service offered on the platform. BasePrice is the
// hourly rate used to compute booking totals.
type Service struct {
	ID          string  `db:"id"`
	CategoryID  string  `db:"category_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	BasePrice   float64 `db:"base_price"`
	Active      bool    `db:"active"`
	model.Metadata
}
