package dto

import "time"

// CreateOrganizationRequest entrada para crear una organización (tenant).
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// OrganizationResponse salida de una organización.
type OrganizationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
