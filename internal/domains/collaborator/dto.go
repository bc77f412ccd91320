package collaborator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Collaborator is one partner organization as stored in the
// collaborators collection document.
type Collaborator struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// CollaboratorCreateRequest DTO for adding a partner.
type CollaboratorCreateRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Logo        string `json:"logo"`
}

func (r CollaboratorCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Website, is.URL),
	)
}

// CollaboratorUpdateRequest DTO for updating a partner. Empty fields
// keep the existing values.
type CollaboratorUpdateRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Logo        string `json:"logo"`
}

func (r CollaboratorUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 255)),
		validation.Field(&r.Category, validation.Length(1, 100)),
		validation.Field(&r.Website, is.URL),
	)
}

// CategoryGroup is one partners-page section: a category and its
// members in insertion order.
type CategoryGroup struct {
	Category string         `json:"category"`
	Members  []Collaborator `json:"members"`
}

// ListParams are the filter knobs on GET /collaborators.
type ListParams struct {
	Query    string
	Category string
	Page     int
	PageSize int
}

// ListResult carries one page of partners plus the pagination facts.
type ListResult struct {
	Items      []Collaborator
	Total      int
	TotalPages int
}
