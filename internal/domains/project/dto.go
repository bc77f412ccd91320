package project

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Link is a labelled external reference on a project card.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (l Link) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Label, validation.Required.Error("link label is required")),
		validation.Field(&l.URL, validation.Required.Error("link url is required")),
	)
}

// Project is one research project as stored in the projects collection
// document. Collaborators holds free-text names, not references.
type Project struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
	Collaborators []string `json:"collaborators,omitempty"`
	Links         []Link   `json:"links,omitempty"`
	DemoLink      string   `json:"demoLink,omitempty"`
}

// ProjectCreateRequest DTO for adding a project.
type ProjectCreateRequest struct {
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Collaborators []string `json:"collaborators"`
	Links         []Link   `json:"links"`
	DemoLink      string   `json:"demoLink"`
}

func (r ProjectCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Links),
	)
}

// ProjectUpdateRequest DTO for updating a project. Empty fields keep
// the existing values; collaborators and links are replaced wholesale
// when non-nil.
type ProjectUpdateRequest struct {
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Collaborators []string `json:"collaborators"`
	Links         []Link   `json:"links"`
	DemoLink      string   `json:"demoLink"`
}

func (r ProjectUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 255)),
		validation.Field(&r.Category, validation.Length(1, 100)),
		validation.Field(&r.Links),
	)
}

// ListParams are the filter knobs on GET /projects. Empty values are
// inactive matchers (no constraint).
type ListParams struct {
	Query    string
	Category string
	Page     int
	PageSize int
}

// ListResult carries one page of projects plus the pagination facts.
type ListResult struct {
	Items      []Project
	Total      int
	TotalPages int
}
