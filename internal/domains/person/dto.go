package person

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Person is one member as stored in the people collection document.
// Slug is unique within a category, not across the whole collection.
type Person struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Email     string   `json:"email,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Slug      string   `json:"slug"`
}

// PersonCreateRequest DTO for adding a member. Slug is optional; the
// service derives one from the name when absent.
type PersonCreateRequest struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Email     string   `json:"email"`
	Interests []string `json:"interests"`
	Slug      string   `json:"slug"`
}

func (r PersonCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error("invalid email format")),
		),
	)
}

// PersonUpdateRequest DTO for updating a member. Empty fields keep the
// existing values; interests are replaced wholesale when non-nil.
type PersonUpdateRequest struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Email     string   `json:"email"`
	Interests []string `json:"interests"`
}

func (r PersonUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 200)),
		validation.Field(&r.Category, validation.Length(1, 100)),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error("invalid email format")),
		),
	)
}

// ListParams are the filter knobs on GET /people.
type ListParams struct {
	Query    string
	Category string
	Page     int
	PageSize int
}

// ListResult carries one page of members plus the pagination facts.
type ListResult struct {
	Items      []Person
	Total      int
	TotalPages int
}

// CategoryGroup is one named group on the people page (Faculty,
// PhD Students, ...), in the collection's insertion order.
type CategoryGroup struct {
	Category string   `json:"category"`
	People   []Person `json:"people"`
}
