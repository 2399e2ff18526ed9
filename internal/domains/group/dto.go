package group

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"microblog-backend/internal/shared/utils"
)

// CreateGroupRequest creates a category. Slug is optional; when omitted it is
// generated from the title.
type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Slug,
			validation.By(func(interface{}) error {
				if r.Slug != "" && !utils.IsValidSlug(r.Slug) {
					return validation.NewError("validation_slug", "slug must contain lowercase letters, digits and hyphens only")
				}
				return nil
			}),
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000),
		),
	)
}
