package request

type ContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,usphone"`
}

// ContactUpdateRequest carries a partial update; absent fields stay unchanged.
type ContactUpdateRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Email *string `json:"email,omitempty" validate:"omitnil,email"`
	Phone *string `json:"phone,omitempty" validate:"omitnil,usphone"`
}

// IsEmpty reports a body with nothing to update
func (r *ContactUpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil
}

// FavoriteRequest is validated on its own narrow rule, never against the
// full contact schema.
type FavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}
