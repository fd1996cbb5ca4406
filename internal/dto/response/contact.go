package response

import (
	"contacts-api/internal/data/entity"
)

type ContactResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Favorite bool    `json:"favorite"`
	Owner    *string `json:"owner,omitempty"`
}

func ContactToResponse(contact *entity.Contact) ContactResponse {
	resp := ContactResponse{
		ID:       contact.ID.String(),
		Name:     contact.Name,
		Email:    contact.Email,
		Phone:    contact.Phone,
		Favorite: contact.Favorite,
	}

	if contact.Owner != nil {
		owner := contact.Owner.String()
		resp.Owner = &owner
	}

	return resp
}

func ContactsToResponse(contacts []*entity.Contact) []ContactResponse {
	responses := make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = ContactToResponse(contact)
	}
	return responses
}
