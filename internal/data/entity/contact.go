package entity

import "github.com/google/uuid"

type Contact struct {
	Base
	Name     string     `db:"name"`
	Email    string     `db:"email"`
	Phone    string     `db:"phone"`
	Favorite bool       `db:"favorite"`
	Owner    *uuid.UUID `db:"owner"`
}

// ContactUpdate carries the fields of a partial update. Nil means
// "keep the stored value".
type ContactUpdate struct {
	Name  *string
	Email *string
	Phone *string
}
