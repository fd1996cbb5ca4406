package entity

import "github.com/google/uuid"

type Subscription string

const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

type User struct {
	Base
	Email             string       `db:"email"`
	PasswordHash      string       `db:"password"`
	Subscription      Subscription `db:"subscription"`
	AvatarURL         string       `db:"avatar_url"`
	Token             *uuid.UUID   `db:"token"`
	Verify            bool         `db:"verify"`
	VerificationToken *string      `db:"verification_token"`
}
