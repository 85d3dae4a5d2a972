package domain

import (
	"fmt"
	"strings"
)

// Customer is an account holder. The numeric ID is assigned by storage
// on create; UserID is the customer's email address and unique across
// the system.
type Customer struct {
	ID       int    `json:"id" bson:"_id"`
	UserID   string `json:"userId" bson:"user_id"`
	Name     string `json:"name" bson:"name"`
	Phone    string `json:"phone" bson:"phone"`
	Address  string `json:"address" bson:"address"`
	Address2 string `json:"address2,omitempty" bson:"address2,omitempty"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state" bson:"state"`
	Zipcode  string `json:"zipcode" bson:"zipcode"`
}

// ValidEmail is the minimal shape check applied to userId values: the
// address must contain both an '@' and a '.'.
func ValidEmail(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}

// Validate reports whether the customer is acceptable for create.
// Address2 is the only optional field; state must be a two-letter code.
func (c *Customer) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"userId", c.UserID},
		{"name", c.Name},
		{"phone", c.Phone},
		{"address", c.Address},
		{"city", c.City},
		{"state", c.State},
		{"zipcode", c.Zipcode},
	}
	for _, f := range required {
		if f.value == "" {
			return validationError(fmt.Sprintf("Missing required field '%s'", f.name))
		}
	}

	if !ValidEmail(c.UserID) {
		return validationError("Invalid email format")
	}
	if len(c.State) != 2 {
		return validationError("State must be a two-letter code")
	}

	return nil
}
