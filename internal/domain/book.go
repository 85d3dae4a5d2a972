// Package domain holds the entities of the bookstore and their
// validation rules. Services call Validate before any write; storage
// backends persist the structs as-is.
package domain

import (
	"fmt"
	"math"
)

// Book is a catalog entry keyed by ISBN.
//
// Quantity is a pointer so a request that omits it can be told apart
// from one that sends an explicit zero.
type Book struct {
	ISBN        string  `json:"ISBN" bson:"_id"`
	Title       string  `json:"title" bson:"title"`
	Author      string  `json:"author" bson:"author"`
	Description string  `json:"description" bson:"description"`
	Genre       string  `json:"genre" bson:"genre"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    *int    `json:"quantity" bson:"quantity"`
}

// Validate reports whether the book is acceptable for create or update.
// All fields are mandatory and the price must be a positive amount with
// at most two decimal places.
func (b *Book) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"ISBN", b.ISBN},
		{"title", b.Title},
		{"author", b.Author},
		{"description", b.Description},
		{"genre", b.Genre},
	}
	for _, f := range required {
		if f.value == "" {
			return validationError(fmt.Sprintf("Missing required field '%s'", f.name))
		}
	}

	if b.Quantity == nil {
		return validationError("Missing required field 'quantity'")
	}
	if *b.Quantity < 0 {
		return validationError("Quantity must not be negative")
	}

	if b.Price <= 0 {
		return validationError("Price must be a positive number")
	}
	// Accept at most two decimal places, tolerating float representation
	// error for values like 19.99.
	cents := b.Price * 100
	if math.Abs(cents-math.Round(cents)) > 1e-9 {
		return validationError("Price must have at most two decimal places")
	}

	return nil
}
