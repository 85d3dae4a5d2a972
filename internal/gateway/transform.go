// Package gateway implements the BFF edge: it forwards client requests to
// the backend services and reshapes JSON responses for the client family
// being served.
package gateway

import "slices"

// Transform reshapes a decoded JSON payload for one client family. A nil
// Transform means passthrough. Implementations are total: any payload
// shape they do not recognize comes back unchanged, and the input value is
// never mutated.
type Transform func(v any) any

// mobileGenreSubstitute is what mobile clients receive instead of the
// "non-fiction" genre literal their UI cannot render.
const mobileGenreSubstitute = "3"

// addressFields are the customer keys withheld from mobile clients.
var addressFields = []string{"address", "address2", "city", "state", "zipcode"}

// TransformBook rewrites the genre field of a book object, or of every
// object in a book list, replacing "non-fiction" with the mobile
// substitute. All other fields and payload shapes pass through untouched.
func TransformBook(v any) any {
	switch payload := v.(type) {
	case map[string]any:
		return transformSingleBook(payload)
	case []any:
		out := make([]any, len(payload))
		for i, elem := range payload {
			out[i] = TransformBook(elem)
		}
		return out
	default:
		return v
	}
}

func transformSingleBook(book map[string]any) map[string]any {
	out := make(map[string]any, len(book))
	for k, val := range book {
		out[k] = val
	}
	if genre, ok := out["genre"].(string); ok && genre == "non-fiction" {
		out["genre"] = mobileGenreSubstitute
	}
	return out
}

// FilterCustomer removes the address-related fields from a customer
// object, or from every object in a customer list. Keys that are absent
// are skipped silently.
func FilterCustomer(v any) any {
	switch payload := v.(type) {
	case map[string]any:
		return filterSingleCustomer(payload)
	case []any:
		out := make([]any, len(payload))
		for i, elem := range payload {
			out[i] = FilterCustomer(elem)
		}
		return out
	default:
		return v
	}
}

func filterSingleCustomer(customer map[string]any) map[string]any {
	out := make(map[string]any, len(customer))
	for k, val := range customer {
		if slices.Contains(addressFields, k) {
			continue
		}
		out[k] = val
	}
	return out
}
