package entity

import "fmt"

// Domain list categories
const (
	CategoryWhitelist = "Whitelist"
	CategoryBlacklist = "Blacklist"
	CategorySafe      = "Safe"
	CategoryMalicious = "Malicious"
	CategoryUndefined = "Undefined"
)

var validCategories = map[string]bool{
	CategoryWhitelist: true,
	CategoryBlacklist: true,
	CategorySafe:      true,
	CategoryMalicious: true,
	CategoryUndefined: true,
}

// ValidateCategories checks every entry against the recognized category set.
// Matching is case-sensitive. An empty list is valid and means "no filter".
// The first invalid entry aborts validation and is reported in the error.
func ValidateCategories(categories []string) error {
	for _, category := range categories {
		if !validCategories[category] {
			return fmt.Errorf("%w: %s", ErrInvalidCategory, category)
		}
	}
	return nil
}
