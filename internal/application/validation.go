package application

import (
	"fmt"
	"net/url"
	"strings"

	"linkdir/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "categoryID" -> "category ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"id":         "ID",
		"categoryID": "category ID",
		"linkID":     "link ID",
		"url":        "URL",
		"name":       "name",
		"query":      "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateURL checks that value is an absolute http(s) URL
func ValidateURL(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected an http(s) URL, got: %s", value),
		}
	}
	return nil
}

// SanitizeLinks drops records that cannot be addressed: an empty ID or an
// ID already seen earlier in the slice. Everything else is kept as-is; a
// missing name or unparsable rating still renders. The dropped records are
// described by the returned errors, in source order.
func SanitizeLinks(links []domain.Link) ([]domain.Link, []error) {
	kept := make([]domain.Link, 0, len(links))
	seen := make(map[string]bool, len(links))
	var problems []error

	for i, l := range links {
		if err := ValidateRequired("id", l.ID); err != nil {
			problems = append(problems, &RecordError{Index: i, Reason: err.Error()})
			continue
		}
		if seen[l.ID] {
			problems = append(problems, &RecordError{Index: i, ID: l.ID, Reason: "duplicate ID"})
			continue
		}
		seen[l.ID] = true
		kept = append(kept, l)
	}

	return kept, problems
}

// SanitizeCategories drops categories with an empty or duplicate ID
func SanitizeCategories(categories []domain.Category) ([]domain.Category, []error) {
	kept := make([]domain.Category, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	var problems []error

	for i, c := range categories {
		if err := ValidateRequired("categoryID", c.ID); err != nil {
			problems = append(problems, &RecordError{Index: i, Reason: err.Error()})
			continue
		}
		if seen[c.ID] {
			problems = append(problems, &RecordError{Index: i, ID: c.ID, Reason: "duplicate category ID"})
			continue
		}
		seen[c.ID] = true
		kept = append(kept, c)
	}

	return kept, problems
}
