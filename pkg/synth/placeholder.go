package synth

import "strings"

// ValueFor returns a plausible literal value for a parameter name.
// Rules are evaluated in order, first match wins.
func ValueFor(paramName string) string {
	p := strings.ToLower(paramName)

	// ID patterns
	if strings.Contains(p, "id") {
		if strings.Contains(p, "user") {
			return "usr_123456"
		}
		if strings.Contains(p, "product") {
			return "prod_789012"
		}
		if strings.Contains(p, "order") {
			return "ord_345678"
		}
		return "12345"
	}

	// Email patterns
	if strings.Contains(p, "email") {
		return "user@example.com"
	}

	// Name patterns
	if strings.Contains(p, "name") && !strings.Contains(p, "username") {
		return "John Doe"
	}
	if p == "username" {
		return "johndoe"
	}

	// Status patterns
	if strings.Contains(p, "status") {
		return "active"
	}

	// Pagination
	if p == "page" {
		return "1"
	}
	if p == "limit" || p == "size" {
		return "10"
	}
	if p == "offset" {
		return "0"
	}

	// Search
	if strings.Contains(p, "search") || p == "q" {
		return "example"
	}

	// Dates
	if strings.Contains(p, "date") {
		return "2024-01-01"
	}
	if strings.Contains(p, "time") {
		return "2024-01-01T00:00:00Z"
	}

	// Boolean
	if strings.Contains(p, "active") || strings.Contains(p, "enabled") {
		return "true"
	}

	return "sample_value"
}

// DescriptionFor returns a human-readable description for a parameter name.
// Mirrors the ValueFor rule table.
func DescriptionFor(paramName string) string {
	p := strings.ToLower(paramName)

	if strings.Contains(p, "id") {
		return "Unique identifier for " + paramName
	}
	if p == "page" {
		return "Page number for pagination"
	}
	if p == "limit" || p == "size" {
		return "Number of items to return"
	}
	if p == "offset" {
		return "Number of items to skip"
	}
	if strings.Contains(p, "search") || p == "q" {
		return "Search query string"
	}
	if strings.Contains(p, "sort") {
		return "Field to sort by"
	}
	if strings.Contains(p, "order") {
		return "Sort order (asc/desc)"
	}
	if strings.Contains(p, "filter") {
		return "Filter criteria"
	}
	if strings.Contains(p, "status") {
		return "Status filter"
	}

	return "Parameter: " + paramName
}
