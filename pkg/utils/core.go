// Package utils provides small string and display helpers shared by the
// catalog, filtering and output packages.
package utils

import (
	"strings"
)

// TrimAndSplit splits a string by separator and trims whitespace from each part.
//
// It performs the following operations:
//   - Step 1: Returns empty slice if input is empty or "all"
//   - Step 2: Splits the string by the separator
//   - Step 3: Trims whitespace from each part
//   - Step 4: Filters out empty strings after trimming
//
// Parameters:
//   - s: The string to split and trim
//   - sep: The separator to split on
//
// Returns:
//   - []string: Slice of trimmed non-empty strings; empty slice if input is "" or "all"
func TrimAndSplit(s string, sep string) []string {
	if s == "" || s == "all" {
		return []string{}
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Contains checks if a string slice contains an item.
//
// Performs case-sensitive exact match comparison.
//
// Parameters:
//   - slice: The slice of strings to search
//   - item: The string to search for
//
// Returns:
//   - bool: true if item is found in slice, false otherwise
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// ContainsIgnoreCase checks if a string slice contains an item (case-insensitive).
//
// Parameters:
//   - slice: The slice of strings to search
//   - item: The string to search for (case-insensitive)
//
// Returns:
//   - bool: true if item is found in slice (case-insensitive), false otherwise
func ContainsIgnoreCase(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

// NormalizeList trims every value, drops empty ones and removes duplicates
// while keeping the first occurrence order.
//
// A nil or fully blank input yields nil so that normalized lists compare
// equal regardless of how "nothing selected" was spelled.
//
// Parameters:
//   - values: Raw values, typically from flags or config
//
// Returns:
//   - []string: Cleaned values, or nil when nothing remains
func NormalizeList(values []string) []string {
	var result []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// EqualLists reports whether two slices hold the same values in the same order.
// A nil slice and an empty slice are equal.
func EqualLists(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Toggle adds item to the slice when absent and removes it when present.
//
// The input slice is never modified; a new slice is returned.
//
// Parameters:
//   - slice: Current selection
//   - item: Value to flip
//
// Returns:
//   - []string: New selection with item added or removed
func Toggle(slice []string, item string) []string {
	result := make([]string, 0, len(slice)+1)
	removed := false
	for _, s := range slice {
		if s == item {
			removed = true
			continue
		}
		result = append(result, s)
	}
	if !removed {
		result = append(result, item)
	}
	return result
}

// Set builds a lookup set from a slice.
func Set(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
