// Package search implements the customer search view: substring matching on
// first and last name, ordered the way a German phone book would be.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"termine-api/internal/model"
)

// Customers returns the customers whose first or last name contains query,
// case-insensitively. An empty query yields no results.
func Customers(query string, all []model.Customer) []model.Customer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.Customer{}
	}

	out := make([]model.Customer, 0)
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.FirstName), q) ||
			strings.Contains(strings.ToLower(c.LastName), q) {
			out = append(out, c)
		}
	}
	Sort(out)
	return out
}

// Sort orders customers by last name, then first name, ignoring case and
// accents. Equal names keep creation order.
func Sort(cs []model.Customer) {
	// Collator is not safe for concurrent use; build one per call.
	col := collate.New(language.German, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(cs, func(i, j int) bool {
		if c := col.CompareString(cs[i].LastName, cs[j].LastName); c != 0 {
			return c < 0
		}
		if c := col.CompareString(cs[i].FirstName, cs[j].FirstName); c != 0 {
			return c < 0
		}
		return cs[i].CreatedAt.Before(cs[j].CreatedAt)
	})
}
