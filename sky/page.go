// SPDX-License-Identifier: MIT
package sky

import "fmt"

// DefaultStarsPerPage is how many stars one constellation page holds.
const DefaultStarsPerPage = 10

// PageCount returns the number of pages for total stars; an empty sky still
// has one (empty) page.
func PageCount(total, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultStarsPerPage
	}
	if total <= 0 {
		return 1
	}

	return (total + perPage - 1) / perPage
}

// Paginate returns the 1-based page of stars. A page past the end is empty,
// not an error. perPage ≤ 0 selects DefaultStarsPerPage.
func Paginate(stars []Star, page, perPage int) ([]Star, error) {
	if page < 1 {
		return nil, fmt.Errorf("page %d: %w", page, ErrInvalidPage)
	}
	if perPage <= 0 {
		perPage = DefaultStarsPerPage
	}

	start := (page - 1) * perPage
	if start >= len(stars) {
		return []Star{}, nil
	}
	end := start + perPage
	if end > len(stars) {
		end = len(stars)
	}

	return stars[start:end], nil
}
