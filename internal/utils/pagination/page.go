package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	// MaxLimit caps the caller-chosen page size.
	MaxLimit = 100
)

// Page is a 1-indexed page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage builds a Page from raw query values. Missing, unparsable or
// non-positive values fall back to the defaults, and the limit is capped at
// MaxLimit.
func NewPage(rawPage, rawLimit string) Page {
	return newPage(parsePositive(rawPage, DefaultPage), min(parsePositive(rawLimit, DefaultLimit), MaxLimit))
}

// FixedLimit builds a Page whose limit cannot be chosen by the caller.
func FixedLimit(rawPage string, limit int) Page {
	return newPage(parsePositive(rawPage, DefaultPage), limit)
}

// newPage clamps number so the offset cannot overflow. A clamped page lies far
// past any real row count and still yields an empty result.
func newPage(number, limit int) Page {
	if limit > 0 && number > math.MaxInt/limit {
		number = math.MaxInt / limit
	}
	return Page{Number: number, Limit: limit}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// TotalPages returns ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
