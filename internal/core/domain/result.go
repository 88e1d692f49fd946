package domain

import (
	"fmt"
	"time"
)

// ContentResult is the outcome of one content endpoint call.
// Content is nil when the response was empty or could not be parsed.
type ContentResult[T any] struct {
	Raw     *RawPayload `json:"raw,omitempty" yaml:"raw,omitempty"`
	Content *T          `json:"content,omitempty" yaml:"content,omitempty"`
}

// IsEmpty reports whether no typed content was produced.
func (r ContentResult[T]) IsEmpty() bool {
	return r.Content == nil
}

// ListResult is one page of a list endpoint.
type ListResult[T any] struct {
	Raw        *RawPayload `json:"raw,omitempty" yaml:"raw,omitempty"`
	Items      []T         `json:"items" yaml:"items"`
	TotalCount int         `json:"total_count" yaml:"total_count"`
	Page       int         `json:"page" yaml:"page"`
	Display    int         `json:"display" yaml:"display"`
}

// TotalPages returns the number of pages at the current page size.
func (r ListResult[T]) TotalPages() int {
	if r.Display <= 0 {
		return 0
	}
	return (r.TotalCount + r.Display - 1) / r.Display
}

// HasNextPage reports whether another page follows this one.
func (r ListResult[T]) HasNextPage() bool {
	return r.Page < r.TotalPages()
}

// DateLayout is the compact date layout used by every endpoint.
const DateLayout = "20060102"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// String formats the range the way list endpoints expect it ("from~to").
func (r DateRange) String() string {
	return r.From.Format(DateLayout) + "~" + r.To.Format(DateLayout)
}

// SplitDateRange splits [from, to] (YYYYMMDD) into consecutive chunks of at
// most days days each. The last chunk may be shorter.
func SplitDateRange(from, to string, days int) ([]DateRange, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: chunk days must be positive", ErrInvalidInput)
	}
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("%w: from date %q", ErrInvalidInput, from)
	}
	end, err := time.Parse(DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("%w: to date %q", ErrInvalidInput, to)
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: from date after to date", ErrInvalidInput)
	}

	var ranges []DateRange
	for current := start; !current.After(end); {
		chunkEnd := current.AddDate(0, 0, days-1)
		if chunkEnd.After(end) {
			chunkEnd = end
		}
		ranges = append(ranges, DateRange{From: current, To: chunkEnd})
		current = chunkEnd.AddDate(0, 0, 1)
	}
	return ranges, nil
}
