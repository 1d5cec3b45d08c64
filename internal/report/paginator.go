// Package report chunks a watch timetable's slot list into fixed-capacity,
// self-contained printable pages. The package stops at correct partitioning;
// rendering pages to a shareable document format is an external collaborator's
// job.
package report

import (
	"fmt"

	"github.com/crewdeck/backend/internal/domain"
)

// DefaultPageCapacity is the number of slot rows per printed page.
// Overridable via the REPORT_PAGE_SIZE configuration value.
const DefaultPageCapacity = 30

// PageHeader is the metadata repeated on every page so a single page remains
// readable if separated from the rest of the report.
type PageHeader struct {
	WatchTitle    string
	ForDate       domain.Date
	StartTime     string
	StartLocation string
	Destination   string
}

// Page is one printable chunk of a watch report.
// Footer is the "Page X of N" line, empty for single-page reports.
type Page struct {
	Header PageHeader
	Rows   []domain.TimetableSlot
	Footer string
}

// Paginate splits slots into pages of at most capacity rows.
//
// The split is a lossless partition: concatenating every page's rows in order
// reproduces slots exactly. Capacity is a fixed configuration value, never
// adapted to content; values below 1 fall back to DefaultPageCapacity.
//
// An empty slot list yields exactly one page with no rows — a watch bill with
// no assignments still prints its header sheet.
func Paginate(header PageHeader, slots []domain.TimetableSlot, capacity int) []Page {
	if capacity < 1 {
		capacity = DefaultPageCapacity
	}

	total := (len(slots) + capacity - 1) / capacity
	if total == 0 {
		total = 1
	}

	pages := make([]Page, 0, total)
	for i := 0; i < total; i++ {
		start := i * capacity
		end := start + capacity
		if end > len(slots) {
			end = len(slots)
		}

		p := Page{Header: header, Rows: slots[start:end]}
		if total > 1 {
			p.Footer = fmt.Sprintf("Page %d of %d", i+1, total)
		}
		pages = append(pages, p)
	}
	return pages
}
