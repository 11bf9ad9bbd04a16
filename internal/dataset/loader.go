package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
)

// neededColumns is the set the engine and aggregators consume. When all of
// them are present in the header, other columns are dropped on load; when
// any is missing the loader keeps every column in Extra instead, so a
// schema drift loses nothing.
var neededColumns = map[string]bool{
	ColContent:    true,
	ColSubmitted:  true,
	ColCompleted:  true,
	ColType:       true,
	ColSubmitter:  true,
	ColDepartment: true,
	ColLink:       true,
	ColName:       true,
}

// ReadFile loads the CSV at path into a Table sorted by submission date
// ascending, nil dates last.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return table, nil
}

// Read parses CSV data from r into a sorted Table.
func Read(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	pruned := true
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[h] = true
	}
	for col := range neededColumns {
		if !seen[col] {
			pruned = false
			break
		}
	}

	var table Table
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, skip it.
			continue
		}

		var doc Document
		for i, val := range row {
			if i >= len(header) {
				break
			}
			switch col := header[i]; col {
			case ColContent:
				doc.Content = val
			case ColSubmitted:
				doc.SubmittedAt = ParseDate(val)
			case ColCompleted:
				doc.CompletedAt = ParseDate(val)
			case ColType:
				doc.Type = val
			case ColSubmitter:
				doc.SubmittedBy = val
			case ColDepartment:
				doc.Department = val
			case ColLink:
				doc.Link = val
			case ColName:
				doc.Name = val
			default:
				if !pruned {
					if doc.Extra == nil {
						doc.Extra = make(map[string]string)
					}
					doc.Extra[col] = val
				}
			}
		}
		table = append(table, doc)
	}

	Sort(table)
	return table, nil
}

// Sort orders the table by submission date ascending with nil dates last.
// The sort is stable so the file order of same-day rows is kept.
func Sort(t Table) {
	sort.SliceStable(t, func(i, j int) bool {
		a, b := t[i].SubmittedAt, t[j].SubmittedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}

// IsSorted reports whether the table satisfies the Sort order.
func IsSorted(t Table) bool {
	return sort.SliceIsSorted(t, func(i, j int) bool {
		a, b := t[i].SubmittedAt, t[j].SubmittedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}
