package dataset

import (
	"encoding/json"
	"time"
)

// Column names as they appear in the crawled CSV export.
const (
	ColContent    = "document_content"
	ColSubmitted  = "Gestellt am"
	ColCompleted  = "Erledigt am"
	ColType       = "Typ"
	ColSubmitter  = "Gestellt von"
	ColDepartment = "Zuständiges Referat"
	ColLink       = "document_link"
	ColName       = "document_name"
)

// Document is one proposal/inquiry row of the dataset.
// SubmittedAt and CompletedAt are nil when the raw value is missing or
// unparseable. Extra carries pass-through columns the engine does not
// interpret.
type Document struct {
	Content     string
	SubmittedAt *time.Time
	CompletedAt *time.Time
	Type        string
	SubmittedBy string
	Department  string
	Link        string
	Name        string
	Extra       map[string]string

	// Themes is filled by the query engine when theme annotation is
	// requested; empty otherwise.
	Themes []string
}

// Table is an ordered set of documents. After loading it is sorted by
// SubmittedAt ascending with nil dates last.
type Table []Document

// DateLayouts are the accepted raw formats for the date columns. The
// crawler writes ISO dates; dotted German dates show up in older exports.
var DateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02.01.2006",
	time.RFC3339,
}

// ParseDate parses a raw date cell. Returns nil for blank or unparseable
// values. Parsing an already-formatted date yields the same instant.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate renders a date the way the CSV and the JSON API expect it.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// Clone returns a deep copy of the table. Callers of the cache receive
// clones so no caller can mutate the shared snapshot.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, d := range t {
		if d.SubmittedAt != nil {
			v := *d.SubmittedAt
			d.SubmittedAt = &v
		}
		if d.CompletedAt != nil {
			v := *d.CompletedAt
			d.CompletedAt = &v
		}
		if d.Extra != nil {
			extra := make(map[string]string, len(d.Extra))
			for k, v := range d.Extra {
				extra[k] = v
			}
			d.Extra = extra
		}
		if d.Themes != nil {
			d.Themes = append([]string(nil), d.Themes...)
		}
		out[i] = d
	}
	return out
}

// Get returns the value of a column by its CSV name, consulting the typed
// fields first and the pass-through columns second.
func (d Document) Get(column string) string {
	switch column {
	case ColContent:
		return d.Content
	case ColSubmitted:
		return FormatDate(d.SubmittedAt)
	case ColCompleted:
		return FormatDate(d.CompletedAt)
	case ColType:
		return d.Type
	case ColSubmitter:
		return d.SubmittedBy
	case ColDepartment:
		return d.Department
	case ColLink:
		return d.Link
	case ColName:
		return d.Name
	}
	return d.Extra[column]
}

// MarshalJSON flattens a document to the record shape the web frontend
// consumes: original CSV column names, ISO dates, null for missing dates.
func (d Document) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 8+len(d.Extra))
	for k, v := range d.Extra {
		m[k] = v
	}
	m[ColContent] = d.Content
	m[ColType] = d.Type
	m[ColSubmitter] = d.SubmittedBy
	m[ColDepartment] = d.Department
	m[ColLink] = d.Link
	m[ColName] = d.Name
	if d.SubmittedAt != nil {
		m[ColSubmitted] = FormatDate(d.SubmittedAt)
	} else {
		m[ColSubmitted] = nil
	}
	if d.CompletedAt != nil {
		m[ColCompleted] = FormatDate(d.CompletedAt)
	} else {
		m[ColCompleted] = nil
	}
	if d.Themes != nil {
		m["themes"] = d.Themes
	}
	return json.Marshal(m)
}
