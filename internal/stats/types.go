package stats

// MonthBucket is one month of the trend aggregation.
type MonthBucket struct {
	Month  string         `json:"month"`
	Count  int            `json:"count"`
	ByType map[string]int `json:"typeBreakdown"`
}

// MonthShare is one month of the trend-share aggregation: the fraction of
// all filtered documents of that month that match the query.
type MonthShare struct {
	Month string  `json:"month"`
	Count int     `json:"count"`
	Total int     `json:"total"`
	Share float64 `json:"share"`
}

// SubmitterCount is the matched-document count of one faction or person.
type SubmitterCount struct {
	Name   string         `json:"name"`
	Count  int            `json:"count"`
	ByType map[string]int `json:"typeBreakdown"`
}

// SubmitterShare is the fraction of a submitter's total document
// involvement that matches the current query.
type SubmitterShare struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total int     `json:"total"`
	Share float64 `json:"share"`
}

// DepartmentMetrics is the processing-time breakdown of one department.
// The JSON field names keep the shape the frontend consumes.
type DepartmentMetrics struct {
	Department string         `json:"referat"`
	AvgDays    float64        `json:"avgDays"`
	Count      int            `json:"count"`
	ByType     map[string]int `json:"typeBreakdown"`
}

// ProcessingMetrics summarises turnaround over a matched-document set.
// AvgDays is nil exactly when no closed documents exist.
type ProcessingMetrics struct {
	AvgDays      *float64            `json:"avgDays"`
	OpenCount    int                 `json:"openCount"`
	ClosedCount  int                 `json:"closedCount"`
	TotalCount   int                 `json:"totalCount"`
	ByDepartment []DepartmentMetrics `json:"byReferat"`
}

// DateRange is the span of submission dates in a dataset, as YYYY-MM-DD
// strings. Both bounds are nil when no row has a valid date.
type DateRange struct {
	MinDate *string `json:"minDate"`
	MaxDate *string `json:"maxDate"`
}
