// Package stats turns matched-document sets into time-series and grouped
// statistics. Every function is pure: no cross-call state, no mutation of
// its input.
package stats

import (
	"sort"
	"strings"

	"github.com/stadtratwatch/ratsinfo/internal/dataset"
)

// MonthlyTrend buckets documents by submission month (YYYY-MM), dropping
// rows without a valid submission date, and reports per-month totals with
// a per-type breakdown, sorted by month ascending.
func MonthlyTrend(rows dataset.Table) []MonthBucket {
	buckets := make(map[string]*MonthBucket)
	for i := range rows {
		if rows[i].SubmittedAt == nil {
			continue
		}
		month := rows[i].SubmittedAt.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &MonthBucket{Month: month, ByType: make(map[string]int)}
			buckets[month] = b
		}
		b.Count++
		if rows[i].Type != "" {
			b.ByType[rows[i].Type]++
		}
	}

	out := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// MonthlyTrendShare reports, per month of the filtered dataset, how many
// documents match the query and which fraction of the month's total that
// is. Months without any dated document are absent.
func MonthlyTrendShare(all, matched dataset.Table) []MonthShare {
	totals := make(map[string]int)
	for i := range all {
		if all[i].SubmittedAt == nil {
			continue
		}
		totals[all[i].SubmittedAt.Format("2006-01")]++
	}
	counts := make(map[string]int)
	for i := range matched {
		if matched[i].SubmittedAt == nil {
			continue
		}
		counts[matched[i].SubmittedAt.Format("2006-01")]++
	}

	out := make([]MonthShare, 0, len(totals))
	for month, total := range totals {
		if total == 0 {
			continue
		}
		count := counts[month]
		out = append(out, MonthShare{
			Month: month,
			Count: count,
			Total: total,
			Share: float64(count) / float64(total),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// SplitSubmitters splits a raw group-column value on commas and trims the
// parts, so one document with three listed co-submitters contributes to
// three buckets. Blank parts are dropped.
func SplitSubmitters(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// groupValue reads the grouping column of a document. Blank means the
// submitter column.
func groupValue(d dataset.Document, column string) string {
	if column == "" {
		return d.SubmittedBy
	}
	return d.Get(column)
}

// BySubmitter counts matched documents per individual submitter with a
// per-type breakdown, sorted descending by count; ties are broken by name
// ascending so the order is stable.
func BySubmitter(rows dataset.Table, column string) []SubmitterCount {
	counts := make(map[string]*SubmitterCount)
	for i := range rows {
		for _, name := range SplitSubmitters(groupValue(rows[i], column)) {
			c, ok := counts[name]
			if !ok {
				c = &SubmitterCount{Name: name, ByType: make(map[string]int)}
				counts[name] = c
			}
			c.Count++
			if rows[i].Type != "" {
				c.ByType[rows[i].Type]++
			}
		}
	}

	out := make([]SubmitterCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SubmitterShares computes, for every submitter with at least one match,
// the fraction of their total involvement in the filtered dataset that
// the matched set covers. Submitters with zero matches or zero total are
// excluded, which also rules out division by zero. Sorted descending by
// share, ties by name ascending.
func SubmitterShares(all, matched dataset.Table, column string) []SubmitterShare {
	totals := make(map[string]int)
	for i := range all {
		for _, name := range SplitSubmitters(groupValue(all[i], column)) {
			totals[name]++
		}
	}
	counts := make(map[string]int)
	for i := range matched {
		for _, name := range SplitSubmitters(groupValue(matched[i], column)) {
			counts[name]++
		}
	}

	out := make([]SubmitterShare, 0, len(counts))
	for name, count := range counts {
		total := totals[name]
		if count == 0 || total == 0 {
			continue
		}
		out = append(out, SubmitterShare{
			Name:  name,
			Count: count,
			Total: total,
			Share: float64(count) / float64(total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Share != out[j].Share {
			return out[i].Share > out[j].Share
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ComputeDateRange returns the min and max submission dates over the full
// dataset, ignoring undated rows.
func ComputeDateRange(rows dataset.Table) DateRange {
	var min, max *string
	for i := range rows {
		t := rows[i].SubmittedAt
		if t == nil {
			continue
		}
		s := dataset.FormatDate(t)
		if min == nil || s < *min {
			v := s
			min = &v
		}
		if max == nil || s > *max {
			v := s
			max = &v
		}
	}
	return DateRange{MinDate: min, MaxDate: max}
}

// AvailableTypes returns the distinct non-empty Typ values, sorted.
func AvailableTypes(rows dataset.Table) []string {
	seen := make(map[string]bool)
	for i := range rows {
		if rows[i].Type != "" {
			seen[rows[i].Type] = true
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
