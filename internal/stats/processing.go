package stats

import (
	"sort"

	"github.com/stadtratwatch/ratsinfo/internal/dataset"
)

// processingDays is the whole-day turnaround of a closed document, defined
// only when both dates parsed.
func processingDays(d dataset.Document) (int, bool) {
	if d.SubmittedAt == nil || d.CompletedAt == nil {
		return 0, false
	}
	return int(d.CompletedAt.Sub(*d.SubmittedAt).Hours() / 24), true
}

// ComputeProcessingMetrics partitions the matched set into open and closed
// documents, computes the mean turnaround over the closed ones and a
// per-department breakdown sorted descending by mean duration. A dataset
// without a department column yields an empty breakdown, not an error.
func ComputeProcessingMetrics(rows dataset.Table) ProcessingMetrics {
	m := ProcessingMetrics{
		TotalCount:   len(rows),
		ByDepartment: []DepartmentMetrics{},
	}

	type deptAgg struct {
		sum    int
		n      int
		count  int
		byType map[string]int
	}
	depts := make(map[string]*deptAgg)

	var sum, n int
	for i := range rows {
		if rows[i].CompletedAt == nil {
			m.OpenCount++
			continue
		}
		m.ClosedCount++

		days, ok := processingDays(rows[i])
		if ok {
			sum += days
			n++
		}

		dept := rows[i].Department
		if dept == "" {
			continue
		}
		a, exists := depts[dept]
		if !exists {
			a = &deptAgg{byType: make(map[string]int)}
			depts[dept] = a
		}
		a.count++
		if ok {
			a.sum += days
			a.n++
		}
		if rows[i].Type != "" {
			a.byType[rows[i].Type]++
		}
	}

	if n > 0 {
		avg := float64(sum) / float64(n)
		m.AvgDays = &avg
	}

	for dept, a := range depts {
		dm := DepartmentMetrics{Department: dept, Count: a.count, ByType: a.byType}
		if a.n > 0 {
			dm.AvgDays = float64(a.sum) / float64(a.n)
		}
		m.ByDepartment = append(m.ByDepartment, dm)
	}
	sort.Slice(m.ByDepartment, func(i, j int) bool {
		if m.ByDepartment[i].AvgDays != m.ByDepartment[j].AvgDays {
			return m.ByDepartment[i].AvgDays > m.ByDepartment[j].AvgDays
		}
		return m.ByDepartment[i].Department < m.ByDepartment[j].Department
	})
	return m
}
