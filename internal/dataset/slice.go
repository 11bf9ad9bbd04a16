package dataset

import "sort"

// SliceByDate returns the contiguous window of a date-sorted table whose
// submission dates satisfy [from, to]. Bounds are inclusive whole days;
// a blank or unparseable bound is ignored. With no effective bound the
// full table is returned, including rows without a submission date; with
// any bound the window is confined to the dated prefix, since a row
// without a date cannot satisfy a bound.
func SliceByDate(t Table, from, to string) Table {
	fromT := ParseDate(from)
	toT := ParseDate(to)
	if fromT == nil && toT == nil {
		return t
	}

	if !IsSorted(t) {
		// Not the common path: loaders sort once. Re-sort a copy so the
		// caller's slice stays untouched.
		t = t.Clone()
		Sort(t)
	}

	// Dated prefix ends at the first nil submission date.
	n := sort.Search(len(t), func(i int) bool {
		return t[i].SubmittedAt == nil
	})

	lo, hi := 0, n
	if fromT != nil {
		lo = sort.Search(n, func(i int) bool {
			return !t[i].SubmittedAt.Before(*fromT)
		})
	}
	if toT != nil {
		end := toT.AddDate(0, 0, 1)
		hi = sort.Search(n, func(i int) bool {
			return !t[i].SubmittedAt.Before(end)
		})
	}
	if lo >= hi {
		return Table{}
	}
	return t[lo:hi]
}
