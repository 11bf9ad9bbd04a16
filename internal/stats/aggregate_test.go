package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtratwatch/ratsinfo/internal/dataset"
)

func doc(content, submitted, completed, typ, by, dept string) dataset.Document {
	return dataset.Document{
		Content:     content,
		SubmittedAt: dataset.ParseDate(submitted),
		CompletedAt: dataset.ParseDate(completed),
		Type:        typ,
		SubmittedBy: by,
		Department:  dept,
	}
}

func TestMonthlyTrend(t *testing.T) {
	rows := dataset.Table{
		doc("Fahrrad Projekt", "2024-01-10", "", "Antrag", "CSU", ""),
		doc("Bus Linie", "2024-02-05", "", "Anfrage", "SPD, Grüne", ""),
		doc("Radweg", "2024-02-20", "", "Antrag", "Grüne", ""),
		doc("undatiert", "", "", "Antrag", "FDP", ""),
	}

	trend := MonthlyTrend(rows)
	require.Len(t, trend, 2)

	assert.Equal(t, "2024-01", trend[0].Month)
	assert.Equal(t, 1, trend[0].Count)
	assert.Equal(t, map[string]int{"Antrag": 1}, trend[0].ByType)

	assert.Equal(t, "2024-02", trend[1].Month)
	assert.Equal(t, 2, trend[1].Count)
	assert.Equal(t, map[string]int{"Anfrage": 1, "Antrag": 1}, trend[1].ByType)
}

func TestMonthlyTrendEmpty(t *testing.T) {
	assert.Empty(t, MonthlyTrend(nil))
	assert.Empty(t, MonthlyTrend(dataset.Table{doc("x", "", "", "", "", "")}))
}

func TestMonthlyTrendShare(t *testing.T) {
	all := dataset.Table{
		doc("a", "2024-01-01", "", "", "", ""),
		doc("b", "2024-01-02", "", "", "", ""),
		doc("c", "2024-02-01", "", "", "", ""),
	}
	matched := dataset.Table{all[0]}

	shares := MonthlyTrendShare(all, matched)
	require.Len(t, shares, 2)
	assert.Equal(t, MonthShare{Month: "2024-01", Count: 1, Total: 2, Share: 0.5}, shares[0])
	assert.Equal(t, MonthShare{Month: "2024-02", Count: 0, Total: 1, Share: 0}, shares[1])
}

func TestBySubmitterSplitsCoSubmitters(t *testing.T) {
	rows := dataset.Table{
		doc("Bus Linie", "2024-02-05", "", "Anfrage", "SPD, Grüne", ""),
		doc("Radweg", "2024-02-20", "", "Antrag", "Grüne", ""),
	}

	counts := BySubmitter(rows, "")
	require.Len(t, counts, 2)

	// Grüne is credited for both documents, once each.
	assert.Equal(t, "Grüne", counts[0].Name)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, map[string]int{"Anfrage": 1, "Antrag": 1}, counts[0].ByType)

	assert.Equal(t, "SPD", counts[1].Name)
	assert.Equal(t, 1, counts[1].Count)
}

func TestBySubmitterTrimsAndDropsBlanks(t *testing.T) {
	rows := dataset.Table{
		doc("x", "2024-01-01", "", "Antrag", " CSU ,  , FDP", ""),
	}
	counts := BySubmitter(rows, "")
	require.Len(t, counts, 2)
	assert.Equal(t, "CSU", counts[0].Name)
	assert.Equal(t, "FDP", counts[1].Name)
}

func TestBySubmitterCustomColumn(t *testing.T) {
	rows := dataset.Table{
		doc("x", "2024-01-01", "2024-02-01", "Antrag", "CSU", "Baureferat"),
		doc("y", "2024-01-02", "2024-02-01", "Antrag", "SPD", "Baureferat"),
	}
	counts := BySubmitter(rows, dataset.ColDepartment)
	require.Len(t, counts, 1)
	assert.Equal(t, "Baureferat", counts[0].Name)
	assert.Equal(t, 2, counts[0].Count)
}

func TestBySubmitterMissingColumn(t *testing.T) {
	rows := dataset.Table{doc("x", "2024-01-01", "", "Antrag", "CSU", "")}
	assert.Empty(t, BySubmitter(rows, "no_such_column"))
}

func TestSubmitterShares(t *testing.T) {
	all := dataset.Table{
		doc("a", "2024-01-01", "", "Antrag", "CSU", ""),
		doc("b", "2024-01-02", "", "Antrag", "CSU", ""),
		doc("c", "2024-01-03", "", "Antrag", "SPD, Grüne", ""),
		doc("d", "2024-01-04", "", "Antrag", "FDP", ""),
	}
	matched := dataset.Table{all[0], all[2]}

	shares := SubmitterShares(all, matched, "")
	require.Len(t, shares, 3)

	byName := make(map[string]SubmitterShare)
	for _, s := range shares {
		byName[s.Name] = s
	}
	assert.Equal(t, SubmitterShare{Name: "CSU", Count: 1, Total: 2, Share: 0.5}, byName["CSU"])
	assert.Equal(t, SubmitterShare{Name: "SPD", Count: 1, Total: 1, Share: 1}, byName["SPD"])
	assert.Equal(t, SubmitterShare{Name: "Grüne", Count: 1, Total: 1, Share: 1}, byName["Grüne"])

	// FDP has zero matches and is excluded.
	_, ok := byName["FDP"]
	assert.False(t, ok)

	// Sorted descending by share.
	assert.GreaterOrEqual(t, shares[0].Share, shares[1].Share)
	assert.GreaterOrEqual(t, shares[1].Share, shares[2].Share)
}

func TestSubmitterSharesBounds(t *testing.T) {
	all := dataset.Table{
		doc("a", "2024-01-01", "", "", "CSU", ""),
		doc("b", "2024-01-02", "", "", "CSU", ""),
	}
	shares := SubmitterShares(all, all, "")
	for _, s := range shares {
		assert.GreaterOrEqual(t, s.Share, 0.0)
		assert.LessOrEqual(t, s.Share, 1.0)
		assert.Positive(t, s.Count)
		assert.Positive(t, s.Total)
	}
}

func TestComputeDateRange(t *testing.T) {
	rows := dataset.Table{
		doc("a", "2024-03-01", "", "", "", ""),
		doc("b", "2023-12-24", "", "", "", ""),
		doc("c", "", "", "", "", ""),
	}
	r := ComputeDateRange(rows)
	require.NotNil(t, r.MinDate)
	require.NotNil(t, r.MaxDate)
	assert.Equal(t, "2023-12-24", *r.MinDate)
	assert.Equal(t, "2024-03-01", *r.MaxDate)
}

func TestComputeDateRangeNoValidDates(t *testing.T) {
	r := ComputeDateRange(dataset.Table{doc("a", "", "", "", "", "")})
	assert.Nil(t, r.MinDate)
	assert.Nil(t, r.MaxDate)
}

func TestAvailableTypes(t *testing.T) {
	rows := dataset.Table{
		doc("a", "", "", "Antrag", "", ""),
		doc("b", "", "", "Anfrage", "", ""),
		doc("c", "", "", "Antrag", "", ""),
		doc("d", "", "", "", "", ""),
	}
	assert.Equal(t, []string{"Anfrage", "Antrag"}, AvailableTypes(rows))
}

func TestSplitSubmitters(t *testing.T) {
	assert.Equal(t, []string{"SPD", "Grüne"}, SplitSubmitters("SPD, Grüne"))
	assert.Equal(t, []string{"CSU"}, SplitSubmitters("CSU"))
	assert.Nil(t, SplitSubmitters(" , "))
	assert.Nil(t, SplitSubmitters(""))
}
