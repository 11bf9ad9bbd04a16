package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtratwatch/ratsinfo/internal/dataset"
)

func TestProcessingMetricsPartition(t *testing.T) {
	rows := dataset.Table{
		doc("a", "2024-01-01", "2024-01-31", "Antrag", "CSU", "Baureferat"),
		doc("b", "2024-01-01", "2024-03-01", "Antrag", "SPD", "Baureferat"),
		doc("c", "2024-02-01", "", "Anfrage", "FDP", ""),
	}

	m := ComputeProcessingMetrics(rows)
	assert.Equal(t, 3, m.TotalCount)
	assert.Equal(t, 1, m.OpenCount)
	assert.Equal(t, 2, m.ClosedCount)
	assert.Equal(t, m.TotalCount, m.OpenCount+m.ClosedCount)

	require.NotNil(t, m.AvgDays)
	// (30 + 60) / 2
	assert.InDelta(t, 45.0, *m.AvgDays, 0.001)
}

func TestProcessingMetricsNoClosedRows(t *testing.T) {
	rows := dataset.Table{
		doc("a", "2024-01-01", "", "Antrag", "CSU", ""),
	}
	m := ComputeProcessingMetrics(rows)
	assert.Nil(t, m.AvgDays)
	assert.Equal(t, 1, m.OpenCount)
	assert.Zero(t, m.ClosedCount)
	assert.Empty(t, m.ByDepartment)
}

func TestProcessingMetricsEmpty(t *testing.T) {
	m := ComputeProcessingMetrics(nil)
	assert.Nil(t, m.AvgDays)
	assert.Zero(t, m.TotalCount)
	assert.NotNil(t, m.ByDepartment)
}

func TestProcessingMetricsByDepartment(t *testing.T) {
	rows := dataset.Table{
		doc("a", "2024-01-01", "2024-01-11", "Antrag", "CSU", "Baureferat"),
		doc("b", "2024-01-01", "2024-01-21", "Anfrage", "SPD", "Baureferat"),
		doc("c", "2024-01-01", "2024-03-01", "Antrag", "FDP", "Sozialreferat"),
	}

	m := ComputeProcessingMetrics(rows)
	require.Len(t, m.ByDepartment, 2)

	// Sorted descending by mean duration.
	assert.Equal(t, "Sozialreferat", m.ByDepartment[0].Department)
	assert.InDelta(t, 60.0, m.ByDepartment[0].AvgDays, 0.001)
	assert.Equal(t, 1, m.ByDepartment[0].Count)

	assert.Equal(t, "Baureferat", m.ByDepartment[1].Department)
	assert.InDelta(t, 15.0, m.ByDepartment[1].AvgDays, 0.001)
	assert.Equal(t, 2, m.ByDepartment[1].Count)
	assert.Equal(t, map[string]int{"Antrag": 1, "Anfrage": 1}, m.ByDepartment[1].ByType)
}

func TestProcessingMetricsMissingDepartment(t *testing.T) {
	rows := dataset.Table{
		doc("a", "2024-01-01", "2024-01-11", "Antrag", "CSU", ""),
	}
	m := ComputeProcessingMetrics(rows)
	assert.Equal(t, 1, m.ClosedCount)
	// No department column value: the breakdown is omitted, not an error.
	assert.Empty(t, m.ByDepartment)
	require.NotNil(t, m.AvgDays)
	assert.InDelta(t, 10.0, *m.AvgDays, 0.001)
}

func TestProcessingMetricsWholeDays(t *testing.T) {
	rows := dataset.Table{
		doc("a", "2024-01-01", "2024-01-02", "", "", ""),
	}
	m := ComputeProcessingMetrics(rows)
	require.NotNil(t, m.AvgDays)
	assert.InDelta(t, 1.0, *m.AvgDays, 0.001)
}
