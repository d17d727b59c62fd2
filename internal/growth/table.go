package growth

import (
	"fmt"
	"time"
)

// TableRow is one line of a wall-clock doubling table.
type TableRow struct {
	Clock      string  `json:"clock"`
	Interval   int     `json:"interval"`
	Population float64 `json:"population"`
	MassKg     float64 `json:"mass_kg"`
}

// DoublingTable lists the colony after each whole doubling interval,
// starting at start and labelling every row with its wall-clock time.
func (m *Model) DoublingTable(start time.Time, interval time.Duration, initialPopulation float64, rows int) ([]TableRow, error) {
	if interval <= 0 {
		return nil, opError("table", ErrInvalidInput, "interval must be positive, got %s", interval)
	}
	if rows < 1 {
		return nil, opError("table", ErrInvalidInput, "rows must be at least 1, got %d", rows)
	}

	minutes := interval.Minutes()
	table := make([]TableRow, 0, rows)
	for i := 0; i < rows; i++ {
		res, err := m.ComputeGrowth(float64(i)*minutes, minutes, initialPopulation)
		if err != nil {
			return nil, err
		}
		at := start.Add(time.Duration(i) * interval)
		table = append(table, TableRow{
			Clock:      fmt.Sprintf("%d:%02d", at.Hour(), at.Minute()),
			Interval:   i,
			Population: res.FinalPopulation,
			MassKg:     res.TotalMassKg,
		})
	}
	return table, nil
}
