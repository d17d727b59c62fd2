package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/san-kum/bactogrowth/internal/growth"
)

var minutesPerHour = decimal.NewFromInt(60)

// CSVHeader is the column header of exported series. Spreadsheets built from
// the classroom page depend on its exact text and order.
var CSVHeader = []string{"Tiempo (horas)", "Tiempo (días)", "Población", "Masa (kg)", "Divisiones"}

// CSVFileName is the file name the classroom page downloads exports as.
const CSVFileName = "simulacion_crecimiento_bacteriano.csv"

// WriteCSV writes samples with CSVHeader as the first row.
func WriteCSV(w io.Writer, samples []growth.Sample) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			formatFloat(growth.MinutesToHours(s.ElapsedMinutes)),
			formatFloat(growth.MinutesToDays(s.ElapsedMinutes)),
			formatFloat(s.FinalPopulation),
			formatFloat(s.TotalMassKg),
			formatFloat(s.Doublings),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file produced by WriteCSV back into samples.
func ReadCSV(r io.Reader) ([]growth.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: missing header")
	}
	for i, name := range CSVHeader {
		if records[0][i] != name {
			return nil, fmt.Errorf("csv: column %d is %q, want %q", i+1, records[0][i], name)
		}
	}

	samples := make([]growth.Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		vals := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		samples = append(samples, growth.Sample{
			ElapsedMinutes: hoursToMinutes(vals[0]),
			Result: growth.Result{
				FinalPopulation: vals[2],
				TotalMassKg:     vals[3],
				Doublings:       vals[4],
			},
		})
	}
	return samples, nil
}

// hoursToMinutes multiplies the shortest decimal form of hours, the text
// WriteCSV wrote, so 33.12 h reads back as 1987.2 min rather than a float
// product one ulp away.
func hoursToMinutes(hours float64) float64 {
	return decimal.NewFromFloat(hours).Mul(minutesPerHour).InexactFloat64()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
