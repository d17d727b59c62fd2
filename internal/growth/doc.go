// Package growth provides the exponential growth calculator for bacterial
// populations and the helpers used to present its numbers.
//
// The package is built around a handful of pure operations:
//
//   - [Model.ComputeGrowth]: population, biomass and doublings after a time
//   - [Model.GenerateSeries]: evenly spaced samples for charts and CSV export
//   - [CompareToReference]: magnitude of a mass against a reference body
//   - [Formatter.FormatScientific]: display strings in scientific or grouped form
//
// # Example
//
//	m := growth.Default()
//	res, err := m.ComputeGrowth(24*60, 20, 1)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(growth.FormatScientific(res.TotalMassKg), "kg")
//
// # Thread Safety
//
// A [Model] is immutable once constructed and every operation is a pure
// function of its inputs, so a single Model may be shared by any number of
// goroutines.
package growth
