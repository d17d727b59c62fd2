// Package viz renders growth results for the terminal.
//
// Charts are drawn with asciigraph on log10-transformed values, since a
// colony spans dozens of orders of magnitude within a day:
//
//   - [GrowthChart]: population or mass of one series
//   - [MultiChart]: one line per doubling interval, with a legend
//   - [ResultPanel]: lipgloss panel summarising a single computation
//
// Colours come from the current [Theme]; see [SetTheme].
package viz
