package render

// DefaultBias is the number of rows the fact column is lifted above the art's
// vertical midpoint. It is tuned for the bundled art, where the first two
// registry rows (host line and delimiter) sit above the first detail row.
const DefaultBias = 6

// Offset returns the signed shift between art rows and registry positions:
// floor(height/2) - bias. Registry entry k is drawn on art row k+offset.
func Offset(height, bias int) int {
	half := height / 2
	// Go truncates toward zero; floor for negative odd heights.
	if height < 0 && height%2 != 0 {
		half--
	}
	return half - bias
}

// EntryIndex returns the registry position drawn on art row row. The result
// may be negative or past the end of the registry; both mean a blank row.
func EntryIndex(row, offset int) int {
	return row - offset
}
