package display

const (
	// GridCols is how many characters fit on one board line
	GridCols = 21

	// GridRows is how many lines fit on the board
	GridRows = 8
)

// Wrap slices text into successive lines of at most cols bytes and stops
// once rows lines are filled, the way a fixed character grid clips long
// output. Non-positive arguments fall back to the board dimensions.
func Wrap(text string, cols, rows int) []string {
	if cols <= 0 {
		cols = GridCols
	}
	if rows <= 0 {
		rows = GridRows
	}

	var lines []string
	for i := 0; i < len(text) && len(lines) < rows; i += cols {
		end := i + cols
		if end > len(text) {
			end = len(text)
		}
		lines = append(lines, text[i:end])
	}

	return lines
}
