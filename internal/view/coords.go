package view

// Cell is a display-space square: Col 0 is the left edge, Row 0 the top.
type Cell struct {
	Col, Row int
}

const (
	fileLetters = "abcdefgh"
	rankDigits  = "12345678"
)

// LogicalToScreen returns the screen cell that shows the square at
// (file, rank) under the given orientation.
func LogicalToScreen(file, rank int, whiteBottom bool) Cell {
	if whiteBottom {
		return Cell{Col: file, Row: 7 - rank}
	}
	return Cell{Col: 7 - file, Row: rank}
}

// ScreenToLogical is the inverse of LogicalToScreen.
func ScreenToLogical(c Cell, whiteBottom bool) (file, rank int) {
	return ScreenToFile(c.Col, whiteBottom), ScreenToRank(c.Row, whiteBottom)
}

// ScreenToFile returns the board file shown in screen column col.
func ScreenToFile(col int, whiteBottom bool) int {
	if whiteBottom {
		return col
	}
	return 7 - col
}

// ScreenToRank returns the board rank shown in screen row row.
func ScreenToRank(row int, whiteBottom bool) int {
	if whiteBottom {
		return 7 - row
	}
	return row
}

// IsDark reports whether the square at logical (file, rank) is drawn
// with the dark fill: exactly the squares whose coordinates sum to an
// odd number.
func IsDark(file, rank int) bool {
	return (file+rank)%2 != 0
}

// FileLabel returns the letter for a file index, or "" if out of range.
func FileLabel(file int) string {
	if file < 0 || file > 7 {
		return ""
	}
	return fileLetters[file : file+1]
}

// RankLabel returns the digit for a rank index, or "" if out of range.
func RankLabel(rank int) string {
	if rank < 0 || rank > 7 {
		return ""
	}
	return rankDigits[rank : rank+1]
}

// HasFileLabel reports whether a cell carries a file letter: only the
// bottom screen row does.
func HasFileLabel(c Cell) bool {
	return c.Row == 7
}

// HasRankLabel reports whether a cell carries a rank digit: only the
// rightmost screen column does.
func HasRankLabel(c Cell) bool {
	return c.Col == 7
}
