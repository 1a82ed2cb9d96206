package piece

import "gameboard/internal/core"

// pathClear reports whether every square strictly between from and to is
// empty, stepping by the unit direction vector. Callers guarantee the two
// squares share a row, a column or a diagonal.
func pathClear(occ Occupancy, from, to core.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := core.Square{Row: from.Row + rowDir, Col: from.Col + colDir}
	for sq != to {
		if !occ.At(sq).IsEmpty() {
			return false
		}
		sq.Row += rowDir
		sq.Col += colDir
	}
	return true
}

func straight(occ Occupancy, from, to core.Square, dr, dc int) bool {
	if (dr == 0) == (dc == 0) {
		return false
	}
	return pathClear(occ, from, to)
}

func diagonal(occ Occupancy, from, to core.Square, dr, dc int) bool {
	if dr == 0 || abs(dr) != abs(dc) {
		return false
	}
	return pathClear(occ, from, to)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
