package board

// Direction is one of the eight compass rays a sliding piece can travel.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var directionOffsets = [8]int{8, -8, 1, -1, 9, 7, -7, -9}

var (
	orthogonalDirections = [4]Direction{North, South, East, West}
	diagonalDirections   = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	allDirections        = [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
)

// Offset is the square-index delta of one step in d.
func (d Direction) Offset() int {
	return directionOffsets[d]
}

func (d Direction) String() string {
	return [...]string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"}[d]
}

// edgeDistances[sq][d] counts the squares between sq and the board edge in d.
// Filled once at package initialisation; never written afterwards.
var edgeDistances = computeEdgeDistances()

func computeEdgeDistances() [64][8]int {
	var t [64][8]int
	for sq := A1; sq <= H8; sq++ {
		file, rank := sq.File(), sq.Rank()
		n, s := 7-rank, rank
		e, w := 7-file, file
		t[sq] = [8]int{
			North:     n,
			South:     s,
			East:      e,
			West:      w,
			NorthEast: min(n, e),
			NorthWest: min(n, w),
			SouthEast: min(s, e),
			SouthWest: min(s, w),
		}
	}
	return t
}

// EdgeDistance returns how many steps in d stay on the board from sq.
func EdgeDistance(sq Square, d Direction) int {
	return edgeDistances[sq][d]
}
