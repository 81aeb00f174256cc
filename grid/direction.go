package grid

// Direction is one of the eight compass directions, numbered clockwise from North.
// The four cardinal directions occupy the even values.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

const numDirections = 8

// Cardinal lists the orthogonal directions clockwise from North.
var Cardinal = [4]Direction{North, East, South, West}

// Compass lists all eight directions clockwise from North.
var Compass = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var deltas = [numDirections]Pos{
	North:     {Row: -1, Col: 0},
	NorthEast: {Row: -1, Col: 1},
	East:      {Row: 0, Col: 1},
	SouthEast: {Row: 1, Col: 1},
	South:     {Row: 1, Col: 0},
	SouthWest: {Row: 1, Col: -1},
	West:      {Row: 0, Col: -1},
	NorthWest: {Row: -1, Col: -1},
}

var names = [numDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Delta returns the unit offset of d.
func (d Direction) Delta() Pos { return deltas[d%numDirections] }

// Step moves p one cell in direction d. It does no bounds checking; that is
// the grid's job.
func (d Direction) Step(p Pos) Pos { return p.Add(d.Delta()) }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return (d + 4) % numDirections }

// TurnRight rotates d by 90° clockwise.
func (d Direction) TurnRight() Direction { return (d + 2) % numDirections }

// TurnLeft rotates d by 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 6) % numDirections }

// IsCardinal reports whether d is one of North, East, South, West.
func (d Direction) IsCardinal() bool { return d%2 == 0 }

// IsVertical reports whether d is North or South.
func (d Direction) IsVertical() bool { return d == North || d == South }

func (d Direction) String() string {
	if d >= numDirections {
		return "?"
	}
	return names[d]
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Directions returns the directions c connects, clockwise from North.
func (c Connectivity) Directions() []Direction {
	if c == Conn8 {
		return Compass[:]
	}
	return Cardinal[:]
}
