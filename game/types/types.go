package types

// Point is a grid coordinate. (0,0) is the top-left tile.
type Point struct {
	X, Y int
}

// Add returns p moved by d's unit vector.
func (p Point) Add(d Direction) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the number of tiles on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is a cardinal heading.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into a unit movement vector.
// Up decreases Y (screen coordinates).
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// State is the engine lifecycle state.
type State int

const (
	Ready State = iota
	Running
	Paused
	Over
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	// BoardFull ends a run when no free tile is left for food.
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// Game constants
const (
	TileCount   = 20 // Tiles per side
	TileSize    = 20 // Pixels per tile
	MinGridSize = 6  // Smallest side that fits the start strip and food

	StartLength = 3
	FoodReward  = 10

	InitialSpeed   = 7.0 // Ticks per second
	SpeedStepScore = 50  // Speed increases every SpeedStepScore points
	SpeedIncrement = 0.5
)

// StartPosition is the head of the initial vertical strip.
var StartPosition = Point{X: 10, Y: 10}
