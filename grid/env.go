package grid

import (
	"fmt"
	"time"

	"github.com/tabrl/tabrl/rl"
	"golang.org/x/exp/rand"
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Cell is the state descriptor of the grid world
type Cell struct {
	I int `json:"i"`
	J int `json:"j"`
}

var _ rl.Trait[Cell] = Cell{}

func (c Cell) Hash() string {
	return fmt.Sprintf("(%d, %d)", c.I, c.J)
}

func (c Cell) Equal(other Cell) bool {
	return c.I == other.I && c.J == other.J
}

func (c Cell) Less(other Cell) bool {
	if c.I != other.I {
		return c.I < other.I
	}
	return c.J < other.J
}

// Move is the action descriptor of the grid world
type Move struct {
	Direction string `json:"direction"`
}

var _ rl.Trait[Move] = Move{}

func (m Move) Hash() string {
	return m.Direction
}

func (m Move) Equal(other Move) bool {
	return m.Direction == other.Direction
}

func (m Move) Less(other Move) bool {
	return m.Direction < other.Direction
}

var (
	MoveUp    = Move{"Up"}
	MoveDown  = Move{"Down"}
	MoveLeft  = Move{"Left"}
	MoveRight = Move{"Right"}
	NoMove    = Move{"Nothing"}

	AllMoves = []Move{MoveUp, MoveDown, MoveLeft, MoveRight, NoMove}
)

// Environment is a single-room grid world. The agent starts at (0,0)
// and the episode terminates on the goal cell, which carries the goal
// reward. With Slip > 0 a move is replaced by a uniformly random one
// with that probability, which makes transitions stochastic and gives
// the frequency-based learner something to estimate.
type Environment struct {
	Height     int
	Width      int
	Goal       Cell
	GoalReward float64
	Slip       float64

	cur  Cell
	rand *rand.Rand
}

var _ rl.Environment[Cell, Move] = &Environment{}

func NewEnvironment(height, width int, goalReward, slip float64) *Environment {
	return &Environment{
		Height:     height,
		Width:      width,
		Goal:       Cell{I: height - 1, J: width - 1},
		GoalReward: goalReward,
		Slip:       slip,
		cur:        Cell{0, 0},
		rand:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (g *Environment) Reset() rl.State[Cell] {
	g.cur = Cell{0, 0}
	return rl.NewState(g.cur)
}

func (g *Environment) Actions(state rl.State[Cell]) []rl.Action[Move] {
	cell := state.Trait()
	moves := make([]rl.Action[Move], 0, len(AllMoves))
	for _, m := range AllMoves {
		switch m {
		case MoveUp:
			if cell.I == g.Height-1 {
				continue
			}
		case MoveDown:
			if cell.I == 0 {
				continue
			}
		case MoveLeft:
			if cell.J == 0 {
				continue
			}
		case MoveRight:
			if cell.J == g.Width-1 {
				continue
			}
		}
		moves = append(moves, rl.NewAction(m))
	}
	return moves
}

func (g *Environment) Step(action rl.Action[Move]) (rl.State[Cell], bool) {
	move := action.Trait()
	if g.Slip > 0 && g.rand.Float64() < g.Slip {
		move = AllMoves[g.rand.Intn(len(AllMoves))]
	}

	newPos := g.cur
	switch move.Direction {
	case "Nothing":
	case "Up":
		newPos.I = min(g.Height-1, g.cur.I+1)
	case "Down":
		newPos.I = max(0, g.cur.I-1)
	case "Left":
		newPos.J = max(0, g.cur.J-1)
	case "Right":
		newPos.J = min(g.Width-1, g.cur.J+1)
	}
	g.cur = newPos

	if newPos.Equal(g.Goal) {
		return rl.NewTerminalState(g.GoalReward, newPos), true
	}
	return rl.NewState(newPos), false
}
