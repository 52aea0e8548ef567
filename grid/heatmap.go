package grid

import (
	"github.com/tabrl/tabrl/rl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// VisitGrid counts how often each cell was visited over a set of
// episodes, in the shape gonum's heat map plotter wants
type VisitGrid struct {
	Visits map[int]map[int]int
	Height int
	Width  int
}

var _ plotter.GridXYZ = &VisitGrid{}

func (g *VisitGrid) Dims() (int, int) {
	return g.Width, g.Height
}

func (g *VisitGrid) Z(j, i int) float64 {
	return float64(g.Visits[i][j])
}

func (g *VisitGrid) X(j int) float64 {
	return float64(j)
}

func (g *VisitGrid) Y(i int) float64 {
	return float64(i)
}

func (g *VisitGrid) Min() float64 {
	return 0.0
}

func (g *VisitGrid) Max() float64 {
	max := 0
	for _, vals := range g.Visits {
		for _, count := range vals {
			if count > max {
				max = count
			}
		}
	}
	return float64(max)
}

// CountVisits aggregates the cell visits of a run
func CountVisits(episodes []*rl.Episode[Cell, Move]) *VisitGrid {
	visits := &VisitGrid{
		Visits: make(map[int]map[int]int),
		Height: 0,
		Width:  0,
	}
	for _, episode := range episodes {
		for i := 0; i < episode.Len(); i++ {
			link, _ := episode.Get(i)
			cell := link.State.Trait()
			if _, ok := visits.Visits[cell.I]; !ok {
				visits.Visits[cell.I] = make(map[int]int)
			}
			if cell.I+1 > visits.Height {
				visits.Height = cell.I + 1
			}
			if cell.J+1 > visits.Width {
				visits.Width = cell.J + 1
			}
			visits.Visits[cell.I][cell.J] += 1
		}
	}
	return visits
}

// SaveHeatMap renders the visit counts as a png
func SaveHeatMap(visits *VisitGrid, title, figPath string) error {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewHeatMap(visits, palette.Heat(20, 1)))
	return p.Save(4*vg.Inch, 4*vg.Inch, figPath)
}
