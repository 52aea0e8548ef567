package rl

import (
	"fmt"
	"os"
	"path"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// TerminalReward reports the reward the episode ended with, zero when
// the episode never reached a terminal state
func TerminalReward[ST Trait[ST], AT Trait[AT]]() Analyzer[ST, AT] {
	return func(episodes []*Episode[ST, AT]) DataSet {
		rewards := make([]float64, len(episodes))
		for i, episode := range episodes {
			if last, ok := episode.Last(); ok {
				rewards[i] = last.State.Reward()
			}
		}
		return rewards
	}
}

// Coverage reports the cumulative number of unique states seen up to
// each episode
func Coverage[ST Trait[ST], AT Trait[AT]]() Analyzer[ST, AT] {
	return func(episodes []*Episode[ST, AT]) DataSet {
		uniqueStates := make(map[string]bool)
		numUniqueStates := make([]float64, len(episodes))
		for i, episode := range episodes {
			for j := 0; j < episode.Len(); j++ {
				link, _ := episode.Get(j)
				sHash := link.State.Hash()
				if _, ok := uniqueStates[sHash]; !ok {
					uniqueStates[sHash] = true
				}
			}
			numUniqueStates[i] = float64(len(uniqueStates))
		}
		return numUniqueStates
	}
}

// LinePlotter draws one line per experiment and saves the plot as a
// png under plotPath
func LinePlotter(title, yLabel, plotPath, fileName string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(names []string, datasets []DataSet) error {
		p := plot.New()
		p.Title.Text = title
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = yLabel
		for i := 0; i < len(names); i++ {
			points := make(plotter.XYs, len(datasets[i]))
			for j, v := range datasets[i] {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			if len(datasets[i]) > 0 {
				fmt.Printf("Final %s: %f for experiment: %s\n", yLabel, datasets[i][len(datasets[i])-1], names[i])
			}
		}
		return p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, fileName))
	}
}
