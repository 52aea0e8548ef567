package commands

import (
	"context"
	"fmt"
	"path"

	"github.com/spf13/cobra"
	"github.com/tabrl/tabrl/explore"
	"github.com/tabrl/tabrl/grid"
	"github.com/tabrl/tabrl/learners"
	"github.com/tabrl/tabrl/rl"
	"github.com/tabrl/tabrl/store"
	"github.com/tabrl/tabrl/util"
)

func GridTrain(episodes, horizon int, savePath string, height, width int, alpha, gamma, epsilon, slip float64, redisAddr string) error {

	c := rl.NewComparison(
		rl.TerminalReward[grid.Cell, grid.Move](),
		rl.LinePlotter("Grid comparison", "Terminal reward", savePath, "grid_reward.png"),
	)

	c.AddExperiment(rl.NewExperiment(
		"Random",
		&rl.AgentConfig[grid.Cell, grid.Move]{
			Episodes:    episodes,
			Horizon:     horizon,
			Selector:    explore.NewRandom[grid.Cell, grid.Move](),
			Learner:     learners.NewQLearning[grid.Cell, grid.Move](alpha, gamma),
			Environment: grid.NewEnvironment(height, width, 10, slip),
			Table:       rl.NewPolicy[grid.Cell, grid.Move](),
		},
	))
	c.AddExperiment(rl.NewExperiment(
		"QLearning-EpsilonGreedy",
		&rl.AgentConfig[grid.Cell, grid.Move]{
			Episodes:    episodes,
			Horizon:     horizon,
			Selector:    explore.NewEpsilonGreedy[grid.Cell, grid.Move](epsilon),
			Learner:     learners.NewQLearning[grid.Cell, grid.Move](alpha, gamma),
			Environment: grid.NewEnvironment(height, width, 10, slip),
			Table:       rl.NewPolicy[grid.Cell, grid.Move](),
		},
	))
	c.AddExperiment(rl.NewExperiment(
		"QProbabilistic-SoftMax",
		&rl.AgentConfig[grid.Cell, grid.Move]{
			Episodes:    episodes,
			Horizon:     horizon,
			Selector:    explore.NewSoftMax[grid.Cell, grid.Move](),
			Learner:     learners.NewQProbabilistic[grid.Cell, grid.Move](gamma),
			Environment: grid.NewEnvironment(height, width, 10, slip),
			Table:       rl.NewPolicy[grid.Cell, grid.Move](),
		},
	))

	if err := c.Run(); err != nil {
		return err
	}

	for _, e := range c.Experiments {
		visits := grid.CountVisits(e.Result)
		figPath := path.Join(savePath, e.Name()+"_visits.png")
		if err := grid.SaveHeatMap(visits, e.Name(), figPath); err != nil {
			return fmt.Errorf("saving heat map for %s: %s", e.Name(), err)
		}

		tablePath := path.Join(savePath, e.Name()+"_policy.json")
		if err := store.SaveFile(tablePath, e.Table()); err != nil {
			return fmt.Errorf("saving policy for %s: %s", e.Name(), err)
		}

		summary := make([]string, 0, e.Table().Len())
		for _, state := range e.Table().States() {
			action, ok := e.Table().BestAction(state)
			if !ok {
				continue
			}
			summary = append(summary, fmt.Sprintf("%s -> %s (%f)", state.Hash(), action.Hash(), e.Table().BestValue(state)))
		}
		if err := util.WriteToFile(path.Join(savePath, e.Name()+"_best.txt"), summary...); err != nil {
			return err
		}

		if err := util.AppendToFile(path.Join(savePath, "runs.log"),
			fmt.Sprintf("%s: %d episodes, %d states recorded", e.Name(), episodes, e.Table().Len())); err != nil {
			return err
		}

		if redisAddr != "" {
			rStore := store.NewRedisStore[grid.Cell, grid.Move](redisAddr, "tabrl:grid:"+e.Name())
			if err := rStore.Save(context.Background(), e.Table()); err != nil {
				return fmt.Errorf("saving policy to redis for %s: %s", e.Name(), err)
			}
			rStore.Close()
		}
	}
	return nil
}

func GridCommand() *cobra.Command {
	var height int
	var width int
	var alpha float64
	var gamma float64
	var epsilon float64
	var slip float64
	var redisAddr string

	cmd := &cobra.Command{
		Use: "grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GridTrain(episodes, horizon, savePath, height, width, alpha, gamma, epsilon, slip, redisAddr)
		},
	}
	cmd.PersistentFlags().IntVar(&height, "height", 5, "Height of the grid")
	cmd.PersistentFlags().IntVar(&width, "width", 5, "Width of the grid")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", 0.5, "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", 0.9, "Discount rate")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", 0.1, "Exploration rate")
	cmd.PersistentFlags().Float64Var(&slip, "slip", 0, "Probability of a random slip per step")
	cmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Save the trained policies to redis at this address")
	return cmd
}
