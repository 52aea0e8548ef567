package rl

import "fmt"

// Experiment names an agent configuration so runs can be compared
type Experiment[ST Trait[ST], AT Trait[AT]] struct {
	config *AgentConfig[ST, AT]
	name   string
	Result []*Episode[ST, AT]
}

func NewExperiment[ST Trait[ST], AT Trait[AT]](name string, config *AgentConfig[ST, AT]) *Experiment[ST, AT] {
	return &Experiment[ST, AT]{
		config: config,
		name:   name,
		Result: make([]*Episode[ST, AT], 0),
	}
}

func (e *Experiment[ST, AT]) Name() string {
	return e.name
}

// Table returns the value table the experiment trained
func (e *Experiment[ST, AT]) Table() *Policy[ST, AT] {
	return e.config.Table
}

func (e *Experiment[ST, AT]) Run() {
	fmt.Printf("Running Experiment: %s\n", e.name)
	agent := NewAgent(e.config)
	for i := 0; i < e.config.Episodes; i++ {
		fmt.Printf("\rExperiment: %s, Episode: %d/%d", e.name, i+1, e.config.Episodes)
		agent.episodes[i] = agent.runEpisode()
	}
	e.Result = agent.episodes
	fmt.Println("")
}

type DataSet = []float64

// Analyzer reduces the episodes of a run to one number per episode
type Analyzer[ST Trait[ST], AT Trait[AT]] func([]*Episode[ST, AT]) DataSet

// Comparator consumes the per-experiment datasets, e.g. to plot them
type Comparator func([]string, []DataSet) error

// Comparison runs experiments back to back and feeds the analyzed
// results to the comparator
type Comparison[ST Trait[ST], AT Trait[AT]] struct {
	Experiments []*Experiment[ST, AT]
	analyzer    Analyzer[ST, AT]
	comparator  Comparator
}

func NewComparison[ST Trait[ST], AT Trait[AT]](analyzer Analyzer[ST, AT], comparator Comparator) *Comparison[ST, AT] {
	return &Comparison[ST, AT]{
		Experiments: make([]*Experiment[ST, AT], 0),
		analyzer:    analyzer,
		comparator:  comparator,
	}
}

func (c *Comparison[ST, AT]) AddExperiment(e *Experiment[ST, AT]) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison[ST, AT]) Run() error {
	datasets := make([]DataSet, len(c.Experiments))
	names := make([]string, len(c.Experiments))
	for i, e := range c.Experiments {
		e.Run()
		datasets[i] = c.analyzer(e.Result)
		names[i] = e.Name()
	}
	return c.comparator(names, datasets)
}
