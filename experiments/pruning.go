package experiments

import (
	"checkers/experiments/metrics"
	"checkers/meta"
)

// RunPruningExperiment plays alpha-beta against plain minimax at equal depth.
// Both choose the same moves, so the recorded node counts and durations
// measure what pruning saves.
func RunPruningExperiment() {
	depths := []int{2, 4, 6}
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range depths {
		pruned := metrics.AgentConfig{ID: 2 * i, Depth: depth, Pruning: true}
		full := metrics.AgentConfig{ID: 2*i + 1, Depth: depth, Pruning: false}
		configs = append(configs, pruned, full)
		matchUps = append(matchUps, []metrics.AgentConfig{pruned, full})
	}

	save("pruning", configs, matchUps, 2)
}

// RunSampledPruningExperiment repeats the pruning comparison over varied
// games by sampling near-best moves.
func RunSampledPruningExperiment() {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: meta.DefaultDepth, Pruning: true, Window: Window, Seed: 1},
		{ID: 2, Depth: meta.DefaultDepth, Pruning: false, Window: Window, Seed: 2},
	}
	save("sampled_pruning", configs, [][]metrics.AgentConfig{configs}, meta.NumGames)
}
