package experiments

import (
	"fmt"

	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"checkers/searcher"
	"checkers/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Window lets agents vary their play between games of a match-up.
const Window = 1

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 2, Pruning: true, Window: Window, Seed: 1},
	{ID: 2, Depth: 4, Pruning: true, Window: Window, Seed: 2},
	{ID: 3, Depth: 6, Pruning: true, Window: Window, Seed: 3},
	{ID: 4, Depth: 8, Pruning: true, Window: Window, Seed: 4},
}

// RunDepthExperiment pairs every depth against the shallowest baseline.
func RunDepthExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, Pruning: true, Window: Window}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	save("depth", append(depthConfigs, baseline), matchUps, meta.NumGames)
}

// RunWeightsExperiment pairs king weights against the default weights at the
// same depth.
func RunWeightsExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Depth: meta.DefaultDepth, Pruning: true, Window: Window, Weights: game.DefaultWeights}
	weightConfigs := []metrics.AgentConfig{
		{ID: 1, Depth: meta.DefaultDepth, Pruning: true, Window: Window, Seed: 1, Weights: game.Weights{Man: 2, King: 3}},
		{ID: 2, Depth: meta.DefaultDepth, Pruning: true, Window: Window, Seed: 2, Weights: game.Weights{Man: 1, King: 3}},
		{ID: 3, Depth: meta.DefaultDepth, Pruning: true, Window: Window, Seed: 3, Weights: game.Weights{Man: 1, King: 5}},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range weightConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	save("weights", append(weightConfigs, baseline), matchUps, meta.NumGames)
}

func save(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	err = runExperiment(writer, name, configs, matchUps, numGames, meta.MaxTurns)
	if err != nil {
		panic(fmt.Sprintf("failed to store %s experiment: %v", name, err))
	}
	log.Info().Msgf("stored %s experiment in %s", name, writer.Dir())
}

func runExperiment(writer *metrics.Writer, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames, maxTurns int) error {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < numGames; i++ {
			// Alternate colours so neither agent always moves first
			red, black := matchup[0], matchup[1]
			if i%2 == 1 {
				red, black = black, red
			}
			count++

			gameMetric, moveMetrics := runGame(red, black, uint64(count), maxTurns)
			gameRecords = append(gameRecords, metrics.GameRecord{
				Number:     count,
				Agent1:     red.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	err := writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

// runGame plays red against black from the opening position.
func runGame(red, black metrics.AgentConfig, number uint64, maxTurns int) (metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{createAgent(red, number), createAgent(black, number)}
	e := engine.LocalEngine(agents, gamemaster.NewLocalEngine(), engine.WithMaxTurns(maxTurns))
	return e.Run()
}

// createAgent builds the agent described by config. Sampling agents are
// reseeded per game.
func createAgent(config metrics.AgentConfig, number uint64) agent.Agent {
	options := []searcher.Option{searcher.WithMetrics()}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	if config.Weights != (game.Weights{}) {
		options = append(options, searcher.WithWeights(config.Weights))
	}
	s := searcher.NewAlphaBeta(options...)

	if config.Window > 0 {
		return agent.NewSamplingAgent(s, config.Depth, config.Window, config.Seed*1_000_003+number)
	}
	return agent.NewEvaluationAgent(s, config.Depth)
}
