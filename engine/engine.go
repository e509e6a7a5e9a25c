package engine

import "checkers/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
