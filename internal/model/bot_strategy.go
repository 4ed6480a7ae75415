package model

// Bot strategy constants
const (
	BotStrategyGreedy  = "greedy"
	BotStrategyRandom  = "random"
	BotStrategyMinimax = "minimax"
)

// DefaultBotStrategy is used when no strategy is configured
const DefaultBotStrategy = BotStrategyGreedy

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyGreedy:
		return "Greedy"
	case BotStrategyRandom:
		return "Random"
	case BotStrategyMinimax:
		return "Minimax"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyGreedy, BotStrategyRandom, BotStrategyMinimax}
}
