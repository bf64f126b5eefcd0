package experiments

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"hearth/engine"
	"hearth/experiments/metrics"
	"hearth/searcher"
	"hearth/searcher/agent"
)

// Config is an experiment suite: a pool of agent configs and the matchups
// (pairs of agent config IDs) to run Games times each.
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	Seed     uint64                `yaml:"seed"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][2]int              `yaml:"matchups"`
}

// LoadConfig reads an experiment suite from a YAML file.
func LoadConfig(path string) (Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read experiment config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	return config, nil
}

// DefaultConfig pits an MCTS agent against each policy opponent: the
// baseline strength comparison.
func DefaultConfig() Config {
	return Config{
		Name:  "mcts_vs_policies",
		Games: 30,
		Agents: []metrics.AgentConfig{
			{ID: 0, Kind: "mcts", Episodes: 1000, Rollout: "random"},
			{ID: 1, Kind: "random"},
			{ID: 2, Kind: "aggressive"},
			{ID: 3, Kind: "controlling"},
		},
		Matchups: [][2]int{{0, 1}, {0, 2}, {0, 3}},
	}
}

// Run executes every matchup in the suite and stores the records as CSV.
func Run(config Config) error {
	if config.Games <= 0 {
		config.Games = 1
	}
	configsByID := make(map[int]metrics.AgentConfig, len(config.Agents))
	for _, c := range config.Agents {
		configsByID[c.ID] = c
	}

	runID := uuid.NewString()
	log.Info().Msgf("starting experiment %s run %s...", config.Name, runID)

	count := 0
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for mi, matchup := range config.Matchups {
		config1, ok1 := configsByID[matchup[0]]
		config2, ok2 := configsByID[matchup[1]]
		if !ok1 || !ok2 {
			return fmt.Errorf("matchup %d references an unknown agent config", mi+1)
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(config.Matchups), config1, config2)

		for i := 0; i < config.Games; i++ {
			seed := gameSeed(config.Seed, mi, i)
			winner, gameMetric, moveMetrics, err := runGame(config1, config2, seed)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				Run:        runID,
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d game %d of %d with winner: %s",
				mi+1, i+1, config.Games, winner)
		}
	}

	log.Info().Msgf("completed experiment %s", config.Name)

	writer, err := metrics.NewWriter(config.Name, runID)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msg("stored experiment records")
	return nil
}

// gameSeed spreads a suite seed across games; zero keeps games unseeded.
func gameSeed(base uint64, matchup, game int) uint64 {
	if base == 0 {
		return 0
	}
	return base + uint64(matchup)*1000 + uint64(game)
}

func runGame(config1, config2 metrics.AgentConfig, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := BuildAgent(config1, seed+1)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	agent2, err := BuildAgent(config2, seed+2)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine([2]agent.Agent{agent1, agent2}, seed)
	return e.Run()
}

// BuildAgent constructs the agent an AgentConfig describes.
func BuildAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	if config.Kind == "mcts" {
		rollout, err := searcher.PolicyByName(config.Rollout)
		if err != nil {
			return nil, err
		}
		episodes := config.Episodes
		if episodes <= 0 {
			episodes = 1000
		}
		options := []searcher.Option{
			searcher.WithEpisodes(episodes),
			searcher.WithRolloutPolicy(rollout),
			searcher.WithMetrics(),
		}
		if config.Cutoff > 0 {
			options = append(options, searcher.WithCutoff(config.Cutoff))
		}
		if seed > 0 {
			options = append(options, searcher.WithSeed(seed))
		}
		return agent.NewMCTSAgent(searcher.NewMCTS(options...)), nil
	}

	policy, err := searcher.PolicyByName(config.Kind)
	if err != nil {
		return nil, err
	}
	return agent.NewPolicyAgent(policy, seed), nil
}
