package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hearth/engine"
	"hearth/experiments"
	"hearth/experiments/metrics"
	"hearth/searcher/agent"
)

var (
	verbose bool

	playEpisodes int
	playCutoff   int
	playRollout  string
	playOpponent string
	playSeed     uint64

	experimentConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hearth",
	Short: "MCTS agent for a two-player card duel",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game: MCTS against a policy opponent",
	RunE: func(cmd *cobra.Command, args []string) error {
		mctsConfig := metrics.AgentConfig{
			Kind:     "mcts",
			Episodes: playEpisodes,
			Cutoff:   playCutoff,
			Rollout:  playRollout,
		}
		mctsAgent, err := experiments.BuildAgent(mctsConfig, playSeed)
		if err != nil {
			return err
		}
		opponent, err := experiments.BuildAgent(metrics.AgentConfig{Kind: playOpponent}, playSeed)
		if err != nil {
			return err
		}

		e := engine.NewLocalEngine([2]agent.Agent{mctsAgent, opponent}, playSeed)
		winner, gameMetric, _, err := e.Run()
		if err != nil {
			return err
		}

		log.Info().Msgf("game over after %d moves in %s, winner: %s",
			gameMetric.TotalMoves, gameMetric.Duration, winner)
		return nil
	},
}

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run an experiment suite and store CSV records",
	RunE: func(cmd *cobra.Command, args []string) error {
		config := experiments.DefaultConfig()
		if experimentConfig != "" {
			loaded, err := experiments.LoadConfig(experimentConfig)
			if err != nil {
				return err
			}
			config = loaded
		}
		return experiments.Run(config)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every move")

	playCmd.Flags().IntVar(&playEpisodes, "episodes", 1000, "playouts per move")
	playCmd.Flags().IntVar(&playCutoff, "cutoff", 0, "rollout move cap (0 = default)")
	playCmd.Flags().StringVar(&playRollout, "rollout", "random", "rollout policy: random, aggressive or controlling")
	playCmd.Flags().StringVar(&playOpponent, "opponent", "aggressive", "opponent policy: random, aggressive or controlling")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "seed for the deal and all randomness (0 = time-based)")

	experimentCmd.Flags().StringVar(&experimentConfig, "config", "", "YAML experiment suite (defaults to mcts_vs_policies)")

	rootCmd.AddCommand(playCmd, experimentCmd)
}
