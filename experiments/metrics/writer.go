package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one agent entering a matchup, for the records.
type AgentConfig struct {
	ID       int    `yaml:"id"`
	Kind     string `yaml:"kind"` // mcts, random, aggressive, controlling
	Episodes int    `yaml:"episodes"`
	Cutoff   int    `yaml:"cutoff"`
	Rollout  string `yaml:"rollout"` // rollout policy for mcts agents
}

type GameRecord struct {
	Run    string // experiment run ID
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer stores an experiment run as CSV files under a per-run directory.
type Writer struct {
	baseDir string
}

func NewWriter(experiment, runID string) (*Writer, error) {
	baseDir := filepath.Join("experiments", experiment, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Episodes),
			strconv.Itoa(config.Cutoff),
			config.Rollout,
		})
	}
	header := []string{"id", "kind", "episodes", "cutoff", "rollout"}
	return w.writeFile("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Run,
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			r.StartingPlayer,
			r.Winner,
			strconv.Itoa(r.TotalMoves),
			r.StartTime.UTC().Format(time.RFC3339),
			r.Duration.String(),
		})
	}
	header := []string{"run", "id", "agent1", "agent2", "starting_player", "winner", "total_moves", "start_time", "duration"}
	return w.writeFile("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			strconv.Itoa(r.Episodes),
			strconv.Itoa(r.Cutoff),
			strconv.Itoa(r.FullPlayouts),
			strconv.Itoa(r.CappedPlayouts),
			strconv.FormatBool(r.TreeReused),
			strconv.Itoa(r.TreeNodes),
			strconv.Itoa(r.TreeHeight),
			r.Duration.String(),
		})
	}
	header := []string{"game", "step", "player", "episodes", "cutoff", "full_playouts", "capped_playouts", "tree_reused", "tree_nodes", "tree_height", "duration"}
	return w.writeFile("move_records.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
