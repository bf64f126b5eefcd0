package metrics

import (
	"time"
)

// SearchMetric captures one move-finding search, as instrumentation only:
// nothing here feeds back into move choice.
type SearchMetric struct {
	Episodes       int
	Cutoff         int
	FullPlayouts   int
	CappedPlayouts int
	TreeReused     bool
	TreeNodes      int
	TreeHeight     int
	Duration       time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(episodes, cutoff int)
	AddEpisode()
	AddFullPlayout()
	AddCappedPlayout()
	SetTreeReused(value bool)
	SetTreeSize(nodes, height int)
	Complete() SearchMetric
}

// collector counts plainly: searches are sequential, one playout at a time.
type collector struct {
	startTime      time.Time
	episodes       int
	cutoff         int
	playouts       int
	fullPlayouts   int
	cappedPlayouts int
	treeReused     bool
	treeNodes      int
	treeHeight     int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(episodes, cutoff int) {
	c.startTime = time.Now()
	c.episodes = episodes
	c.cutoff = cutoff
	c.playouts = 0
	c.fullPlayouts = 0
	c.cappedPlayouts = 0
}

func (c *collector) AddEpisode()              { c.playouts++ }
func (c *collector) AddFullPlayout()          { c.fullPlayouts++ }
func (c *collector) AddCappedPlayout()        { c.cappedPlayouts++ }
func (c *collector) SetTreeReused(value bool) { c.treeReused = value }

func (c *collector) SetTreeSize(nodes, height int) {
	c.treeNodes = nodes
	c.treeHeight = height
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Episodes:       c.playouts,
		Cutoff:         c.cutoff,
		FullPlayouts:   c.fullPlayouts,
		CappedPlayouts: c.cappedPlayouts,
		TreeReused:     c.treeReused,
		TreeNodes:      c.treeNodes,
		TreeHeight:     c.treeHeight,
		Duration:       time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector discards everything; the default when metrics are off.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int, int)         {}
func (dummyCollector) AddEpisode()            {}
func (dummyCollector) AddFullPlayout()        {}
func (dummyCollector) AddCappedPlayout()      {}
func (dummyCollector) SetTreeReused(bool)     {}
func (dummyCollector) SetTreeSize(int, int)   {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
