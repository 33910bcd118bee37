package project

import (
	"github.com/callie/launchpad/internal/match"
	"github.com/callie/launchpad/internal/paginate"
)

// Scored pairs a Record with its similarity score against one query. Scored
// values are ephemeral: they belong to the Resolve call that produced them.
type Scored struct {
	Record Record
	Score  float64
}

// Engine ties together scanning, recency ordering, fuzzy resolution, and
// pagination behind one surface. Every operation rescans the root, so
// repeated calls against an unchanged directory tree return equal results.
//
// The engine is synchronous and holds no mutable state between calls; a
// single Engine value is safe for concurrent use.
type Engine struct {
	scanner   *Scanner
	threshold float64
}

// NewEngine creates an Engine scanning the given root. threshold is the
// minimum similarity score for fuzzy matches; values <= 0 fall back to
// match.DefaultThreshold.
func NewEngine(root string, threshold float64, logger Logger) *Engine {
	if threshold <= 0 {
		threshold = match.DefaultThreshold
	}
	return &Engine{
		scanner:   NewScanner(root, logger),
		threshold: threshold,
	}
}

// Candidates scans the root and returns all projects in recency order, most
// recently modified first.
func (e *Engine) Candidates() ([]Record, error) {
	records, err := e.scanner.Scan()
	if err != nil {
		return nil, err
	}
	return SortByRecency(records), nil
}

// Latest returns the most recently modified project.
// Returns ErrNoProjects when the scan finds nothing.
func (e *Engine) Latest() (Record, error) {
	candidates, err := e.Candidates()
	if err != nil {
		return Record{}, err
	}
	if len(candidates) == 0 {
		return Record{}, ErrNoProjects
	}
	return candidates[0], nil
}

// Resolve matches query against all project names and returns the candidates
// scoring strictly above the threshold, best first. Equal scores fall back to
// recency order. Returns ErrNoProjects when the scan finds nothing and
// ErrNoMatch when no candidate clears the threshold (including for a blank
// query).
//
// Callers picking one winner take the first entry; the rest are available to
// present as alternatives.
func (e *Engine) Resolve(query string) ([]Scored, error) {
	candidates, err := e.Candidates()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoProjects
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}

	ranked := match.Rank(query, names, e.threshold)
	if len(ranked) == 0 {
		return nil, ErrNoMatch
	}

	scored := make([]Scored, len(ranked))
	for i, m := range ranked {
		scored[i] = Scored{Record: candidates[m.Index], Score: m.Score}
	}
	return scored, nil
}

// List returns one page of the recency-ordered project listing together with
// pagination metadata ready for rendering.
func (e *Engine) List(page, pageSize int) (paginate.Page[Record], error) {
	candidates, err := e.Candidates()
	if err != nil {
		return paginate.Page[Record]{}, err
	}
	return paginate.Paginate(candidates, page, pageSize), nil
}

// Names returns the flat list of project names in recency order, for shell
// completion suggestions. Scan failures yield an empty list rather than an
// error; completion must never break the shell.
func (e *Engine) Names() []string {
	candidates, err := e.Candidates()
	if err != nil {
		return nil
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	return names
}
