// Package advisor wires the rule engine and the collaborative filter
// into one per-client advice pipeline over an in-memory dataset.
package advisor

import (
	"context"
	"fmt"

	"github.com/rohit-nambiar/coverscout/internal/database"
	"github.com/rohit-nambiar/coverscout/internal/recommend"
)

// Collaborative status values reported on Advice.
const (
	CollabOK               = "ok"
	CollabInsufficientData = "insufficient_data"
)

// Options tunes the advice pipeline.
type Options struct {
	ReferenceYear int
	TopProducts   int // cap on the content-based list; <=0 means no cap
	CollabTopN    int // cap on the collaborative list; <=0 uses the engine default
}

// Advisor computes recommendations against a dataset loaded once at
// construction. It holds no mutable state and is safe for concurrent
// use.
type Advisor struct {
	opts     Options
	clients  []recommend.Client
	products []recommend.Product
	matrix   *recommend.Matrix

	rowIndex     map[string]int
	descriptions map[string]string
}

// CollabProduct is one collaboratively recommended product, resolved
// against the catalog for display.
type CollabProduct struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// Advice is the full recommendation bundle for one client.
type Advice struct {
	Profile       recommend.Profile    `json:"profile"`
	Categories    []recommend.Category `json:"recommended_categories"`
	Products      []recommend.Match    `json:"products"`
	Collaborative []CollabProduct      `json:"collaborative"`
	CollabStatus  string               `json:"collab_status"`
}

// ClientSummary is one row of the client listing.
type ClientSummary struct {
	ID           string  `json:"id"`
	BirthYear    int     `json:"birth_year"`
	Age          int     `json:"age"`
	LifeStage    string  `json:"life_stage"`
	VehicleOwner bool    `json:"vehicle_owner"`
	TotalSpend   float64 `json:"total_spend"`
}

// MatrixInfo describes the interaction matrix for diagnostics.
type MatrixInfo struct {
	Present bool     `json:"present"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns,omitempty"`
}

// New builds an Advisor over an already-loaded dataset. The matrix is
// assembled here, once, and shared by every Advise call.
func New(clients []recommend.Client, products []recommend.Product, opts Options) *Advisor {
	codes := make([]string, len(products))
	descriptions := make(map[string]string, len(products))
	for i, p := range products {
		codes[i] = p.Code
		descriptions[p.Code] = p.Description
	}

	rowIndex := make(map[string]int, len(clients))
	for i, c := range clients {
		rowIndex[c.ID] = i
	}

	return &Advisor{
		opts:         opts,
		clients:      clients,
		products:     products,
		matrix:       recommend.BuildMatrix(clients, codes),
		rowIndex:     rowIndex,
		descriptions: descriptions,
	}
}

// FromDB loads the current dataset out of the database and builds an
// Advisor over it.
func FromDB(ctx context.Context, db *database.DB, opts Options) (*Advisor, error) {
	clients, err := db.LoadClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	if len(clients) == 0 {
		return nil, fmt.Errorf("no dataset loaded; run 'coverscout import' first")
	}

	products, err := db.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	return New(clients, products, opts), nil
}

// Advise runs the full pipeline for one client: profile, rule
// categories, scored catalog matches, and the collaborative list.
func (a *Advisor) Advise(clientID string) (*Advice, error) {
	row, ok := a.rowIndex[clientID]
	if !ok {
		return nil, &recommend.DataError{Field: "client_id", Reason: fmt.Sprintf("unknown client %s", clientID)}
	}

	profile, err := recommend.NewProfile(a.clients[row], a.opts.ReferenceYear)
	if err != nil {
		return nil, err
	}

	needs := recommend.NeededCategories(profile)

	matches := recommend.MatchProducts(needs, a.products)
	if a.opts.TopProducts > 0 && len(matches) > a.opts.TopProducts {
		matches = matches[:a.opts.TopProducts]
	}

	advice := &Advice{
		Profile:      profile,
		Categories:   needs.Sorted(),
		Products:     matches,
		CollabStatus: CollabInsufficientData,
	}

	if a.matrix == nil {
		return advice, nil
	}

	scores, err := a.matrix.Recommend(row, a.opts.CollabTopN)
	if err != nil {
		return nil, err
	}

	for _, s := range scores {
		advice.Collaborative = append(advice.Collaborative, CollabProduct{
			Code:        s.Code,
			Description: a.descriptions[s.Code],
			Score:       s.Score,
		})
	}

	// An empty list means the neighborhood carried no usable demand,
	// the same degraded state as a missing matrix.
	if len(advice.Collaborative) > 0 {
		advice.CollabStatus = CollabOK
	}

	return advice, nil
}

// Products returns the catalog in its original order.
func (a *Advisor) Products() []recommend.Product {
	return a.products
}

// ClientSummaries returns one listing row per client, in dataset
// order. Clients with a missing birth year are listed with age 0 and
// an empty life stage rather than dropped.
func (a *Advisor) ClientSummaries() []ClientSummary {
	summaries := make([]ClientSummary, 0, len(a.clients))
	for _, c := range a.clients {
		s := ClientSummary{
			ID:           c.ID,
			BirthYear:    c.BirthYear,
			VehicleOwner: c.VehicleOwner,
		}
		for _, amount := range c.Purchases {
			s.TotalSpend += amount
		}
		if profile, err := recommend.NewProfile(c, a.opts.ReferenceYear); err == nil {
			s.Age = profile.Age
			s.LifeStage = string(profile.LifeStage)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// MatrixInfo reports whether the interaction matrix could be built
// and what it covers.
func (a *Advisor) MatrixInfo() MatrixInfo {
	if a.matrix == nil {
		return MatrixInfo{}
	}
	return MatrixInfo{
		Present: true,
		Rows:    len(a.matrix.Rows),
		Columns: a.matrix.Columns,
	}
}
