package ingest

import "ChartBook/internal/model"

// Store maps ticker symbols to fetched series. Keys are unique; insertion
// order is preserved for display. A Store is created once per batch run
// and only ever mutated by Put.
type Store struct {
	order  []string
	series map[string]*model.Series
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{series: make(map[string]*model.Series)}
}

// Put inserts or overwrites the series for a symbol. Overwriting keeps
// the symbol's original position in the display order.
func (st *Store) Put(symbol string, s *model.Series) {
	if _, ok := st.series[symbol]; !ok {
		st.order = append(st.order, symbol)
	}
	st.series[symbol] = s
}

// Get returns the series for a symbol, or false if absent.
func (st *Store) Get(symbol string) (*model.Series, bool) {
	s, ok := st.series[symbol]
	return s, ok
}

// Symbols returns the stored symbols in insertion order.
func (st *Store) Symbols() []string {
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}

// Len returns the number of stored series.
func (st *Store) Len() int { return len(st.series) }
