package core

import "iter"

// Aggregator groups surface tokens by resolved stem.
type Aggregator struct {
	resolver *Resolver
}

func NewAggregator(resolver *Resolver) *Aggregator {
	return &Aggregator{resolver: resolver}
}

// Aggregate returns one Keyword per distinct stem in first-seen order.
// Tokens without a resolvable stem are skipped.
func (a *Aggregator) Aggregate(tokens iter.Seq[string]) []Keyword {
	acc := newAccumulator()
	for token := range tokens {
		stem, ok := a.resolver.Resolve(token)
		if !ok {
			continue
		}
		acc.add(stem, restoreHyphens(token), 1)
	}
	return acc.keywords()
}

// Merge combines keyword lists built from separate documents: frequencies of equal
// stems are summed and their term sets are joined.
func Merge(lists ...[]Keyword) []Keyword {
	acc := newAccumulator()
	for _, list := range lists {
		for _, kw := range list {
			acc.touch(kw.Stem).frequency += kw.Frequency
			for _, term := range kw.Terms {
				acc.add(kw.Stem, term, 0)
			}
		}
	}
	return acc.keywords()
}

type record struct {
	stem      string
	terms     []string
	seen      map[string]struct{}
	frequency int
}

type accumulator struct {
	index   map[string]int
	records []*record
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int)}
}

func (a *accumulator) touch(stem string) *record {
	if i, ok := a.index[stem]; ok {
		return a.records[i]
	}
	rec := &record{stem: stem, seen: make(map[string]struct{})}
	a.index[stem] = len(a.records)
	a.records = append(a.records, rec)
	return rec
}

func (a *accumulator) add(stem, term string, occurrences int) {
	rec := a.touch(stem)
	rec.frequency += occurrences
	if _, ok := rec.seen[term]; ok {
		return
	}
	rec.seen[term] = struct{}{}
	rec.terms = append(rec.terms, term)
}

func (a *accumulator) keywords() []Keyword {
	keywords := make([]Keyword, len(a.records))
	for i, rec := range a.records {
		keywords[i] = Keyword{
			Stem:      rec.stem,
			Terms:     rec.terms,
			Frequency: rec.frequency,
		}
	}
	return keywords
}
