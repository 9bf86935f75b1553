package core

// Pipeline runs normalize -> tokenize -> resolve -> aggregate -> rank over one text.
type Pipeline struct {
	tokenizer  Tokenizer
	aggregator *Aggregator
}

func NewPipeline(tokenizer Tokenizer, stemmer Stemmer) *Pipeline {
	return &Pipeline{
		tokenizer:  tokenizer,
		aggregator: NewAggregator(NewResolver(tokenizer, stemmer)),
	}
}

// Keywords returns the ranked keywords of text.
func (p *Pipeline) Keywords(text string) []Keyword {
	return Rank(p.aggregator.Aggregate(p.tokenizer.Tokens(Normalize(text))))
}
