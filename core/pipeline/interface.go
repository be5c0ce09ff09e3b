package pipeline

import (
	"context"

	"github.com/bredow/minutes/model"
)

// TokenizeFunc splits raw text into word tokens, original order preserved
type TokenizeFunc func(text string) []string

// TagFunc assigns one part-of-speech tag per token. Tagging a token may
// depend on its neighbours, so implementations always see the full sequence;
// re-tagging a sub-slice is not guaranteed to reproduce the same tags.
type TagFunc func(tokens []string) []model.TaggedToken

// ActionItemFunc filters tagged tokens down to candidate action items
type ActionItemFunc func(tagged []model.TaggedToken) []string

// KeywordFunc returns ranked keywords for text. Implementations may spawn
// an external worker process, so the call carries a context and can fail.
type KeywordFunc func(ctx context.Context, text string) ([]string, error)

// SummarizeFunc produces a summary with at most sentenceCount sentences.
// It is total: internal failures surface as sentinel strings, never errors.
type SummarizeFunc func(text string, sentenceCount int) string

// Pipeline combines the analysis stages applied to one transcript
type Pipeline struct {
	Tokenizer   TokenizeFunc
	Tagger      TagFunc
	ActionItems ActionItemFunc
	Keywords    KeywordFunc
	Summarizer  SummarizeFunc

	// Number of sentences requested from the summarizer
	SummarySentences int
}

// NewPipeline creates a pipeline from the given stages with the default
// summary length of 3 sentences
func NewPipeline(tokenizer TokenizeFunc, tagger TagFunc, actionItems ActionItemFunc, keywords KeywordFunc, summarizer SummarizeFunc) *Pipeline {
	return &Pipeline{
		Tokenizer:        tokenizer,
		Tagger:           tagger,
		ActionItems:      actionItems,
		Keywords:         keywords,
		Summarizer:       summarizer,
		SummarySentences: 3,
	}
}

// Analyze runs the synchronous chain tokenize, tag, extract action items and
// then requests keywords for the same text. Empty input short-circuits to a
// zeroed result without invoking any stage, so no worker process is spawned.
// A keyword extraction failure aborts the whole call; no partial result is
// returned.
func (p *Pipeline) Analyze(ctx context.Context, text string) (*model.AnalysisResult, error) {
	if text == "" {
		return model.EmptyAnalysisResult(), nil
	}

	tokens := p.Tokenizer(text)
	tagged := p.Tagger(tokens)
	actionItems := p.ActionItems(tagged)

	keywords, err := p.Keywords(ctx, text)
	if err != nil {
		return nil, err
	}

	return &model.AnalysisResult{
		WordCount:   len(tokens),
		Tokens:      tokens,
		ActionItems: actionItems,
		Keywords:    keywords,
	}, nil
}

// Summarize produces the summary for text. Unlike Analyze it never fails;
// summarizer errors come back as the error sentinel instead.
func (p *Pipeline) Summarize(text string) string {
	return p.Summarizer(text, p.SummarySentences)
}
