package pipeline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bredow/minutes/core/stopwords"
	"github.com/bredow/minutes/model"
)

var wordOnlyRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// FrequencySummarizer creates the extractive summarizer. Sentences are
// scored by the summed document frequency of their significant terms and
// the top sentenceCount sentences are emitted in original document order,
// not score order. The function is total: an empty outcome yields the
// "No summary available" sentinel and any internal failure is converted to
// the "Error generating summary" sentinel instead of propagating.
func FrequencySummarizer() SummarizeFunc {
	return func(text string, sentenceCount int) (summary string) {
		defer func() {
			if r := recover(); r != nil {
				summary = model.SummaryError
			}
		}()

		sentences := splitSentences(text)
		if len(sentences) == 0 || sentenceCount <= 0 {
			return model.SummaryUnavailable
		}

		freq := make(map[string]int)
		sentenceTerms := make([][]string, len(sentences))
		for i, sentence := range sentences {
			terms := significantTerms(sentence)
			sentenceTerms[i] = terms
			for _, term := range terms {
				freq[term]++
			}
		}

		type scored struct {
			index int
			score int
		}
		ranking := make([]scored, len(sentences))
		for i, terms := range sentenceTerms {
			s := scored{index: i}
			for _, term := range terms {
				s.score += freq[term]
			}
			ranking[i] = s
		}
		// Stable keeps earlier sentences ahead on ties
		sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].score > ranking[j].score })

		if sentenceCount > len(ranking) {
			sentenceCount = len(ranking)
		}
		top := ranking[:sentenceCount]
		sort.Slice(top, func(i, j int) bool { return top[i].index < top[j].index })

		parts := make([]string, len(top))
		for i, s := range top {
			parts[i] = sentences[s.index]
		}

		summary = strings.TrimSpace(strings.Join(parts, " "))
		if summary == "" {
			return model.SummaryUnavailable
		}
		return summary
	}
}

// splitSentences breaks text on terminal punctuation and newlines
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "! ", "!|")
	text = strings.ReplaceAll(text, "? ", "?|")
	text = strings.ReplaceAll(text, ". ", ".|")
	text = strings.ReplaceAll(text, "\n", "|")

	var sentences []string
	for _, s := range strings.Split(text, "|") {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// significantTerms returns the lowercased non-stopword words of a sentence
func significantTerms(sentence string) []string {
	words := wordOnlyRe.FindAllString(strings.ToLower(sentence), -1)
	var terms []string
	for _, w := range words {
		if !stopwords.IsStopword(w) {
			terms = append(terms, w)
		}
	}
	return terms
}
