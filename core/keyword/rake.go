package keyword

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/bredow/minutes/core/stopwords"
)

var (
	phraseSep = regexp.MustCompile(`[,\.;:\?\!()\[\]"']+`)
	wordRe    = regexp.MustCompile(`\w+`)
)

// RakeExtractor is an in-process replacement for the worker bridge. It
// scores words with the RAKE degree-to-frequency heuristic over
// stopword-delimited candidate phrases and satisfies the same contract,
// so the pipeline cannot tell the two apart.
type RakeExtractor struct {
	TopN int // maximum number of keywords returned
}

// NewRakeExtractor creates an extractor returning at most topN keywords.
// A non-positive topN returns the full ranking.
func NewRakeExtractor(topN int) *RakeExtractor {
	return &RakeExtractor{TopN: topN}
}

// Extract ranks the words of text. It never fails; ctx is accepted only to
// match the extraction contract of the worker bridge.
func (r *RakeExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	phrases := phraseSep.Split(text, -1)

	freq := make(map[string]int)
	degree := make(map[string]int)

	score := func(cand []string) {
		for _, cw := range cand {
			freq[cw]++
			degree[cw] += len(cand) - 1
		}
	}

	for _, ph := range phrases {
		words := wordRe.FindAllString(strings.ToLower(ph), -1)
		var cand []string
		for _, w := range words {
			if stopwords.IsStopword(w) {
				if len(cand) > 0 {
					score(cand)
					cand = cand[:0]
				}
			} else {
				cand = append(cand, w)
			}
		}
		if len(cand) > 0 {
			score(cand)
		}
	}

	type scored struct {
		word  string
		score float64
	}
	ranking := make([]scored, 0, len(freq))
	for w, f := range freq {
		ranking = append(ranking, scored{w, float64(f+degree[w]) / float64(f)})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].score != ranking[j].score {
			return ranking[i].score > ranking[j].score
		}
		return ranking[i].word < ranking[j].word
	})

	keywords := make([]string, 0, len(ranking))
	for _, s := range ranking {
		keywords = append(keywords, s.word)
	}
	if r.TopN > 0 && len(keywords) > r.TopN {
		keywords = keywords[:r.TopN]
	}
	return keywords, nil
}
