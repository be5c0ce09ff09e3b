package pipeline

import (
	_ "embed"
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"github.com/bredow/minutes/helper"
	"github.com/bredow/minutes/model"
)

//go:embed lexicon.json
var lexiconData []byte

var numberRe = regexp.MustCompile(`^[0-9]+([.,][0-9]+)*$`)

// Tagger assigns part-of-speech tags to token sequences using a fixed
// word-to-tag lexicon and an ordered contextual rule set for English.
// The lexicon is parsed once at construction; a Tagger is immutable after
// that and safe for concurrent use, so one instance is shared per process.
type Tagger struct {
	lexicon map[string]model.Tag
}

// NewTagger parses the embedded lexicon and builds the shared tagger
func NewTagger() (*Tagger, error) {
	var lexicon map[string]model.Tag
	if err := json.Unmarshal(lexiconData, &lexicon); err != nil {
		return nil, helper.NewError("parse embedded lexicon", err)
	}
	return &Tagger{lexicon: lexicon}, nil
}

// Tag assigns one tag per token: lexicon lookup first with NN as the
// fallback for unknown tokens, then each contextual rule runs over the
// whole sequence in priority order. Because rules read neighbouring tags,
// output for a token depends on the full input sequence.
func (t *Tagger) Tag(tokens []string) []model.TaggedToken {
	tagged := make([]model.TaggedToken, len(tokens))
	known := make([]bool, len(tokens))

	for i, token := range tokens {
		tagged[i].Token = token
		tagged[i].Tag, known[i] = t.lexical(token)
	}

	for _, rule := range contextRules {
		for i := range tagged {
			if tag, ok := rule.apply(tagged, known, i); ok {
				tagged[i].Tag = tag
			}
		}
	}

	return tagged
}

// lexical returns the most likely tag for a single token and whether the
// token was found in the lexicon
func (t *Tagger) lexical(token string) (model.Tag, bool) {
	if isPunctuation(token) {
		return model.TagPunctuation, true
	}
	if numberRe.MatchString(token) {
		return model.TagNumber, true
	}
	if tag, ok := t.lexicon[strings.ToLower(token)]; ok {
		return tag, true
	}
	return model.TagNoun, false
}

func isPunctuation(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return len(token) > 0
}

// contextRule is one correction applied over the full sequence. Rules run
// in the order listed in contextRules; later rules see earlier corrections.
type contextRule struct {
	name  string
	apply func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool)
}

var contextRules = []contextRule{
	{
		// "to submit" - infinitive marker forces the base form
		name: "TO NN -> VB",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			if i > 0 && tagged[i-1].Tag == model.TagTo && tagged[i].Tag == model.TagNoun {
				return model.TagVerbBase, true
			}
			return "", false
		},
	},
	{
		// "should review" - a modal is followed by a base form
		name: "MD NN -> VB",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			if i > 0 && tagged[i-1].Tag == model.TagModal && tagged[i].Tag == model.TagNoun {
				return model.TagVerbBase, true
			}
			return "", false
		},
	},
	{
		// "we draft" - unknown noun after a pronoun is usually a present verb
		name: "PRP NN -> VBP",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			if i > 0 && tagged[i-1].Tag == model.TagPronoun && tagged[i].Tag == model.TagNoun && !known[i] {
				return model.TagVerbPresent, true
			}
			return "", false
		},
	},
	{
		name: "unknown -ing -> VBG",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			token := strings.ToLower(tagged[i].Token)
			if !known[i] && tagged[i].Tag == model.TagNoun && len(token) > 4 && strings.HasSuffix(token, "ing") {
				return model.TagVerbGerund, true
			}
			return "", false
		},
	},
	{
		name: "unknown -ed -> VBD",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			token := strings.ToLower(tagged[i].Token)
			if !known[i] && tagged[i].Tag == model.TagNoun && len(token) > 3 && strings.HasSuffix(token, "ed") {
				return model.TagVerbPast, true
			}
			return "", false
		},
	},
	{
		// "the scheduled meeting" - past tense after a determiner is a participle
		name: "DT VBD -> VBN",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			if i > 0 && tagged[i-1].Tag == model.TagDeterminer && tagged[i].Tag == model.TagVerbPast {
				return model.TagVerbPastPart, true
			}
			return "", false
		},
	},
	{
		name: "unknown -ly -> RB",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			token := strings.ToLower(tagged[i].Token)
			if !known[i] && tagged[i].Tag == model.TagNoun && len(token) > 3 && strings.HasSuffix(token, "ly") {
				return model.TagAdverb, true
			}
			return "", false
		},
	},
	{
		// "the review" - a base form directly after a determiner is a noun
		name: "DT VB -> NN",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			if i > 0 && tagged[i-1].Tag == model.TagDeterminer && tagged[i].Tag == model.TagVerbBase {
				return model.TagNoun, true
			}
			return "", false
		},
	},
	{
		// Capitalised unknown token inside a sentence is a proper noun
		name: "unknown capitalised -> NNP",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			if known[i] || tagged[i].Tag != model.TagNoun {
				return "", false
			}
			if i == 0 || tagged[i-1].Tag == model.TagPunctuation {
				return "", false
			}
			runes := []rune(tagged[i].Token)
			if len(runes) > 0 && unicode.IsUpper(runes[0]) {
				return model.TagProperNoun, true
			}
			return "", false
		},
	},
	{
		name: "unknown plural -s -> NNS",
		apply: func(tagged []model.TaggedToken, known []bool, i int) (model.Tag, bool) {
			token := strings.ToLower(tagged[i].Token)
			if !known[i] && tagged[i].Tag == model.TagNoun && len(token) > 3 &&
				strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") {
				return model.TagNounPlural, true
			}
			return "", false
		},
	},
}
