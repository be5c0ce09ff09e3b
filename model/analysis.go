package model

import "strings"

// Tag is a part-of-speech label from a fixed Penn-style tag set
type Tag string

// The closed tag set assigned by the tagger. All verb tags share the VB prefix.
const (
	TagNoun         Tag = "NN"   // singular noun, also the fallback for unknown tokens
	TagNounPlural   Tag = "NNS"  // plural noun
	TagProperNoun   Tag = "NNP"  // proper noun
	TagVerbBase     Tag = "VB"   // verb, base form
	TagVerbPast     Tag = "VBD"  // verb, past tense
	TagVerbGerund   Tag = "VBG"  // verb, gerund/present participle
	TagVerbPastPart Tag = "VBN"  // verb, past participle
	TagVerbPresent  Tag = "VBP"  // verb, non-3rd person singular present
	TagVerbThirdSg  Tag = "VBZ"  // verb, 3rd person singular present
	TagModal        Tag = "MD"   // modal (can, should, will)
	TagAdjective    Tag = "JJ"   // adjective
	TagAdverb       Tag = "RB"   // adverb
	TagDeterminer   Tag = "DT"   // determiner (the, a, this)
	TagPreposition  Tag = "IN"   // preposition or subordinating conjunction
	TagConjunction  Tag = "CC"   // coordinating conjunction
	TagPronoun      Tag = "PRP"  // personal pronoun
	TagPossessive   Tag = "PRP$" // possessive pronoun
	TagTo           Tag = "TO"   // the word "to"
	TagNumber       Tag = "CD"   // cardinal number
	TagInterjection Tag = "UH"   // interjection (please, hello)
	TagPunctuation  Tag = "."    // punctuation
)

// IsVerb reports whether the tag belongs to the verb family.
// Modals (MD) are not part of the family and never become action items.
func (t Tag) IsVerb() bool {
	return strings.HasPrefix(string(t), string(TagVerbBase))
}

// TaggedToken pairs a token with its part-of-speech tag
type TaggedToken struct {
	Token string `json:"token"`
	Tag   Tag    `json:"tag"`
}

// AnalysisResult is the structured analysis of one transcript.
// WordCount always equals len(Tokens), and ActionItems is an
// order-preserving subsequence of Tokens filtered to verb tags.
type AnalysisResult struct {
	WordCount   int      `json:"wordCount"`
	Tokens      []string `json:"tokens"`
	ActionItems []string `json:"actionItems"`
	Keywords    []string `json:"keywords"`
}

// EmptyAnalysisResult returns the zeroed result used for empty input
func EmptyAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		WordCount:   0,
		Tokens:      []string{},
		ActionItems: []string{},
		Keywords:    []string{},
	}
}

// Summary sentinels. Summarization never fails outward; it falls back
// to one of these exact strings instead.
const (
	SummaryUnavailable = "No summary available"
	SummaryError       = "Error generating summary"
)
