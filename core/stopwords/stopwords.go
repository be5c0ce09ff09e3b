package stopwords

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var raw string

// Set holds the English stopword list, built once at init and read-only after.
var Set map[string]struct{}

func init() {
	Set = make(map[string]struct{})
	scan := bufio.NewScanner(strings.NewReader(raw))
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w != "" {
			Set[w] = struct{}{}
		}
	}
}

// IsStopword reports whether the lowercased word is in the stopword set
func IsStopword(word string) bool {
	_, ok := Set[strings.ToLower(word)]
	return ok
}

// Filter removes any token present in the stopword set.
func Filter(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if !IsStopword(t) {
			out = append(out, t)
		}
	}
	return out
}
