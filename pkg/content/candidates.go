package content

import "regexp"

// candidatePattern is the default just-in-time extractor: runs of characters
// that cannot appear inside markup delimiters, not ending in a colon.
var candidatePattern = regexp.MustCompile("[^<>\"'`\\s]*[^<>\"'`\\s:]")

// Candidates returns the distinct candidate class tokens in data, in order
// of first appearance.
func Candidates(data []byte) []string {
	matches := candidatePattern.FindAll(data, -1)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		s := string(m)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// CandidateSet merges the candidates of all sources, keeping first-seen
// order across sources.
func CandidateSet(sources []Source) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, src := range sources {
		for _, c := range Candidates(src.Content) {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
