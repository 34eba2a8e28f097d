package route

import (
	"slices"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to n known URLs closest to url by edit distance, for
// "did you mean" hints after a failed Resolve. Redirect rows are skipped
// and candidates further away than half their own length are dropped. A
// negative n is treated as zero.
func Suggest(entries []Entry, url string, n int) []string {
	n = max(n, 0)
	type candidate struct {
		url  string
		dist int
	}

	var cands []candidate
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.RedirectTo != "" || seen[e.URL] {
			continue
		}
		seen[e.URL] = true

		d := levenshtein.ComputeDistance(url, e.URL)
		if d > max(len(url), len(e.URL))/2 {
			continue
		}
		cands = append(cands, candidate{url: e.URL, dist: d})
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		return a.dist - b.dist
	})

	out := make([]string, 0, min(n, len(cands)))
	for _, c := range cands {
		if len(out) == n {
			break
		}
		out = append(out, c.url)
	}
	return out
}
