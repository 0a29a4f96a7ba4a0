package report

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/gcl/scanner"
)

// KindCount is an entry of a token statistic.
type KindCount struct {
	Kind  scanner.TokKind `json:"kind" yaml:"kind"`
	Count int             `json:"count" yaml:"count"`
}

func kindComparator(k1, k2 interface{}) int {
	return utils.IntComparator(int(k1.(scanner.TokKind)), int(k2.(scanner.TokKind)))
}

// TokenStats counts tokens per kind. Entries are ordered by kind; kinds not
// present in tokens are omitted.
func TokenStats(tokens []scanner.Token) []KindCount {
	counts := treemap.NewWith(kindComparator)
	for _, t := range tokens {
		n, found := counts.Get(t.Kind)
		if !found {
			n = 0
		}
		counts.Put(t.Kind, n.(int)+1)
	}
	stats := make([]KindCount, 0, counts.Size())
	it := counts.Iterator()
	for it.Next() {
		stats = append(stats, KindCount{Kind: it.Key().(scanner.TokKind), Count: it.Value().(int)})
	}
	return stats
}
