// Package matcher implements resource database lookup: selecting the
// best-matching entry for a (name, optional class) query according to the
// three-rule precedence order.
package matcher

import (
	"github.com/cwbudde/go-xrm/internal/database"
	"github.com/cwbudde/go-xrm/internal/entry"
)

// flag is a per-query-position bitset recording how a candidate entry
// consumed that position during matching.
type flag uint8

const (
	flagName flag = 1 << iota
	flagClass
	flagWildcard
	flagSkipped
	flagPrecedingLoose
)

// checkpoint is a saved backtracking point: the database cursor before a
// greedy choice was made on a loose-bound component, plus the flag vector
// at that point (length equal to the query cursor at the time).
type checkpoint struct {
	dbIdx int
	flags []flag
}

// Match selects the best-matching entry in db for (queryName, queryClass)
// and returns its value. queryClass may be nil, meaning the query carries
// no class ("a class string that is null/empty is treated as
// absent"). Both query entries must have been parsed in entry.QueryOnly
// mode. Returns ("", false) if no entry matches or the preconditions on
// queryClass's component count are violated.
func Match(db *database.Database, queryName, queryClass *entry.Entry) (string, bool) {
	if queryClass != nil && queryClass.Len() != queryName.Len() {
		return "", false
	}

	var best []flag
	var bestValue string
	found := false

	for _, e := range db.Entries() {
		flags, ok := matchEntry(e.Parts(), queryName, queryClass)
		if !ok {
			continue
		}
		if !found || candidateWins(best, flags) {
			best = flags
			found = true
			if v, has := e.Value(); has {
				bestValue = v
			}
		}
	}

	if !found {
		return "", false
	}
	return bestValue, true
}

// matchEntry attempts to align dbParts against the query, per position,
// It returns the resulting flag vector and whether the
// alignment succeeded (db and query exhausted simultaneously).
//
// Loose-bound components matched greedily (rules 1-3) may also have been
// legitimately skipped (rule 4); matchEntry tries greedy first and
// backtracks to the skip interpretation on downstream failure, using an
// explicit checkpoint stack rather than recursion.
func matchEntry(dbParts []entry.Part, queryName, queryClass *entry.Entry) ([]flag, bool) {
	n := queryName.Len()
	flags := make([]flag, 0, n)
	dbIdx := 0
	var stack []checkpoint

	for {
		if len(flags) == n && dbIdx == len(dbParts) {
			return flags, true
		}

		matched := false
		if len(flags) < n && dbIdx < len(dbParts) {
			qIdx := len(flags)
			db := dbParts[dbIdx]
			qn, _ := queryName.At(qIdx).Normal()

			switch {
			case isNameMatch(db, qn):
				flags, dbIdx = advance(&stack, flags, dbIdx, db, flagName)
				matched = true
			case queryClass != nil && isClassMatch(db, queryClass, qIdx):
				flags, dbIdx = advance(&stack, flags, dbIdx, db, flagClass)
				matched = true
			case db.IsWildcard():
				flags, dbIdx = advance(&stack, flags, dbIdx, db, flagWildcard)
				matched = true
			case db.Binding == entry.Loose:
				flags = append(flags, flagSkipped)
				matched = true
			}
		}

		if matched {
			continue
		}

		if len(stack) == 0 {
			return nil, false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dbIdx = top.dbIdx
		flags = append(top.flags, flagSkipped)
	}
}

// advance records a greedy rule-1/2/3 match at position dbIdx: if the
// database component bound in loosely, it pushes a checkpoint so the
// skip interpretation (rule 4) can be retried later, and sets
// PRECEDING_LOOSE on the flag being recorded.
func advance(stack *[]checkpoint, flags []flag, dbIdx int, db entry.Part, f flag) ([]flag, int) {
	if db.Binding == entry.Loose {
		snapshot := make([]flag, len(flags))
		copy(snapshot, flags)
		*stack = append(*stack, checkpoint{dbIdx: dbIdx, flags: snapshot})
		f |= flagPrecedingLoose
	}
	return append(flags, f), dbIdx + 1
}

func isNameMatch(p entry.Part, qn entry.Normal) bool {
	n, ok := p.Normal()
	return ok && n.Name == qn.Name
}

func isClassMatch(p entry.Part, queryClass *entry.Entry, qIdx int) bool {
	qc, ok := queryClass.At(qIdx).Normal()
	if !ok {
		return false
	}
	n, ok2 := p.Normal()
	return ok2 && n.Name == qc.Name
}

// candidateWins scans positions left to right,
// the first position where a rule distinguishes the two flag vectors picks
// the winner outright; if no position ever distinguishes them, the
// incumbent (best) keeps its place.
func candidateWins(best, candidate []flag) bool {
	for i := range best {
		b, c := best[i], candidate[i]

		concrete := flagName | flagClass | flagWildcard

		// Rule 1: concrete beats skipped.
		if b&flagSkipped != 0 && c&concrete != 0 {
			return true
		}
		if c&flagSkipped != 0 && b&concrete != 0 {
			return false
		}

		// Rule 2: name beats class and wildcard; class beats wildcard.
		if b&(flagClass|flagWildcard) != 0 && c&flagName != 0 {
			return true
		}
		if c&(flagClass|flagWildcard) != 0 && b&flagName != 0 {
			return false
		}
		if b&flagWildcard != 0 && c&flagClass != 0 {
			return true
		}
		if c&flagWildcard != 0 && b&flagClass != 0 {
			return false
		}

		// Rule 3: tight beats loose lead-in.
		if b&flagPrecedingLoose != 0 && c&flagPrecedingLoose == 0 {
			return true
		}
		if c&flagPrecedingLoose != 0 && b&flagPrecedingLoose == 0 {
			return false
		}
	}
	return false
}
