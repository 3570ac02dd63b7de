package grammar

import (
	verr "github.com/nihei9/llgram/error"
)

// followSet holds the FOLLOW sets of the non-terminals, indexed by non-terminal ID.
type followSet struct {
	nonTerminals []*symbolSet
}

func newFollowSet(g *Grammar) *followSet {
	flw := &followSet{
		nonTerminals: make([]*symbolSet, len(g.nonTerminals)),
	}
	for _, n := range g.nonTerminals {
		flw.nonTerminals[n.id] = newSymbolSet()
	}
	return flw
}

func (flw *followSet) findBySymbol(sym *NonTerminal) *symbolSet {
	return flw.nonTerminals[sym.id]
}

func genFollowSet(g *Grammar, first *firstSet) (*followSet, error) {
	if g.start == nil {
		tracer().Errorf("%v", cmpErrNoStartSymbol)
		return nil, &verr.SpecError{
			Cause: cmpErrNoStartSymbol,
		}
	}

	flw := newFollowSet(g)
	flw.findBySymbol(g.start).add(g.eof.id)

	passes := 0
	for {
		passes++
		more := false
		for _, r := range g.rules {
			for i, sym := range r.RHS {
				nt, ok := sym.(*NonTerminal)
				if !ok {
					continue
				}
				changed, err := genFollowEntry(first, flw, flw.findBySymbol(nt), r, i)
				if err != nil {
					return nil, err
				}
				if changed {
					tracer().Debugf("pass %v: FOLLOW(%v) grew by %v", passes, nt, r.Abbr())
					more = true
				}
			}
		}
		if !more {
			break
		}
	}
	tracer().Infof("FOLLOW sets converged after %v passes", passes)
	return flw, nil
}

// genFollowEntry adds to acc what can follow the element at position pos of the RHS of r.
func genFollowEntry(first *firstSet, flw *followSet, acc *symbolSet, r *Rule, pos int) (bool, error) {
	fst, err := first.find(r.RHS[pos+1:])
	if err != nil {
		return false, err
	}
	changed := acc.mergeExcept(fst, first.epsilon)
	if fst.contains(first.epsilon) {
		if acc.merge(flw.findBySymbol(r.LHS)) {
			changed = true
		}
	}
	return changed, nil
}
