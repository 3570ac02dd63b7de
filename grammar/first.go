package grammar

import "fmt"

// firstSet holds the FIRST sets of all terminals and non-terminals, indexed by element ID. The
// epsilon terminal is a member of a set when the element can derive the empty string.
type firstSet struct {
	epsilon      int
	terminals    []*symbolSet
	nonTerminals []*symbolSet
}

func newFirstSet(g *Grammar) *firstSet {
	fst := &firstSet{
		epsilon:      g.epsilon.id,
		terminals:    make([]*symbolSet, len(g.terminals)),
		nonTerminals: make([]*symbolSet, len(g.nonTerminals)),
	}
	for _, t := range g.terminals {
		fst.terminals[t.id] = newSymbolSet(t.id)
	}
	for _, n := range g.nonTerminals {
		fst.nonTerminals[n.id] = newSymbolSet()
	}
	return fst
}

func (fst *firstSet) findBySymbol(sym Element) *symbolSet {
	switch s := sym.(type) {
	case *Terminal:
		return fst.terminals[s.id]
	case *NonTerminal:
		return fst.nonTerminals[s.id]
	}
	return nil
}

// find returns FIRST of a sequence of elements. Semantic tokens are skipped.
func (fst *firstSet) find(seq []Element) (*symbolSet, error) {
	entry := newSymbolSet()
	for _, sym := range seq {
		if _, ok := sym.(*SemanticToken); ok {
			continue
		}
		e := fst.findBySymbol(sym)
		if e == nil {
			return nil, fmt.Errorf("an entry of FIRST was not found; symbol: %v", sym)
		}
		entry.mergeExcept(e, fst.epsilon)
		if !e.contains(fst.epsilon) {
			return entry, nil
		}
	}
	entry.add(fst.epsilon)
	return entry, nil
}

func genFirstSet(g *Grammar) (*firstSet, error) {
	fst := newFirstSet(g)
	passes := 0
	for {
		passes++
		more := false
		for _, r := range g.rules {
			acc := fst.findBySymbol(r.LHS)
			changed, err := genRuleFirstEntry(fst, acc, r)
			if err != nil {
				return nil, err
			}
			if changed {
				tracer().Debugf("pass %v: FIRST(%v) grew by %v", passes, r.LHS, r.Abbr())
				more = true
			}
		}
		if !more {
			break
		}
	}
	tracer().Infof("FIRST sets converged after %v passes", passes)
	return fst, nil
}

func genRuleFirstEntry(fst *firstSet, acc *symbolSet, r *Rule) (bool, error) {
	changed := false
	for _, sym := range r.RHS {
		if _, ok := sym.(*SemanticToken); ok {
			continue
		}
		e := fst.findBySymbol(sym)
		if e == nil {
			return false, fmt.Errorf("an entry of FIRST was not found; symbol: %v", sym)
		}
		if acc.mergeExcept(e, fst.epsilon) {
			changed = true
		}
		if !e.contains(fst.epsilon) {
			return changed, nil
		}
	}
	if acc.add(fst.epsilon) {
		changed = true
	}
	return changed, nil
}
