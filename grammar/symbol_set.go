package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// symbolSet is a set of terminal IDs iterated in ascending order.
type symbolSet struct {
	s *treeset.Set
}

func newSymbolSet(ids ...int) *symbolSet {
	s := &symbolSet{
		s: treeset.NewWith(utils.IntComparator),
	}
	for _, id := range ids {
		s.s.Add(id)
	}
	return s
}

func (s *symbolSet) add(id int) bool {
	if s.s.Contains(id) {
		return false
	}
	s.s.Add(id)
	return true
}

func (s *symbolSet) contains(id int) bool {
	return s.s.Contains(id)
}

// mergeExcept adds all members of target but except to s.
func (s *symbolSet) mergeExcept(target *symbolSet, except int) bool {
	if target == nil {
		return false
	}
	changed := false
	for _, v := range target.s.Values() {
		id := v.(int)
		if id == except {
			continue
		}
		if s.add(id) {
			changed = true
		}
	}
	return changed
}

func (s *symbolSet) merge(target *symbolSet) bool {
	return s.mergeExcept(target, -1)
}

func (s *symbolSet) ids() []int {
	ids := make([]int, 0, s.s.Size())
	for _, v := range s.s.Values() {
		ids = append(ids, v.(int))
	}
	return ids
}
