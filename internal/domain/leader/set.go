package leader

import "sort"

// Set is a keyed set of leaders that remembers insertion order.
type Set struct {
	order []string
	byKey map[string]Leader
}

func NewSet() *Set {
	return &Set{byKey: make(map[string]Leader)}
}

// Merge unions the given groups by key. A leader keeps the position of its
// first occurrence; later occurrences only add top seasons and fill blanks.
func Merge(groups ...[]Leader) *Set {
	set := NewSet()
	for _, group := range groups {
		for _, item := range group {
			set.Add(item)
		}
	}
	return set
}

// Add inserts l and reports whether it was new. Leaders without any
// identity are dropped.
func (s *Set) Add(l Leader) bool {
	key := l.Key()
	if key == "" {
		return false
	}

	existing, ok := s.byKey[key]
	if !ok {
		l.TopSeasons = normalizeSeasons(l.TopSeasons)
		s.byKey[key] = l
		s.order = append(s.order, key)
		return true
	}

	if existing.Name == "" {
		existing.Name = l.Name
	}
	if existing.URL == "" {
		existing.URL = l.URL
	}
	if l.CareerGoals > existing.CareerGoals {
		existing.CareerGoals = l.CareerGoals
	}
	existing.TopSeasons = normalizeSeasons(append(existing.TopSeasons, l.TopSeasons...))
	s.byKey[key] = existing
	return false
}

func (s *Set) Get(key string) (Leader, bool) {
	l, ok := s.byKey[key]
	return l, ok
}

func (s *Set) Len() int {
	return len(s.order)
}

func (s *Set) List() []Leader {
	out := make([]Leader, 0, len(s.order))
	for _, key := range s.order {
		item := s.byKey[key]
		item.TopSeasons = append([]int(nil), item.TopSeasons...)
		out = append(out, item)
	}
	return out
}

func normalizeSeasons(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}
