package domain

// TitleSet is an exact-match set of page titles.
type TitleSet map[string]struct{}

// NewTitleSet builds a TitleSet from the given titles. Duplicates collapse.
func NewTitleSet(titles ...string) TitleSet {
	s := make(TitleSet, len(titles))
	for _, t := range titles {
		s[t] = struct{}{}
	}

	return s
}

// Contains reports whether title is in the set. A nil set contains nothing.
func (s TitleSet) Contains(title string) bool {
	_, ok := s[title]

	return ok
}

// Clone returns an independent copy of the set.
func (s TitleSet) Clone() TitleSet {
	out := make(TitleSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}

	return out
}
