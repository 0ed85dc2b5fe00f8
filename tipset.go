package ink

// TipSet is a named, ordered collection of brush tips, typically
// decoded from an external brush archive by the host and loaded through
// a Loader.
type TipSet struct {
	names []string
	tips  []*BrushTip
}

// Add appends a named tip to the set.
func (s *TipSet) Add(name string, tip *BrushTip) {
	s.names = append(s.names, name)
	s.tips = append(s.tips, tip)
}

// Len returns the number of tips in the set.
func (s *TipSet) Len() int { return len(s.tips) }

// Name returns the display name of the i-th tip.
func (s *TipSet) Name(i int) string { return s.names[i] }

// Tip returns the i-th tip.
func (s *TipSet) Tip(i int) *BrushTip { return s.tips[i] }

// ByName returns the first tip with the given display name.
func (s *TipSet) ByName(name string) (*BrushTip, bool) {
	for i, n := range s.names {
		if n == name {
			return s.tips[i], true
		}
	}
	return nil, false
}

// DefaultTipSet returns the built-in procedural tips: a soft and a hard
// round brush.
func DefaultTipSet() *TipSet {
	s := &TipSet{}
	s.Add("Soft Round", NewRoundTip(64, 0.25))
	s.Add("Hard Round", NewRoundTip(64, 1))
	return s
}
