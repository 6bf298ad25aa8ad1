package style

// LoadMoreSwap drives the "load more" button animation: while active the
// button and content leaves show their clicked variants, and Stop restores
// whatever was stored before Start.
type LoadMoreSwap struct {
	tree    *Tree
	active  bool
	button  *Entry
	content *Entry
}

// NewLoadMoreSwap binds a swap to tree.
func NewLoadMoreSwap(tree *Tree) *LoadMoreSwap {
	return &LoadMoreSwap{tree: tree}
}

// Active reports whether the clicked variants are in effect.
func (s *LoadMoreSwap) Active() bool {
	return s.active
}

// Start snapshots the global button and content overrides and replaces them
// with the clicked classes. Calling Start twice keeps the first snapshot.
func (s *LoadMoreSwap) Start() {
	if s.active {
		return
	}
	s.button = s.snapshot(LoadMoreButton)
	s.content = s.snapshot(LoadMoreContent)

	s.tree.global[LoadMoreButton] = Entry{Class: s.tree.Get(LoadMoreButtonClick, Global())}
	s.tree.global[LoadMoreContent] = Entry{Class: s.tree.Get(LoadMoreContentClick, Global())}
	s.active = true
}

// Stop restores the snapshot taken by Start.
func (s *LoadMoreSwap) Stop() {
	if !s.active {
		return
	}
	s.restore(LoadMoreButton, s.button)
	s.restore(LoadMoreContent, s.content)
	s.button, s.content = nil, nil
	s.active = false
}

func (s *LoadMoreSwap) snapshot(p Path) *Entry {
	entry, ok := s.tree.global[p]
	if !ok {
		return nil
	}
	saved := entry.clone()
	return &saved
}

func (s *LoadMoreSwap) restore(p Path, saved *Entry) {
	if saved == nil {
		delete(s.tree.global, p)
		return
	}
	s.tree.global[p] = *saved
}
