package ports

// ClickEvent is a click anywhere in the host surface. Path lists the ids of
// the clicked element and its ancestors, innermost first; Classes lists the
// classes found on that same chain.
type ClickEvent struct {
	Path    []string
	Classes []string
}

// ClickSource delivers surface-wide click events to subscribers. The
// returned function unsubscribes and must be safe to call more than once.
type ClickSource interface {
	Subscribe(listener func(ClickEvent)) (unsubscribe func())
}
