package ports

// DialogRegistry opens and closes dialogs by key. At most one dialog is the
// active one; opening a key makes it active.
type DialogRegistry interface {
	Open(key string)
	Close(key string)
	IsOpen(key string) bool
	Active() (string, bool)
}
