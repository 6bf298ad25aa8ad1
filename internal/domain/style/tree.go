package style

import (
	"fmt"
	"sort"
	"strings"

	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

// Scope selects the override tier a read or write targets. The zero Scope is
// the global tier.
type Scope struct {
	Column string `json:"column,omitempty" yaml:"column,omitempty"`
	RowID  string `json:"row,omitempty" yaml:"row,omitempty"`
}

// Global is the scope of the global tier.
func Global() Scope { return Scope{} }

// Column scopes to one column key.
func Column(key string) Scope { return Scope{Column: key} }

// Cell scopes to one (row id, column key) pair.
func Cell(rowID, column string) Scope { return Scope{Column: column, RowID: rowID} }

func (s Scope) tier() Tier {
	switch {
	case s.RowID != "":
		return TierRow
	case s.Column != "":
		return TierColumn
	default:
		return TierGlobal
	}
}

func (s Scope) String() string {
	switch s.tier() {
	case TierRow:
		return fmt.Sprintf("row %s column %s", s.RowID, s.Column)
	case TierColumn:
		return fmt.Sprintf("column %s", s.Column)
	default:
		return "global"
	}
}

// Tree holds the host's overrides on top of DefaultStyleTable. Reads fall
// back from the (row, column) tier to the column tier to the global tier;
// writes only ever touch the tier they name.
type Tree struct {
	global  map[Path]Entry
	column  map[Path]map[string]Entry
	cell    map[Path]map[string]map[string]Entry
	updated map[IconGroup]bool
}

// NewTree returns a tree with no overrides.
func NewTree() *Tree {
	return &Tree{
		global:  make(map[Path]Entry),
		column:  make(map[Path]map[string]Entry),
		cell:    make(map[Path]map[string]map[string]Entry),
		updated: make(map[IconGroup]bool),
	}
}

// Get returns the effective class string for the leaf at scope.
func (t *Tree) Get(p Path, scope Scope) string {
	return t.Entry(p, scope).String()
}

// PathClasses returns the effective path class list for an SVG leaf. Class
// leaves yield a single element, or none when empty.
func (t *Tree) PathClasses(p Path, scope Scope) []string {
	entry := t.Entry(p, scope)
	if len(entry.Paths) > 0 {
		return entry.Paths
	}
	if entry.Class == "" {
		return nil
	}
	return []string{entry.Class}
}

// Entry resolves the leaf at scope. Unknown paths resolve to the zero Entry.
func (t *Tree) Entry(p Path, scope Scope) Entry {
	spec, ok := leafIndex[p]
	if !ok {
		return Entry{}
	}

	if scope.RowID != "" && scope.Column != "" && spec.tiers&TierRow != 0 {
		if entry, ok := t.cell[p][scope.RowID][scope.Column]; ok {
			return entry.clone()
		}
	}
	if scope.Column != "" && spec.tiers&TierColumn != 0 {
		if entry, ok := t.column[p][scope.Column]; ok {
			return entry.clone()
		}
		if class, ok := spec.columnClass[scope.Column]; ok {
			return Entry{Class: class}
		}
	}
	if entry, ok := t.global[p]; ok {
		return entry.clone()
	}
	return spec.defaultEntry()
}

// Set stores a class string at the tier named by scope.
func (t *Tree) Set(p Path, value string, scope Scope) error {
	spec, err := t.writable(p, scope)
	if err != nil {
		return err
	}
	if spec.kind != kindClass {
		return tkerrors.NewConfigurationError(string(p), "", "leaf holds a path list")
	}
	t.store(spec, scope, Entry{Class: value})
	return nil
}

// SetPaths stores a path class list at the tier named by scope.
func (t *Tree) SetPaths(p Path, paths []string, scope Scope) error {
	spec, err := t.writable(p, scope)
	if err != nil {
		return err
	}
	if spec.kind != kindPaths {
		return tkerrors.NewConfigurationError(string(p), "", "leaf holds a single class")
	}
	t.store(spec, scope, Entry{Paths: append([]string(nil), paths...)})
	return nil
}

// SetPathAt replaces one element of a global path list, growing the list
// when index is past its end.
func (t *Tree) SetPathAt(p Path, index int, value string) error {
	spec, err := t.writable(p, Global())
	if err != nil {
		return err
	}
	if spec.kind != kindPaths {
		return tkerrors.NewConfigurationError(string(p), "", "leaf holds a single class")
	}
	if index < 0 {
		return tkerrors.NewConfigurationError(string(p), "", fmt.Sprintf("negative path index %d", index))
	}

	paths := t.Entry(p, Global()).Paths
	for len(paths) <= index {
		paths = append(paths, "")
	}
	paths[index] = value
	t.store(spec, Global(), Entry{Paths: paths})
	return nil
}

// SetDotted parses a dotted path and stores value there. Path-list leaves
// take value as whitespace separated classes.
func (t *Tree) SetDotted(dotted, value string, scope Scope) error {
	p, err := ParsePath(dotted)
	if err != nil {
		return err
	}
	if p.IsPathList() {
		return t.SetPaths(p, strings.Fields(value), scope)
	}
	return t.Set(p, value, scope)
}

// Append adds value to the class currently in effect at scope and stores the
// result at that tier.
func (t *Tree) Append(p Path, value string, scope Scope) error {
	if _, err := t.writable(p, scope); err != nil {
		return err
	}
	return t.Set(p, JoinClasses(t.Entry(p, scope).Class, value), scope)
}

// Clear removes the override stored at exactly the tier named by scope.
// Broader tiers are left alone.
func (t *Tree) Clear(p Path, scope Scope) error {
	if _, err := t.writable(p, scope); err != nil {
		return err
	}
	switch scope.tier() {
	case TierRow:
		delete(t.cell[p][scope.RowID], scope.Column)
	case TierColumn:
		delete(t.column[p], scope.Column)
	default:
		delete(t.global, p)
	}
	return nil
}

// IsUpdated reports whether any leaf of the icon group has been overridden,
// which tells the renderer a non-default icon shape was supplied.
func (t *Tree) IsUpdated(group IconGroup) bool {
	return t.updated[group]
}

// Override is one stored host value.
type Override struct {
	Path  Path  `json:"path" yaml:"path"`
	Scope Scope `json:"scope" yaml:"scope"`
	Entry Entry `json:"entry" yaml:"entry"`
}

// Overrides lists every stored value ordered by path, then scope.
func (t *Tree) Overrides() []Override {
	var out []Override
	for p, entry := range t.global {
		out = append(out, Override{Path: p, Entry: entry.clone()})
	}
	for p, byColumn := range t.column {
		for column, entry := range byColumn {
			out = append(out, Override{Path: p, Scope: Column(column), Entry: entry.clone()})
		}
	}
	for p, byRow := range t.cell {
		for row, byColumn := range byRow {
			for column, entry := range byColumn {
				out = append(out, Override{Path: p, Scope: Cell(row, column), Entry: entry.clone()})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		if out[i].Scope.RowID != out[j].Scope.RowID {
			return out[i].Scope.RowID < out[j].Scope.RowID
		}
		return out[i].Scope.Column < out[j].Scope.Column
	})
	return out
}

func (t *Tree) writable(p Path, scope Scope) (leafSpec, error) {
	spec, err := lookupLeaf(p)
	if err != nil {
		return leafSpec{}, err
	}
	if scope.RowID != "" && scope.Column == "" {
		return leafSpec{}, tkerrors.NewConfigurationError(string(p), "", "row override needs a column")
	}
	if tier := scope.tier(); spec.tiers&tier == 0 {
		return leafSpec{}, tkerrors.NewConfigurationError(string(p), "", fmt.Sprintf("%s override not supported", scope))
	}
	return spec, nil
}

func (t *Tree) store(spec leafSpec, scope Scope, entry Entry) {
	p := spec.path
	switch scope.tier() {
	case TierRow:
		byRow, ok := t.cell[p]
		if !ok {
			byRow = make(map[string]map[string]Entry)
			t.cell[p] = byRow
		}
		byColumn, ok := byRow[scope.RowID]
		if !ok {
			byColumn = make(map[string]Entry)
			byRow[scope.RowID] = byColumn
		}
		byColumn[scope.Column] = entry
	case TierColumn:
		byColumn, ok := t.column[p]
		if !ok {
			byColumn = make(map[string]Entry)
			t.column[p] = byColumn
		}
		byColumn[scope.Column] = entry
	default:
		t.global[p] = entry
	}
	if spec.group != "" {
		t.updated[spec.group] = true
	}
}

// JoinClasses joins class lists with single spaces, skipping blanks.
func JoinClasses(parts ...string) string {
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return strings.Join(fields, " ")
}
