package table

// Classification is the rendering mode of a column.
type Classification int

const (
	Normal Classification = iota
	Multiple
	Specific
	ActionColumn
)

func (c Classification) String() string {
	switch c {
	case Multiple:
		return "multiple"
	case Specific:
		return "specific"
	case ActionColumn:
		return "action"
	default:
		return "normal"
	}
}

// Classify returns the rendering mode of key. Action wins over specific,
// specific over multiple; anything else is normal.
func Classify(key string, cfg *Config) Classification {
	switch {
	case IsActionColumn(key, cfg):
		return ActionColumn
	case IsSpecificColumn(key, cfg):
		return Specific
	case IsMultipleColumn(key, cfg):
		return Multiple
	default:
		return Normal
	}
}

func IsActionColumn(key string, cfg *Config) bool {
	if cfg == nil || !cfg.Actions.IsActions {
		return false
	}
	_, ok := cfg.Actions.ColumnIndex[key]
	return ok
}

func IsSpecificColumn(key string, cfg *Config) bool {
	return cfg != nil && cfg.SpecificColumn.IsSpecific && cfg.SpecificColumn.ColumnIndex.Has(key)
}

func IsMultipleColumn(key string, cfg *Config) bool {
	return cfg != nil && cfg.MultipleColumns.IsMultipleColumns && cfg.MultipleColumns.ColumnIndex.Has(key)
}

// IsNormalColumn reports whether key is in none of the multiple, specific or
// action key sets. The enable flags are not consulted.
func IsNormalColumn(key string, cfg *Config) bool {
	if cfg == nil {
		return true
	}
	_, isAction := cfg.Actions.ColumnIndex[key]
	return !isAction && !cfg.SpecificColumn.ColumnIndex.Has(key) && !cfg.MultipleColumns.ColumnIndex.Has(key)
}
