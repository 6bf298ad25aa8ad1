package config

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/responsive"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	paginationTypes = map[string]struct{}{"numbered": {}, "load_more": {}, "loadMore": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("breakpoint", func(fl validator.FieldLevel) bool {
			_, ok := responsive.Floors[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("activity_type", func(fl validator.FieldLevel) bool {
			_, err := action.ParseActivityType(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("behavior", func(fl validator.FieldLevel) bool {
			_, err := action.ParseBehavior(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("pagination_type", func(fl validator.FieldLevel) bool {
			_, ok := paginationTypes[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("icon_preset", func(fl validator.FieldLevel) bool {
			_, ok := action.IconPresets[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("button_preset", func(fl validator.FieldLevel) bool {
			_, ok := action.ButtonPresets[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on a table
// document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tkerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	keys := make(map[string]int, len(cfg.Headers))
	for i, header := range cfg.Headers {
		if _, exists := keys[header.Key]; exists {
			return tkerrors.NewValidationError(fieldFor("headers", i, "key"), fmt.Sprintf("duplicate column key %q", header.Key), nil)
		}
		keys[header.Key] = i
	}

	columnLists := []struct {
		field string
		keys  []string
	}{
		{field: "columns.multiple", keys: cfg.Columns.Multiple},
		{field: "columns.specific", keys: cfg.Columns.Specific},
		{field: "columns.skip", keys: cfg.Columns.Skip},
		{field: "columns.sortable", keys: cfg.Columns.Sortable},
	}
	for _, list := range columnLists {
		for i, key := range list.keys {
			if _, ok := keys[key]; !ok {
				return tkerrors.NewValidationError(fmt.Sprintf("%s[%d]", list.field, i), fmt.Sprintf("references unknown column %q", key), nil)
			}
		}
	}

	if cfg.TotalColumn != "" {
		if _, ok := keys[cfg.TotalColumn]; !ok {
			return tkerrors.NewValidationError("total_column", fmt.Sprintf("references unknown column %q", cfg.TotalColumn), nil)
		}
	}

	for i, column := range cfg.Actions {
		if err := validateActionColumn(column, i, keys); err != nil {
			return err
		}
	}

	if err := validateItemPerPage(cfg.ItemPerPage); err != nil {
		return err
	}

	return nil
}

func validateActionColumn(column ActionColumn, index int, keys map[string]int) error {
	if _, ok := keys[column.Column]; !ok {
		return tkerrors.NewValidationError(fieldFor("actions", index, "column"), fmt.Sprintf("references unknown column %q", column.Column), nil)
	}

	kind, _ := action.ParseActivityType(column.ActivityType)
	for j, activity := range column.Activities {
		field := fmt.Sprintf("actions[%d].activities[%d]", index, j)
		switch {
		case activity.Preset != "" && activity.Button != "":
			return tkerrors.NewValidationError(field, "set either preset or button, not both", nil)
		case kind == action.ActivityIcon && activity.Preset == "":
			return tkerrors.NewValidationError(field+".preset", "icon activities require an icon preset", nil)
		case kind == action.ActivityButton && activity.Button == "":
			return tkerrors.NewValidationError(field+".button", "button activities require a button preset", nil)
		}
	}
	return nil
}

func validateItemPerPage(ipp *ItemPerPage) error {
	if ipp == nil || ipp.Value == 0 {
		return nil
	}
	options := ipp.Options
	if len(options) == 0 {
		options = []int{5, 10, 20, 50, 100}
	}
	if !slices.Contains(options, ipp.Value) {
		return tkerrors.NewValidationError("item_per_page.value", fmt.Sprintf("%d is not one of the options %v", ipp.Value, options), nil)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tkerrors.NewValidationError(field, msg, err)
	}

	return tkerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, which already
// uses yaml keys.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldFor(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}
