package lucid

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("series_color", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return false
			}
			if s[0] != '#' {
				return true
			}
			return len(s) == 4 || len(s) == 7 || len(s) == 9
		})

		validateInst = v
	})

	return validateInst
}

// CheckProps validates props against schema and returns one PropError per
// failed declaration, in declaration order. Props the schema does not
// declare are never reported; they are pass-through props.
func CheckProps(component string, schema *Schema, props Props) []*PropError {
	var errs []*PropError
	for _, pt := range schema.Props() {
		if err := checkProp(component, pt, props); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func checkProp(component string, pt PropType, props Props) *PropError {
	v, present := props[pt.Name]
	if !present || IsUndefined(v) || v == nil {
		if pt.Required {
			return &PropError{Component: component, Prop: pt.Name, Reason: "is required", Err: ErrMissingProp}
		}
		return nil
	}
	if !kindMatches(pt.Kind, v) {
		return &PropError{
			Component: component,
			Prop:      pt.Name,
			Reason:    fmt.Sprintf("expected %s, got %T", pt.Kind, v),
			Err:       ErrInvalidProp,
		}
	}
	if pt.Rule == "" {
		return nil
	}
	if err := checkRule(v, pt.Rule); err != nil {
		return &PropError{
			Component: component,
			Prop:      pt.Name,
			Reason:    fmt.Sprintf("value %v fails %q", v, pt.Rule),
			Err:       fmt.Errorf("%w: %v", ErrInvalidProp, err),
		}
	}
	return nil
}

// checkRule runs a validator rule against v. The validator panics on
// unknown tags and on rules that do not apply to v's type; both are
// reported as errors instead.
func checkRule(v any, rule string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule %q cannot check %T: %v", rule, v, r)
		}
	}()
	return validatorInstance().Var(v, rule)
}

func kindMatches(kind Kind, v any) bool {
	switch kind {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindNumber:
		_, ok := toFloat(v)
		return ok
	case KindFunc:
		return reflect.TypeOf(v).Kind() == reflect.Func
	case KindObject:
		switch reflect.TypeOf(v).Kind() {
		case reflect.Map, reflect.Struct, reflect.Pointer:
			return true
		}
		return false
	default:
		return true
	}
}

// warnProps logs prop errors on the logger carried by ctx.
func warnProps(ctx context.Context, errs []*PropError) {
	if len(errs) == 0 {
		return
	}
	log := zerolog.Ctx(ctx)
	for _, err := range errs {
		log.Warn().
			Str("component", err.Component).
			Str("prop", err.Prop).
			Msg("Failed prop type: " + err.Reason)
	}
}
