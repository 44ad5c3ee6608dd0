package sdlquery

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/sdl-org/sdl-go/tag"
	"github.com/sdl-org/sdl-go/value"
)

// Env is the expression environment exposed to a query for one tag:
// its name, namespace, positional values, and attribute values as
// native Go types.
type Env struct {
	Name      string
	Namespace string
	Values    []any
	Attrs     map[string]any
}

func envOf(t *tag.Tag) Env {
	vs := t.Values()
	values := make([]any, len(vs))
	for i, v := range vs {
		values[i] = toNative(v)
	}
	names := t.AttrNames()
	attrs := make(map[string]any, len(names))
	for _, name := range names {
		v, _ := t.Attr(name)
		attrs[name] = toNative(v)
	}
	return Env{Name: t.Name(), Namespace: t.Namespace(), Values: values, Attrs: attrs}
}

// toNative converts a value.Value to the closest native Go type for
// use inside an expr expression. Temporal and arbitrary-precision
// kinds fall back to their canonical literal text, which is enough for
// equality and substring queries.
func toNative(v value.Value) any {
	switch v.Kind() {
	case value.NullKind:
		return nil
	case value.BoolKind:
		b, _ := value.BoolOf(v)
		return b
	case value.StrKind:
		s, _ := value.StrOf(v)
		return s
	case value.CharKind:
		c, _ := value.CharOf(v)
		return string(c)
	case value.Int32Kind:
		i, _ := value.Int32Of(v)
		return int64(i)
	case value.Int64Kind:
		i, _ := value.Int64Of(v)
		return i
	case value.Float32Kind:
		f, _ := value.Float32Of(v)
		return float64(f)
	case value.Float64Kind:
		f, _ := value.Float64Of(v)
		return f
	default:
		return v.Format()
	}
}

// Compile parses a query expression once, for reuse across many tags
// via Matches.
func Compile(expression string) (*vm.Program, error) {
	return expr.Compile(expression, expr.Env(Env{}))
}

// Matches reports whether program evaluates to true against t; a
// non-bool result is an error.
func Matches(program *vm.Program, t *tag.Tag) (bool, error) {
	out, err := expr.Run(program, envOf(t))
	if err != nil {
		return false, fmt.Errorf("sdlquery: evaluating: %w", err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("sdlquery: expression must evaluate to a bool, got %T", out)
	}
	return b, nil
}

// Select returns every tag among the given top-level tags for which
// expression evaluates to true; an expression that yields a non-bool
// for any tag is an error. It does not descend into children: a
// query runs against one document's top-level tags only, with no
// cross-document joins.
func Select(tags []*tag.Tag, expression string) ([]*tag.Tag, error) {
	program, err := Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("sdlquery: compiling %q: %w", expression, err)
	}
	var out []*tag.Tag
	for _, t := range tags {
		ok, err := Matches(program, t)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}
