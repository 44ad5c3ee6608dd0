package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/sdl-org/sdl-go/tag"
)

// yamlTag is the YAML interchange shape for a tag: values and
// attribute values are rendered through their canonical SDL literal
// text (value.Value.Format) rather than native YAML scalars, so a
// round trip through ParseLiteral on each field recovers the exact
// SDL variant instead of collapsing e.g. Int32 and Int64 into one
// YAML integer type.
type yamlTag struct {
	Name      string            `yaml:"name"`
	Namespace string            `yaml:"namespace,omitempty"`
	Values    []string          `yaml:"values,omitempty"`
	Attrs     map[string]string `yaml:"attrs,omitempty"`
	Children  []*yamlTag        `yaml:"children,omitempty"`
}

func tagToYAML(t *tag.Tag) *yamlTag {
	y := &yamlTag{Name: t.Name(), Namespace: t.Namespace()}
	for _, v := range t.Values() {
		y.Values = append(y.Values, v.Format())
	}
	if names := t.AttrNames(); len(names) > 0 {
		y.Attrs = make(map[string]string, len(names))
		for _, name := range names {
			v, _ := t.Attr(name)
			y.Attrs[name] = v.Format()
		}
	}
	for _, c := range t.Children() {
		y.Children = append(y.Children, tagToYAML(c))
	}
	return y
}

// ToYAML renders a forest of top-level tags as a YAML document (spec
// §6 DOMAIN STACK: goccy/go-yaml).
func ToYAML(tags []*tag.Tag) (string, error) {
	nodes := make([]*yamlTag, len(tags))
	for i, t := range tags {
		nodes[i] = tagToYAML(t)
	}
	out, err := yaml.Marshal(nodes)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
