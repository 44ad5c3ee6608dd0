package sdljson

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/sdl-org/sdl-go/tag"
)

// jsonTag is the JSON export shape for a tag. Values and attribute
// values are rendered through their canonical SDL literal text
// (value.Value.Format), matching encode.yamlTag's rationale: JSON has
// no Int32/Int64/Decimal distinction, so collapsing to a native number
// would be lossy.
type jsonTag struct {
	Name      string            `json:"name"`
	Namespace string            `json:"namespace,omitempty"`
	Values    []string          `json:"values,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	Children  []*jsonTag        `json:"children,omitempty"`
}

func tagToJSON(t *tag.Tag) *jsonTag {
	j := &jsonTag{Name: t.Name(), Namespace: t.Namespace()}
	for _, v := range t.Values() {
		j.Values = append(j.Values, v.Format())
	}
	if names := t.AttrNames(); len(names) > 0 {
		j.Attrs = make(map[string]string, len(names))
		for _, name := range names {
			v, _ := t.Attr(name)
			j.Attrs[name] = v.Format()
		}
	}
	for _, c := range t.Children() {
		j.Children = append(j.Children, tagToJSON(c))
	}
	return j
}

// ToJSON renders a forest of top-level tags as a JSON document.
func ToJSON(tags []*tag.Tag) ([]byte, error) {
	nodes := make([]*jsonTag, len(tags))
	for i, t := range tags {
		nodes[i] = tagToJSON(t)
	}
	return json.Marshal(nodes)
}

// ApplyPatch renders tags to JSON, applies an RFC 6902 JSON patch
// document to it, and returns the patched JSON.
func ApplyPatch(tags []*tag.Tag, patch []byte) ([]byte, error) {
	doc, err := ToJSON(tags)
	if err != nil {
		return nil, fmt.Errorf("sdljson: rendering document: %w", err)
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("sdljson: decoding patch: %w", err)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("sdljson: applying patch: %w", err)
	}
	return out, nil
}
