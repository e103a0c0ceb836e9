package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// NodeKind tags the variant held by a Node.
type NodeKind int

const (
	KindNull NodeKind = iota
	KindMapping
	KindList
	KindScalar
)

// String returns the kind name used in error metadata.
func (k NodeKind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindList:
		return "list"
	case KindScalar:
		return "scalar"
	default:
		return "null"
	}
}

// Node is one position in a decoded preset document.
// Exactly one of Mapping, List or Scalar is meaningful, selected by Kind.
type Node struct {
	Kind    NodeKind
	Mapping map[string]*Node
	List    []*Node
	Scalar  any
}

// NewNode converts a decoded YAML/JSON value into a Node tree.
// Mapping keys that are not strings are converted with fmt.Sprint.
func NewNode(v any) *Node {
	switch val := v.(type) {
	case nil:
		return &Node{Kind: KindNull}
	case map[string]any:
		m := make(map[string]*Node, len(val))
		for k, child := range val {
			m[k] = NewNode(child)
		}
		return &Node{Kind: KindMapping, Mapping: m}
	case map[any]any:
		m := make(map[string]*Node, len(val))
		for k, child := range val {
			m[fmt.Sprint(k)] = NewNode(child)
		}
		return &Node{Kind: KindMapping, Mapping: m}
	case []any:
		list := make([]*Node, len(val))
		for i, child := range val {
			list[i] = NewNode(child)
		}
		return &Node{Kind: KindList, List: list}
	default:
		return &Node{Kind: KindScalar, Scalar: val}
	}
}

// Child indexes a mapping node by key. Any other kind reports false.
func (n *Node) Child(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	child, ok := n.Mapping[key]
	return child, ok
}

// Text stringifies a scalar node. Non-scalar nodes report false.
func (n *Node) Text() (string, bool) {
	if n == nil || n.Kind != KindScalar {
		return "", false
	}
	switch v := n.Scalar.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// Leaves returns every token path that ends at a scalar or list node, sorted.
func (n *Node) Leaves() []string {
	var out []string
	n.collectLeaves("", &out)
	sort.Strings(out)
	return out
}

func (n *Node) collectLeaves(prefix string, out *[]string) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindMapping:
		for key, child := range n.Mapping {
			next := key
			if prefix != "" {
				next = prefix + TokenSeparator + key
			}
			child.collectLeaves(next, out)
		}
	case KindList, KindScalar:
		if prefix != "" {
			*out = append(*out, prefix)
		}
	}
}

var yamlSuffix = regexp.MustCompile(YAMLSuffixPattern)

// IsYAMLFile reports whether filename carries a .yaml or .yml suffix.
func IsYAMLFile(filename string) bool {
	return yamlSuffix.MatchString(path.Ext(filename))
}

// DecodeDocument parses preset content. YAML filenames decode as YAML,
// everything else as JSON; comments and trailing commas are accepted in JSON.
func DecodeDocument(filename string, data []byte) (*Node, error) {
	if IsYAMLFile(filename) {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgDecodeYAML, err)
		}
		return NewNode(v), nil
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if err == io.EOF {
			return NewNode(nil), nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeJSON, err)
	}
	return NewNode(v), nil
}
