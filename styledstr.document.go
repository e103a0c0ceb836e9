package styledstr

import (
	"github.com/itsatony/go-styledstr/internal"
)

// Document is a decoded preset. It is produced fresh by every load and is
// not shared between calls.
type Document struct {
	// Filename is the base name of the file the document came from.
	Filename string
	// Location is the full path or storage key of that file.
	Location string

	root *internal.Node
}

// NewDocument decodes preset content. Filenames ending in .yaml or .yml are
// decoded as YAML, anything else as JSON (comments and trailing commas are
// tolerated).
func NewDocument(filename, location string, data []byte) (*Document, error) {
	root, err := internal.DecodeDocument(filename, data)
	if err != nil {
		return nil, NewPresetDecodeError(location, err)
	}
	return &Document{Filename: filename, Location: location, root: root}, nil
}

// Lookup resolves token to its leaf value. List values yield one entry at
// random on each call.
func (d *Document) Lookup(token string) (string, error) {
	return d.lookup(token, internal.DefaultChooser)
}

func (d *Document) lookup(token string, pick internal.Chooser) (string, error) {
	text, err := internal.ResolveToken(d.root, token, pick)
	if err != nil {
		return "", fromTokenError(err)
	}
	return text, nil
}

// Check resolves token the way Lookup does, but tries every entry of a list
// value instead of a random one.
func (d *Document) Check(token string) error {
	node, ok := d.root.Walk(token)
	if !ok || node.Kind != internal.KindList || len(node.List) == 0 {
		_, err := d.lookup(token, func(int) int { return 0 })
		return err
	}
	for i := range node.List {
		if _, err := d.lookup(token, func(int) int { return i }); err != nil {
			return err
		}
	}
	return nil
}

// Tokens lists every token in the document that ends at a scalar or a list,
// sorted. Listed tokens may still fail Lookup, e.g. an empty list.
func (d *Document) Tokens() []string {
	return d.root.Leaves()
}

// Placeholders lists the placeholder names used by a token's value. For list
// values the names of every entry are merged.
func (d *Document) Placeholders(token string) ([]string, error) {
	if _, err := d.lookup(token, func(int) int { return 0 }); err != nil {
		return nil, err
	}

	node, _ := d.root.Walk(token)

	seen := make(map[string]struct{})
	var names []string
	collect := func(n *internal.Node) {
		text, ok := n.Text()
		if !ok {
			return
		}
		for _, name := range internal.PlaceholderNames(text) {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	if node.Kind == internal.KindList {
		for _, entry := range node.List {
			collect(entry)
		}
	} else {
		collect(node)
	}
	return names, nil
}
