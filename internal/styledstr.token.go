package internal

import (
	"math/rand"
	"strings"
)

// TokenError reports a token that could not be resolved to a leaf value.
type TokenError struct {
	Token   string
	Reason  string
	Message string
	Kind    NodeKind
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return e.Message + ": " + e.Token
}

// Chooser returns an index in [0, n). It must be safe for concurrent use.
type Chooser func(n int) int

// DefaultChooser draws uniformly from the runtime's shared random source.
func DefaultChooser(n int) int {
	return rand.Intn(n)
}

// Walk follows the dot separated token from n, one mapping key per segment.
// It fails on a missing key or when a segment indexes a non-mapping.
func (n *Node) Walk(token string) (*Node, bool) {
	current := n
	for _, key := range strings.Split(token, TokenSeparator) {
		next, ok := current.Child(key)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// ResolveToken walks root along the dot separated token and stringifies the
// leaf it reaches. A list leaf yields one of its entries chosen by pick.
func ResolveToken(root *Node, token string, pick Chooser) (string, error) {
	current, ok := root.Walk(token)
	if !ok {
		return "", &TokenError{Token: token, Reason: ReasonTokenNotFound, Message: ErrMsgTokenNotFound}
	}

	switch current.Kind {
	case KindScalar:
		text, _ := current.Text()
		return text, nil
	case KindList:
		if len(current.List) == 0 {
			return "", &TokenError{Token: token, Reason: ReasonEmptyList, Message: ErrMsgEmptyList, Kind: KindList}
		}
		if pick == nil {
			pick = DefaultChooser
		}
		entry := current.List[pick(len(current.List))]
		if text, ok := entry.Text(); ok {
			return text, nil
		}
		return "", &TokenError{Token: token, Reason: ReasonUnsupportedValue, Message: ErrMsgUnsupportedValue, Kind: entry.Kind}
	default:
		return "", &TokenError{Token: token, Reason: ReasonUnsupportedValue, Message: ErrMsgUnsupportedValue, Kind: current.Kind}
	}
}
