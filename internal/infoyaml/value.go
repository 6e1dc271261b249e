// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package infoyaml

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
)

// integral matches plain decimal integer literals. yaml/v3 tags integers
// that overflow 64 bits as !!float, so float-tagged literals are checked too.
var integral = regexp.MustCompile(`^[-+]?[0-9]+$`)

// Value is one node of an info.yaml document. The zero Value is an absent
// entry.
type Value struct {
	node *yaml.Node
}

func (v Value) resolved() *yaml.Node {
	n := v.node
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// Exists reports whether the entry appears in the document, even as null.
func (v Value) Exists() bool { return v.resolved() != nil }

// IsNull reports whether the entry is absent or an explicit null.
func (v Value) IsNull() bool {
	n := v.resolved()
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == tagNull)
}

// IsScalar reports whether the entry is a present scalar.
func (v Value) IsScalar() bool {
	n := v.resolved()
	return n != nil && n.Kind == yaml.ScalarNode
}

// IsMapping reports whether the entry is a mapping.
func (v Value) IsMapping() bool {
	n := v.resolved()
	return n != nil && n.Kind == yaml.MappingNode
}

// IsString reports whether the entry is a string scalar.
func (v Value) IsString() bool {
	n := v.resolved()
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == tagStr
}

// Line returns the source line of the entry, or 0 when absent.
func (v Value) Line() int {
	if v.node == nil {
		return 0
	}
	return v.node.Line
}

// Kind describes the entry for diagnostics: "mapping", "sequence", or the
// scalar tag without its "!!" prefix.
func (v Value) Kind() string {
	n := v.resolved()
	switch {
	case n == nil:
		return "nothing"
	case n.Kind == yaml.MappingNode:
		return "mapping"
	case n.Kind == yaml.SequenceNode:
		return "sequence"
	default:
		return strings.TrimPrefix(n.ShortTag(), "!!")
	}
}

// Get returns the value stored under key. Looking up a key on anything but
// a mapping yields an absent Value.
func (v Value) Get(key string) Value {
	n := v.resolved()
	if n == nil || n.Kind != yaml.MappingNode {
		return Value{}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		for k.Kind == yaml.AliasNode && k.Alias != nil {
			k = k.Alias
		}
		if k.Kind == yaml.ScalarNode && k.Value == key {
			return Value{node: n.Content[i+1]}
		}
	}
	return Value{}
}

// Pairs returns the key/value pairs of a mapping in document order.
func (v Value) Pairs() [][2]Value {
	n := v.resolved()
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	pairs := make([][2]Value, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		pairs = append(pairs, [2]Value{{node: n.Content[i]}, {node: n.Content[i+1]}})
	}
	return pairs
}

// Items returns the elements of a sequence. Absent and null entries yield an
// empty list; any other non-sequence is an error.
func (v Value) Items() ([]Value, error) {
	n := v.resolved()
	if v.IsNull() {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list, found %s", v.Kind())
	}
	items := make([]Value, len(n.Content))
	for i, c := range n.Content {
		items[i] = Value{node: c}
	}
	return items, nil
}

// Int returns the entry as an arbitrary-precision integer. ok is false when
// the entry is not an integer literal.
func (v Value) Int() (i *big.Int, ok bool) {
	n := v.resolved()
	if n == nil || n.Kind != yaml.ScalarNode {
		return nil, false
	}
	tag := n.ShortTag()
	if tag != tagInt && tag != tagFloat {
		return nil, false
	}
	return parseInt(strings.ReplaceAll(n.Value, "_", ""))
}

// parseInt reads decimal digits in base 10, so leading zeros are not octal.
// Only the 0x and 0o prefixes select another base.
func parseInt(lit string) (*big.Int, bool) {
	if integral.MatchString(lit) {
		return new(big.Int).SetString(lit, 10)
	}
	body, neg := lit, false
	switch {
	case strings.HasPrefix(body, "-"):
		body, neg = body[1:], true
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}
	base := 0
	switch {
	case strings.HasPrefix(body, "0x"):
		base = 16
	case strings.HasPrefix(body, "0o"):
		base = 8
	default:
		return nil, false
	}
	i, ok := new(big.Int).SetString(body[2:], base)
	if !ok {
		return nil, false
	}
	if neg {
		i.Neg(i)
	}
	return i, true
}

func (v Value) floatValue() (float64, bool) {
	n := v.resolved()
	if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() != tagFloat {
		return 0, false
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return 0, false
	}
	return f, true
}

func (v Value) boolValue() (bool, bool) {
	n := v.resolved()
	if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() != tagBool {
		return false, false
	}
	var b bool
	if err := n.Decode(&b); err != nil {
		return false, false
	}
	return b, true
}

// Truthy reports whether the entry counts as filled in: absent, null, empty
// strings, zero numbers and false do not.
func (v Value) Truthy() bool {
	n := v.resolved()
	if n == nil {
		return false
	}
	if n.Kind != yaml.ScalarNode {
		return true
	}
	switch n.ShortTag() {
	case tagNull:
		return false
	case tagStr:
		return n.Value != ""
	case tagBool:
		b, _ := v.boolValue()
		return b
	}
	if i, ok := v.Int(); ok {
		return i.Sign() != 0
	}
	if f, ok := v.floatValue(); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return n.Value != ""
}

// Text returns the scalar as display text: integers in decimal, numbers in
// their shortest form, booleans and null spelled out, anything else as
// written. Non-scalars are an error.
func (v Value) Text() (string, error) {
	n := v.resolved()
	if n == nil {
		return "", fmt.Errorf("value is missing")
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("expected a single value, found %s", v.Kind())
	}
	switch n.ShortTag() {
	case tagNull:
		return "null", nil
	case tagBool:
		if b, ok := v.boolValue(); ok {
			return strconv.FormatBool(b), nil
		}
	}
	if i, ok := v.Int(); ok {
		return i.String(), nil
	}
	if f, ok := v.floatValue(); ok {
		return formatNumber(f), nil
	}
	return n.Value, nil
}

// Literal returns the scalar serialized as a JSON literal, which is also a
// valid YAML flow scalar: strings quoted, integers as bare decimal digits.
func (v Value) Literal() (string, error) {
	n := v.resolved()
	if n == nil {
		return "", fmt.Errorf("value is missing")
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("expected a single value, found %s", v.Kind())
	}
	switch n.ShortTag() {
	case tagNull:
		return "null", nil
	case tagStr:
		return Quote(n.Value), nil
	case tagBool:
		if b, ok := v.boolValue(); ok {
			return strconv.FormatBool(b), nil
		}
	}
	if i, ok := v.Int(); ok {
		return i.String(), nil
	}
	if f, ok := v.floatValue(); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "null", nil
		}
		return formatNumber(f), nil
	}
	return Quote(n.Value), nil
}

// formatNumber prints f the way JSON producers conventionally do: plain
// decimal notation between 1e-6 and 1e21, exponent notation outside it.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
