// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package infoyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytapeout/tt-upgrade/pkg/types"
)

// scalar parses "v: <literal>" and returns the value of v.
func scalar(t *testing.T, literal string) Value {
	t.Helper()
	doc, err := Parse("v: " + literal + "\n")
	require.NoError(t, err)
	return doc.Get("v")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		errMsg  string
		wantKey string
	}{
		{name: "mapping document", raw: "a: 1\n", wantKey: "a"},
		{name: "leading document marker", raw: "---\na: 1\n", wantKey: "a"},
		{name: "empty input", raw: ""},
		{name: "only comments", raw: "# nothing here\n"},
		{name: "syntax error", raw: "a: [1, 2\n", errMsg: "yaml:"},
		{name: "two documents", raw: "a: 1\n---\nb: 2\n", errMsg: "multiple documents"},
		{name: "duplicate nested key", raw: "a:\n  b: 1\n  b: 2\n", errMsg: `mapping key "b" already defined at line 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.raw)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			if tt.wantKey != "" {
				assert.True(t, doc.Get(tt.wantKey).Exists())
			} else {
				assert.False(t, doc.Root().Exists() && doc.Root().IsMapping())
			}
		})
	}
}

func TestValueTruthy(t *testing.T) {
	tests := []struct {
		literal string
		want    bool
	}{
		{"~", false},
		{"null", false},
		{`""`, false},
		{"0", false},
		{"0.0", false},
		{"false", false},
		{"true", true},
		{"7", true},
		{`"0"`, true},
		{"abc", true},
		{"{}", true},
		{"[]", true},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			assert.Equal(t, tt.want, scalar(t, tt.literal).Truthy())
		})
	}

	doc, err := Parse("a: 1\n")
	require.NoError(t, err)
	assert.False(t, doc.Get("missing").Truthy())
}

func TestValueText(t *testing.T) {
	tests := []struct {
		literal string
		want    string
	}{
		{"hello world", "hello world"},
		{`"quoted"`, "quoted"},
		{"42", "42"},
		{"0x1F", "31"},
		{"1_000", "1000"},
		{"379824923824476161", "379824923824476161"},
		{"98765432109876543210987", "98765432109876543210987"},
		{"4.0", "4"},
		{"1.5", "1.5"},
		{"1e6", "1000000"},
		{"true", "true"},
		{"~", "null"},
		{"2023-01-02", "2023-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := scalar(t, tt.literal).Text()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := scalar(t, "[a, b]").Text()
	assert.ErrorContains(t, err, "found sequence")
}

func TestValueLiteral(t *testing.T) {
	tests := []struct {
		literal string
		want    string
	}{
		{"abc", `"abc"`},
		{`'single "quotes"'`, `"single \"quotes\""`},
		{"10000000", "10000000"},
		{"123456789012345678901", "123456789012345678901"},
		{`"123"`, `"123"`},
		{"2.5", "2.5"},
		{".inf", "null"},
		{"false", "false"},
		{"~", "null"},
		{"2023-01-02", `"2023-01-02"`},
		{"0123", "123"},
		{"0b101", `"0b101"`},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := scalar(t, tt.literal).Literal()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := scalar(t, "{a: b}").Literal()
	assert.ErrorContains(t, err, "found mapping")
}

func TestValueInt(t *testing.T) {
	i, ok := scalar(t, "379824923824476161").Int()
	require.True(t, ok)
	assert.Equal(t, "379824923824476161", i.String())

	i, ok = scalar(t, "-98765432109876543210").Int()
	require.True(t, ok)
	assert.Equal(t, "-98765432109876543210", i.String())

	_, ok = scalar(t, "1.5").Int()
	assert.False(t, ok)

	tests := []struct {
		literal string
		want    string
		ok      bool
	}{
		{"0123", "123", true},
		{"010", "10", true},
		{"-007", "-7", true},
		{"0x1F", "31", true},
		{"0o17", "15", true},
		{"0b101", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			i, ok := scalar(t, tt.literal).Int()
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, i.String())
			}
		})
	}

	_, ok = scalar(t, `"12"`).Int()
	assert.False(t, ok)
}

func TestValueAlias(t *testing.T) {
	doc, err := Parse("base: &b\n  x: 1\nother: *b\n")
	require.NoError(t, err)
	got, err := doc.Get("other").Get("x").Text()
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestItems(t *testing.T) {
	items, err := scalar(t, "[a, b, c]").Items()
	require.NoError(t, err)
	assert.Len(t, items, 3)

	items, err = scalar(t, "~").Items()
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = scalar(t, "abc").Items()
	assert.ErrorContains(t, err, "expected a list, found str")
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`a "b" c`, `"a \"b\" c"`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak\ttab", `"line\nbreak\ttab"`},
		{"bell\x07", `"bell\u0007"`},
		{"<b>&amp;</b>", `"<b>&amp;</b>"`},
		{"sep\u2028", "\"sep\u2028\""},
		{"ünïcödé", `"ünïcödé"`},
		{"", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestPin(t *testing.T) {
	tests := []struct {
		literal string
		want    types.PinEntry
		errMsg  string
	}{
		{literal: "~", want: types.EmptyPin()},
		{literal: `""`, want: types.EmptyPin()},
		{literal: "none", want: types.EmptyPin()},
		{literal: "None", want: types.EmptyPin()},
		{literal: "UNUSED", want: types.EmptyPin()},
		{literal: "Not Used", want: types.EmptyPin()},
		{literal: "not used at all", want: types.PlainPin("not used at all")},
		{literal: "clk", want: types.PlainPin("clk")},
		{literal: "5", want: types.PlainPin("5")},
		{literal: "{sda: I2C data}", want: types.NamedPin("sda", "I2C data")},
		{literal: "{rst: ~}", want: types.NamedPin("rst", "null")},
		{literal: "{a: 1, b: 2}", errMsg: "found 2 keys"},
		{literal: "{a: [1, 2]}", errMsg: `pin "a"`},
		{literal: "[x]", errMsg: "found sequence"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := Pin(scalar(t, tt.literal))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPins(t *testing.T) {
	pins, err := Pins(scalar(t, "[a, none, {b: c}, d, e, f, g, h, i, {x: 1, y: 2}]"))
	require.NoError(t, err)
	assert.Equal(t, "a", pins[0].String())
	assert.Equal(t, "", pins[1].String())
	assert.Equal(t, "b: c", pins[2].String())
	assert.Equal(t, "h", pins[7].String())

	pins, err = Pins(scalar(t, "[a]"))
	require.NoError(t, err)
	for i := 1; i < types.PinCount; i++ {
		assert.Equal(t, types.PinEmpty, pins[i].Kind)
	}

	_, err = Pins(scalar(t, "[ok, {x: 1, y: 2}]"))
	assert.ErrorContains(t, err, "entry 1")
}
