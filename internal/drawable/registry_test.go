package drawable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDrawInInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(Text("c=69,d=2131283"))
	r.Add(Text("a=114514"))

	require.Equal(t, 2, r.Len())
	assert.Equal(t, "c=69,d=2131283\na=114514\n", r.Draw())
}

func TestRegistryEmptyDrawsNothing(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, "", r.Draw())
	assert.Empty(t, r.Lines())
}

func TestRegistryDrawIsRepeatable(t *testing.T) {
	r := NewRegistry()
	r.Add(Text("one"))
	r.Add(Derive(struct{ A, B int }{1, 2}))

	first := r.Draw()
	second := r.Draw()
	assert.Equal(t, first, second)
}

func TestRegistryIgnoresNil(t *testing.T) {
	r := NewRegistry()
	r.Add(nil)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryLinesMatchDraw(t *testing.T) {
	r := NewRegistry()
	r.Add(Text("first\nsecond"))
	r.Add(Func(func() string { return "third" }))
	r.Add(Text(""))

	lines := r.Lines()
	require.Len(t, lines, 4)

	texts := make([]string, 0, len(lines))
	for _, l := range lines {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, strings.Split(strings.TrimSuffix(r.Draw(), "\n"), "\n"), texts)

	assert.Equal(t, 0, lines[0].Item)
	assert.Equal(t, 0, lines[1].Item)
	assert.Equal(t, 1, lines[2].Item)
	assert.Equal(t, 2, lines[3].Item)
}

func TestRegistryLinesDropCarriageReturns(t *testing.T) {
	r := NewRegistry()
	r.Add(Text("a\r\nb\r"))
	r.Add(Text("c"))

	lines := r.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0].Text)
	assert.Equal(t, "b", lines[1].Text)
	assert.Equal(t, "c", lines[2].Text)
	assert.Equal(t, 0, lines[1].Item)
	assert.Equal(t, 1, lines[2].Item)
}

func TestRegistryDerivedItemsSeeMutations(t *testing.T) {
	type counter struct{ n int }
	c := &counter{n: 1}

	r := NewRegistry()
	r.Add(Derive(c))
	before := r.Draw()
	c.n = 2
	after := r.Draw()

	assert.True(t, strings.Contains(before, "n: 1,"))
	assert.True(t, strings.Contains(after, "n: 2,"))
}
