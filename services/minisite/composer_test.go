package minisite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func staticRegistry(ids ...string) Registry {
	reg := Registry{}
	for _, id := range ids {
		id := id
		reg[id] = func() Rendered {
			return Rendered{Kind: SectionKind(id), Data: id}
		}
	}
	return reg
}

func TestComposePreservesOrderAndSkipsDisabled(t *testing.T) {
	sections := []SectionRef{
		{ID: "a", Enabled: true},
		{ID: "b", Enabled: false},
		{ID: "c", Enabled: true},
	}

	out := Compose(sections, staticRegistry("a", "b", "c"), zap.NewNop())

	require.Len(t, out, 2)
	assert.Equal(t, SectionKind("a"), out[0].Kind)
	assert.Equal(t, SectionKind("c"), out[1].Kind)
}

func TestComposeSkipsUnknownIDs(t *testing.T) {
	sections := []SectionRef{
		{ID: "a", Enabled: true},
		{ID: "from-a-newer-build", Enabled: true},
		{ID: "c", Enabled: true},
	}

	// Only "a" and "c" have renderers; the unknown id is dropped, not
	// an error.
	out := Compose(sections, staticRegistry("a", "c"), zap.NewNop())

	require.Len(t, out, 2)
	assert.Equal(t, SectionKind("a"), out[0].Kind)
	assert.Equal(t, SectionKind("c"), out[1].Kind)
}

func TestComposeEmptyInput(t *testing.T) {
	out := Compose(nil, staticRegistry("a"), zap.NewNop())
	assert.Empty(t, out)
}
