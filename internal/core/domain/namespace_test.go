package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/smelt/internal/core/domain"
)

func TestNamespaceID_CacheKey(t *testing.T) {
	t.Run("macro and non-macro variants never collide", func(t *testing.T) {
		for _, name := range []string{"foo", "foo.bar", "a.b.c", "x_y.z$", ""} {
			plain := domain.NamespaceID{Name: name}
			macro := domain.NamespaceID{Name: name, Macros: true}
			assert.NotEqual(t, plain.CacheKey(), macro.CacheKey(), "name %q", name)
		}
	})

	t.Run("macro variant appends the suffix", func(t *testing.T) {
		id := domain.NamespaceID{Name: "foo.bar", Macros: true}
		assert.Equal(t, "foo.bar$macros", id.CacheKey())
	})

	t.Run("name already carrying the suffix collides with its macro variant", func(t *testing.T) {
		// Accepted limitation of the string keyspace: the two identities are
		// distinct values but index the same cache slot.
		plain := domain.NamespaceID{Name: "foo.bar$macros"}
		macro := domain.NamespaceID{Name: "foo.bar", Macros: true}
		assert.NotEqual(t, plain, macro)
		assert.Equal(t, macro.CacheKey(), plain.CacheKey())
	})
}

func TestNamespaceID_Path(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"foo", "foo"},
		{"foo.bar", "foo/bar"},
		{"a.b.c.d", "a/b/c/d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NamespaceID{Name: tt.name}.Path())
	}
}

func TestParseProvidedName(t *testing.T) {
	t.Run("plain name", func(t *testing.T) {
		id := domain.ParseProvidedName("foo.bar")
		assert.Equal(t, domain.NamespaceID{Name: "foo.bar"}, id)
	})

	t.Run("macro suffix is stripped into the flag", func(t *testing.T) {
		id := domain.ParseProvidedName("foo.bar$macros")
		assert.Equal(t, domain.NamespaceID{Name: "foo.bar", Macros: true}, id)
	})

	t.Run("round trips through the cache key", func(t *testing.T) {
		for _, raw := range []string{"foo.bar", "foo.bar$macros"} {
			assert.Equal(t, raw, domain.ParseProvidedName(raw).CacheKey())
		}
	})
}
