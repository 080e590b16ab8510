package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	t.Parallel()

	a := domain.NewInternedString("Newtonsoft.Json")
	b := domain.NewInternedString("Newtonsoft.Json")

	assert.Equal(t, a, b)
	assert.Equal(t, "Newtonsoft.Json", a.String())
	assert.False(t, a.IsZero())
	assert.True(t, domain.InternedString{}.IsZero())
	assert.Empty(t, domain.InternedString{}.String())
	assert.True(t, a.EqualFold(domain.NewInternedString("newtonsoft.json")))
}

func TestInternedStringJSON(t *testing.T) {
	t.Parallel()

	original := domain.NewInternedString("System.Runtime")

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `"System.Runtime"`, string(data))

	var decoded domain.InternedString
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestLibraryIdentity(t *testing.T) {
	t.Parallel()

	a := domain.NewLibraryIdentity("Foo", "1.0.0")
	b := domain.NewLibraryIdentity("Foo", "1.0.0")
	c := domain.NewLibraryIdentity("Foo", "2.0.0")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "Foo@1.0.0", a.String())

	seen := map[domain.LibraryIdentity]bool{a: true}
	assert.True(t, seen[b])
	assert.False(t, seen[c])
}
