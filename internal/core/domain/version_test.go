package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/core/domain"
)

func TestParseVersionRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want domain.VersionRange
	}{
		{"", domain.AnyVersion},
		{"*", domain.AnyVersion},
		{"1.0", domain.AtLeast("1.0")},
		{"[1.0.0]", domain.Exactly("1.0.0")},
		{"[1.0,2.0)", domain.VersionRange{Min: "1.0", Max: "2.0", MinInclusive: true}},
		{"(,2.0]", domain.VersionRange{Max: "2.0", MaxInclusive: true}},
		{"(1.0, )", domain.VersionRange{Min: "1.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := domain.ParseVersionRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersionRange_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"abc", "[1.0", "(1.0)", "[2.0,1.0]", "[x,2.0]"} {
		_, err := domain.ParseVersionRange(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, domain.ErrInvalidVersionRange, in)
	}
}

func TestVersionRange_Satisfies(t *testing.T) {
	t.Parallel()

	r := domain.MustParseVersionRange("[1.0,2.0)")
	assert.True(t, r.Satisfies("1.0.0"))
	assert.True(t, r.Satisfies("1.9.9"))
	assert.False(t, r.Satisfies("2.0.0"))
	assert.False(t, r.Satisfies("0.9"))
	assert.False(t, r.Satisfies("not-a-version"))

	assert.True(t, domain.AnyVersion.Satisfies("99.0.0"))
	assert.False(t, domain.AtLeast("1.0").Satisfies("1.0.0-beta"))
}

func TestVersionRange_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1.0", "[1.0]", "[1.0, 2.0)", "(, 2.0]"} {
		r := domain.MustParseVersionRange(in)
		again, err := domain.ParseVersionRange(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, again)
	}
}

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	assert.Negative(t, domain.CompareVersions("1.0", "1.0.1"))
	assert.Zero(t, domain.CompareVersions("1.0", "1.0.0"))
	assert.Positive(t, domain.CompareVersions("2.0.0", "2.0.0-rc1"))
}

func TestValidVersion(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"1", "1.0", "1.0.0", "4.0.0.0", "1.0-beta", "1.0.0-rc.1", "2.0.0+build"} {
		assert.True(t, domain.ValidVersion(v), v)
	}
	for _, v := range []string{"", "abc", "1.0.0.0.0", "1..0", "1.0-", "1.x"} {
		assert.False(t, domain.ValidVersion(v), v)
	}
}

func TestCompareVersions_FourPartsAndShortPrerelease(t *testing.T) {
	t.Parallel()

	assert.Zero(t, domain.CompareVersions("4.0.0.0", "4.0.0"))
	assert.Negative(t, domain.CompareVersions("4.0.0.0", "4.0.0.1"))
	assert.Negative(t, domain.CompareVersions("4.0.0.9", "4.0.1"))
	assert.Positive(t, domain.CompareVersions("4.0.10.0", "4.0.9.0"))
	assert.Negative(t, domain.CompareVersions("1.0-beta", "1.0"))
	assert.Negative(t, domain.CompareVersions("1.0-alpha", "1.0-beta"))
	assert.Negative(t, domain.CompareVersions("not-a-version", "0.1"))

	r := domain.MustParseVersionRange("[4.0.0.0, 5.0)")
	assert.True(t, r.Satisfies("4.0.0.1"))
	assert.True(t, domain.MustParseVersionRange("1.0-beta").Satisfies("1.0"))
}
