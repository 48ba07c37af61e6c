package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeriver(t *testing.T) {
	tests := []struct {
		name    string
		algo    Algo
		want    Algo
		wantErr bool
	}{
		{name: "blake3", algo: AlgoBlake3, want: AlgoBlake3},
		{name: "sha256", algo: AlgoSHA256, want: AlgoSHA256},
		{name: "empty defaults to blake3", algo: "", want: AlgoBlake3},
		{name: "unknown algorithm", algo: "md5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDeriver(tt.algo)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Algo())
		})
	}
}

func TestDeriveDeterministic(t *testing.T) {
	d, err := NewDeriver(AlgoBlake3)
	require.NoError(t, err)

	a := d.Derive([]string{"hello", "world"}, []string{"fast", "api"})
	b := d.Derive([]string{"hello", "world"}, []string{"fast", "api"})
	assert.Equal(t, a, b)
	assert.Len(t, string(a), 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", string(a))
}

func TestDeriveDistinguishesPairs(t *testing.T) {
	d, err := NewDeriver(AlgoBlake3)
	require.NoError(t, err)

	tests := []struct {
		name           string
		list1a, list2a []string
		list1b, list2b []string
	}{
		{
			name:   "swapped lists",
			list1a: []string{"a"}, list2a: []string{"b"},
			list1b: []string{"b"}, list2b: []string{"a"},
		},
		{
			name:   "element moved across lists",
			list1a: []string{"a", "b"}, list2a: nil,
			list1b: []string{"a"}, list2b: []string{"b"},
		},
		{
			name:   "rearranged element boundary",
			list1a: []string{"ab"}, list2a: nil,
			list1b: []string{"a", "b"}, list2b: nil,
		},
		{
			name:   "concatenation ambiguity",
			list1a: []string{"ab", "c"}, list2a: nil,
			list1b: []string{"a", "bc"}, list2b: nil,
		},
		{
			name:   "empty element versus no element",
			list1a: []string{""}, list2a: nil,
			list1b: nil, list2b: nil,
		},
		{
			name:   "element order",
			list1a: []string{"a", "b"}, list2a: nil,
			list1b: []string{"b", "a"}, list2b: nil,
		},
		{
			name:   "case sensitivity of raw inputs",
			list1a: []string{"hello"}, list2a: nil,
			list1b: []string{"HELLO"}, list2b: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idA := d.Derive(tt.list1a, tt.list2a)
			idB := d.Derive(tt.list1b, tt.list2b)
			assert.NotEqual(t, idA, idB)
		})
	}
}

func TestDeriveSymmetricPairMatches(t *testing.T) {
	d, err := NewDeriver(AlgoBlake3)
	require.NoError(t, err)

	// Swapping identical lists yields the identical pair, so the identifier
	// must not change.
	a := d.Derive([]string{"x"}, []string{"x"})
	b := d.Derive([]string{"x"}, []string{"x"})
	assert.Equal(t, a, b)
}

func TestDeriveNilEqualsEmpty(t *testing.T) {
	d, err := NewDeriver(AlgoBlake3)
	require.NoError(t, err)

	assert.Equal(t, d.Derive(nil, nil), d.Derive([]string{}, []string{}))
}

func TestDeriveAlgorithmsDiffer(t *testing.T) {
	blake, err := NewDeriver(AlgoBlake3)
	require.NoError(t, err)
	sha, err := NewDeriver(AlgoSHA256)
	require.NoError(t, err)

	list1 := []string{"hello"}
	list2 := []string{"world"}
	assert.NotEqual(t, blake.Derive(list1, list2), sha.Derive(list1, list2))
	assert.Len(t, string(sha.Derive(list1, list2)), 64)
}
