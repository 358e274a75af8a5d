package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePhrase_Ordered(t *testing.T) {
	p, err := CompilePhrase([]string{"alpha", "beta"}, false)
	require.NoError(t, err)

	assert.True(t, p.MatchString("alpha   beta"))
	assert.True(t, p.MatchString("x alpha\tbeta y"))
	assert.False(t, p.MatchString("beta alpha"))
	assert.False(t, p.MatchString("alphabeta"))
	assert.False(t, p.MatchString("alpha-beta"))
	assert.True(t, p.MatchString("alpha\u00a0beta"))
	assert.True(t, p.MatchString("alpha\u2003 beta"))
}

func TestPhrase_FindAllFoldedOffsets(t *testing.T) {
	p, err := CompilePhrase([]string{"istanbul"}, false)
	require.NoError(t, err)
	// "İ" is two bytes in the line and one byte once lowercased.
	assert.Equal(t, [][]int{{0, 9}, {10, 19}}, p.FindAll("İstanbul İstanbul"))
	assert.True(t, p.MatchString("# İSTANBUL"))
}

func TestFold(t *testing.T) {
	folded, offsets := fold("aİb")
	assert.Equal(t, "aib", folded)
	assert.Equal(t, []int{0, 1, 3, 4}, offsets)
}

func TestCompilePhrase_CaseFolding(t *testing.T) {
	insensitive, err := CompilePhrase([]string{"alpha"}, false)
	require.NoError(t, err)
	assert.True(t, insensitive.MatchString("The ALPHA case"))

	sensitive, err := CompilePhrase([]string{"Alpha"}, true)
	require.NoError(t, err)
	assert.False(t, sensitive.MatchString("the alpha case"))
	assert.True(t, sensitive.MatchString("the Alpha case"))
}

func TestCompilePhrase_Metacharacters(t *testing.T) {
	p, err := CompilePhrase([]string{"c++", "(v2)"}, true)
	require.NoError(t, err)
	assert.True(t, p.MatchString("learning c++ (v2) today"))
	assert.False(t, p.MatchString("learning cc v2 today"))

	dot, err := CompilePhrase([]string{"a.b"}, true)
	require.NoError(t, err)
	assert.False(t, dot.MatchString("axb"))
}

func TestCompilePhrase_EmptyMatchesNothing(t *testing.T) {
	p, err := CompilePhrase(nil, false)
	require.NoError(t, err)
	assert.True(t, p.Empty())
	assert.False(t, p.MatchString(""))
	assert.False(t, p.MatchString("anything"))
	assert.Nil(t, p.FindAll("anything"))
	assert.Equal(t, "", p.String())
}

func TestPhrase_FindAll(t *testing.T) {
	p, err := CompilePhrase([]string{"ab"}, true)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2}, {3, 5}}, p.FindAll("ab ab"))
	assert.Equal(t, [][]int{{0, 2}, {2, 4}}, p.FindAll("abab"))
}
