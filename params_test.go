package gravityzone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Clone(t *testing.T) {
	p := Params{"a": 1}
	q := p.clone()
	q["b"] = 2

	assert.Len(t, p, 1)
	assert.Equal(t, 1, q["a"])
	assert.Equal(t, 2, q["b"])

	var nilParams Params
	assert.NotNil(t, nilParams.clone())
}

func TestMaybeBuilders(t *testing.T) {
	assert.Nil(t, maybeString(""))
	assert.Equal(t, "x", maybeString("x"))

	assert.Nil(t, maybeInt(0))
	assert.Equal(t, 4, maybeInt(4))

	assert.Nil(t, maybeStrings(nil))
	assert.Nil(t, maybeStrings([]string{}))
	assert.Equal(t, []string{"a"}, maybeStrings([]string{"a"}))

	assert.Nil(t, maybeIntMap(nil))
	assert.Equal(t, map[string]int{"companyType": 1}, maybeIntMap(map[string]int{"companyType": 1}))

	assert.Nil(t, maybeParams(nil))
	assert.Nil(t, maybeParams(Params{}))
	assert.Equal(t, Params{"depth": 1}, maybeParams(Params{"depth": 1}))
}

func TestBoolHelpers(t *testing.T) {
	assert.True(t, *Bool(true))
	assert.False(t, *Bool(false))

	assert.True(t, boolValue(nil, true))
	assert.False(t, boolValue(nil, false))
	assert.False(t, boolValue(Bool(false), true))
	assert.True(t, boolValue(Bool(true), false))
}
