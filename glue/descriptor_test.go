package glue

import (
	"errors"
	"strings"
	"testing"

	"github.com/quickwritereader/CobolGlue/typetags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
functions:
  - func_name: add_ints
    return_type: int
    parameters:
      - var_name: a
        type_name: int
        pointer_depth: 0
        type_size: 4
      - var_name: b
        type_name: short
        pointer_depth: 0
        type_size: 2
  - func_name: fill_name
    return_type: void
    parameters:
      - var_name: flag
        type_name: unsigned char
        pointer_depth: 0
        type_size: 1
      - var_name: name
        type_name: char
        pointer_depth: 1
        type_size: 8
`

const testJSON = `{"functions":[
  {"func_name":"add_ints","return_type":"int","parameters":[
    {"var_name":"a","type_name":"int","pointer_depth":0,"type_size":4},
    {"var_name":"b","type_name":"short","pointer_depth":0,"type_size":2}]},
  {"func_name":"fill_name","return_type":"void","parameters":[
    {"var_name":"flag","type_name":"unsigned char","pointer_depth":0,"type_size":1},
    {"var_name":"name","type_name":"char","pointer_depth":1,"type_size":8}]}
]}`

func TestLoadYAML(t *testing.T) {
	fns, err := LoadYAML(strings.NewReader(testYAML))
	require.NoError(t, err)
	require.Len(t, fns, 2)

	assert.Equal(t, "add_ints", fns[0].Name)
	assert.Equal(t, "int", fns[0].ReturnType)
	assert.Equal(t, []typetags.Kind{typetags.KindInt32, typetags.KindInt16}, fns[0].Kinds())

	name := fns[1].Params[1]
	assert.Equal(t, "name", name.VarName)
	assert.Equal(t, 1, name.PointerDepth)
	assert.Equal(t, 8, name.TypeSize)
	assert.True(t, name.IsOut())
	assert.False(t, fns[1].Params[0].IsOut())
}

func TestLoadJSON_MatchesYAML(t *testing.T) {
	fromYAML, err := LoadYAML(strings.NewReader(testYAML))
	require.NoError(t, err)
	fromJSON, err := LoadJSON(strings.NewReader(testJSON))
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromJSON)
}

func TestParseDescriptor_DetectsFormat(t *testing.T) {
	a, err := ParseDescriptor([]byte("  \n" + testJSON))
	require.NoError(t, err)
	b, err := ParseDescriptor([]byte(testYAML))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	empty, err := ParseDescriptor(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing name":     "functions:\n  - return_type: int\n",
		"missing type":     "functions:\n  - func_name: f\n    parameters:\n      - var_name: a\n",
		"negative pointer": "functions:\n  - func_name: f\n    parameters:\n      - var_name: a\n        type_name: int\n        pointer_depth: -1\n",
		"bad yaml":         "functions: [\n",
	}
	for name, doc := range cases {
		_, err := LoadYAML(strings.NewReader(doc))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidDescriptor), name)
	}

	_, err := LoadJSON(strings.NewReader(`{"functions": 3}`))
	assert.True(t, errors.Is(err, ErrInvalidDescriptor))
}
