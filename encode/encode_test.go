package encode_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"lima/encode"
)

func ordered() *orderedmap.OrderedMap[string, any] {
	om := orderedmap.New[string, any]()
	om.Set("title", "King")
	om.Set("name", "Arthur")
	om.Set("born", "0501-01-01")
	om.Set("subjects", []any{map[string]any{"name": "Bedevere"}})

	return om
}

func ExampleJSON() {
	data, _ := encode.JSON(ordered())
	fmt.Println(string(data))
	// Output:
	// {"title":"King","name":"Arthur","born":"0501-01-01","subjects":[{"name":"Bedevere"}]}
}

func ExampleCanonical() {
	data, _ := encode.Canonical(ordered())
	fmt.Println(string(data))
	// Output:
	// {"born":"0501-01-01","name":"Arthur","subjects":[{"name":"Bedevere"}],"title":"King"}
}

func ExampleYAML() {
	data, _ := encode.YAML(ordered())
	fmt.Print(string(data))
	// Output:
	// title: King
	// name: Arthur
	// born: "0501-01-01"
	// subjects:
	//   - name: Bedevere
}

func TestJSON_NoHTMLEscape(t *testing.T) {
	data, err := encode.JSON(map[string]any{"a": "<b>&</b>"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"<b>&</b>"}`, string(data))
	assert.Contains(t, string(data), "<b>")
}

func TestJSONIndent(t *testing.T) {
	data, err := encode.JSONIndent(map[string]any{"a": 1}, "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestJSON_Unsupported(t *testing.T) {
	_, err := encode.JSON(map[string]any{"f": func() {}})
	assert.Error(t, err)

	_, err = encode.Canonical(make(chan int))
	assert.Error(t, err)
}

func TestCanonical_Numbers(t *testing.T) {
	data, err := encode.Canonical(map[string]any{"b": 1.0, "a": 1e21, "c": nil})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1e+21,"b":1,"c":null}`, string(data))
}

func TestYAML_PlainMapsSorted(t *testing.T) {
	data, err := encode.YAML(map[string]any{"b": 2, "a": []any{true, nil}, "c": nil})
	require.NoError(t, err)
	assert.Equal(t, "a:\n  - true\n  - null\nb: 2\nc: null\n", string(data))
}

func TestYAML_NilOrdered(t *testing.T) {
	var om *orderedmap.OrderedMap[string, any]
	data, err := encode.YAML(om)
	require.NoError(t, err)
	assert.Equal(t, "null\n", string(data))
}
