package record

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/hupe1980/rowindex/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAny(t *testing.T) {
	t.Run("Scalars", func(t *testing.T) {
		tests := []struct {
			name     string
			input    any
			expected Value
		}{
			{"nil", nil, Null()},
			{"Value", Int(1), Int(1)},
			{"bool true", true, Bool(true)},
			{"bool false", false, Bool(false)},
			{"string", "hello", String("hello")},
			{"float64", 3.14, Float(3.14)},
			{"float32", float32(1.5), Float(1.5)},
			{"int", int(1), Int(1)},
			{"int8", int8(1), Int(1)},
			{"int16", int16(1), Int(1)},
			{"int32", int32(1), Int(1)},
			{"int64", int64(1), Int(1)},
			{"uint", uint(1), Int(1)},
			{"uint8", uint8(1), Int(1)},
			{"uint16", uint16(1), Int(1)},
			{"uint32", uint32(1), Int(1)},
			{"uint32 max", uint32(math.MaxUint32), Int(int64(math.MaxUint32))},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				v, err := FromAny(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, v)
			})
		}
	})

	t.Run("Uint64 Range", func(t *testing.T) {
		v, err := FromAny(uint64(math.MaxInt64))
		assert.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), v.I64)

		_, err = FromAny(uint64(math.MaxInt64) + 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("Slices", func(t *testing.T) {
		t.Run("[]any", func(t *testing.T) {
			v, err := FromAny([]any{1, "s", true})
			assert.NoError(t, err)
			arr, _ := v.AsArray()
			assert.Equal(t, []Value{Int(1), String("s"), Bool(true)}, arr)
		})

		t.Run("[]any error", func(t *testing.T) {
			_, err := FromAny([]any{make(chan int)})
			assert.Error(t, err)
		})

		t.Run("[]string", func(t *testing.T) {
			v, err := FromAny([]string{"a", "b"})
			assert.NoError(t, err)
			arr, _ := v.AsArray()
			assert.Equal(t, []Value{String("a"), String("b")}, arr)
		})

		t.Run("[]int", func(t *testing.T) {
			v, err := FromAny([]int{1, 2})
			assert.NoError(t, err)
			arr, _ := v.AsArray()
			assert.Equal(t, []Value{Int(1), Int(2)}, arr)
		})

		t.Run("[]float64", func(t *testing.T) {
			v, err := FromAny([]float64{1.1, 2.2})
			assert.NoError(t, err)
			arr, _ := v.AsArray()
			assert.Len(t, arr, 2)
			assert.Equal(t, Float(1.1), arr[0])
		})
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := FromAny(make(chan int))
		assert.Error(t, err)

		_, err = FromAny([]byte("bytes"))
		assert.Error(t, err)
	})
}

func TestRecordsFromAny(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rows, err := RecordsFromAny([]map[string]any{
			{"i": 123, "s": "foo"},
			nil,
			{"tags": []string{"a"}},
		})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, Int(123), rows[0]["i"])
		assert.Equal(t, String("foo"), rows[0]["s"])
		assert.Nil(t, rows[1])
		assert.Equal(t, Array([]Value{String("a")}), rows[2]["tags"])
	})

	t.Run("Error names row and field", func(t *testing.T) {
		_, err := RecordsFromAny([]map[string]any{{"ok": 1}, {"bad": make(chan int)}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 1")
		assert.Contains(t, err.Error(), `field "bad"`)
	})
}

func TestDecodeJSON(t *testing.T) {
	data := []byte(`[
		{"title": "Lord of the rings", "data": [5, 6, 43, 21, 88], "author": "Tolkien", "volumes": 3},
		null,
		{"title": "Prelude to Foundation", "data": [99, 1], "author": "Asimov", "volumes": 1}
	]`)

	for _, c := range []codec.Codec{nil, codec.JSON{}, codec.GoJSON{}} {
		rows, err := DecodeJSON(c, data)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, String("Tolkien"), rows[0]["author"])
		assert.Equal(t, Float(3), rows[0]["volumes"])
		assert.Nil(t, rows[1])

		arr, ok := rows[2]["data"].AsArray()
		require.True(t, ok)
		assert.Equal(t, []Value{Float(99), Float(1)}, arr)
	}

	_, err := DecodeJSON(codec.JSON{}, []byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestDecodeJSON_RoundTrip(t *testing.T) {
	rec := Record{
		"title":   String("Winnie the Pooh"),
		"data":    Array([]Value{Int(1), Float(2.5), Null()}),
		"volumes": Int(1),
		"read":    Bool(true),
	}

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data := codec.MustMarshal(c, []Record{rec, nil})

			rows, err := DecodeJSON(c, data)
			require.NoError(t, err)
			require.Len(t, rows, 2)
			assert.Nil(t, rows[1])

			got := rows[0]
			assert.Equal(t, String("Winnie the Pooh"), got["title"])
			assert.Equal(t, Bool(true), got["read"])
			assert.Equal(t, Array([]Value{Float(1), Float(2.5), Null()}), got["data"])

			want, _ := rec["volumes"].Canonical()
			have, _ := got["volumes"].Canonical()
			assert.Equal(t, want, have)
		})
	}
}

func TestFromAny_JSONNumber(t *testing.T) {
	v, err := FromAny(json.Number("42"))
	require.NoError(t, err)
	assert.Equal(t, Int(42), v)

	v, err = FromAny(json.Number("0.5"))
	require.NoError(t, err)
	assert.Equal(t, Float(0.5), v)

	_, err = FromAny(json.Number("nope"))
	assert.Error(t, err)
}
