package payload

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("keeps key order", func(t *testing.T) {
		v, err := Parse([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[1,"x"]}`))
		require.NoError(t, err)
		assert.Equal(t, KindMapping, v.Kind())
		assert.Equal(t, `{"z":1,"a":{"y":true,"b":null},"m":[1,"x"]}`, v.JSON())
	})

	t.Run("duplicate keys keep first position and last value", func(t *testing.T) {
		v, err := Parse([]byte(`{"a":1,"b":2,"a":3}`))
		require.NoError(t, err)
		assert.Equal(t, `{"a":3,"b":2}`, v.JSON())
	})

	t.Run("empty input is absent", func(t *testing.T) {
		v, err := Parse([]byte("  \n"))
		require.NoError(t, err)
		assert.True(t, v.IsAbsent())
	})

	t.Run("null literal", func(t *testing.T) {
		v, err := Parse([]byte("null"))
		require.NoError(t, err)
		assert.Equal(t, KindNull, v.Kind())
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Parse([]byte(`{"a":`))
		assert.ErrorIs(t, err, ErrInvalidJSON)
		assert.True(t, MustParse(`{"a":`).IsAbsent())
	})

	t.Run("deep nesting is rejected before decoding", func(t *testing.T) {
		start := time.Now()
		_, err := Parse([]byte(strings.Repeat("[", 200000) + strings.Repeat("]", 200000)))
		assert.ErrorIs(t, err, ErrTooDeep)
		assert.Less(t, time.Since(start), 2*time.Second)

		ok := strings.Repeat("[", MaxDepth) + strings.Repeat("]", MaxDepth)
		v, err := Parse([]byte(ok))
		require.NoError(t, err)
		assert.Equal(t, KindSequence, v.Kind())
	})

	t.Run("brackets inside strings do not count", func(t *testing.T) {
		text := `{"a":"` + strings.Repeat("[{", MaxDepth) + `\"}"}`
		v, err := Parse([]byte(text))
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("[{", MaxDepth)+`"}`, v.Get("a").Str())
	})

	t.Run("scalars", func(t *testing.T) {
		assert.Equal(t, Number(1.5), MustParse("1.5"))
		assert.Equal(t, Text("é\n"), MustParse(`"é\n"`))
		assert.Equal(t, Bool(false), MustParse("false"))
	})
}

func TestValueAccessors(t *testing.T) {
	v := MustParse(`{"a":null,"b":"x","c":[1,2],"d":{}}`)

	assert.True(t, v.IsObject())
	assert.True(t, v.Get("c").IsObject())
	assert.False(t, v.Get("b").IsObject())
	assert.True(t, v.Get("missing").IsAbsent())
	assert.Equal(t, KindNull, v.Get("a").Kind())
	assert.Equal(t, Text("x"), v.Lookup("a", "b"))
	assert.True(t, v.Lookup("a", "missing").IsAbsent())
	assert.Equal(t, 2, v.Get("c").Len())
	assert.Equal(t, 4, v.Len())
	assert.Nil(t, v.Get("b").Items())
	assert.Equal(t, "x", v.Get("b").Str())
	assert.Equal(t, "", v.Get("c").Str())
	assert.True(t, Text("x").Get("a").IsAbsent())
	assert.Equal(t, Text("y"), Null().Or(Text("y")))
	assert.Equal(t, Text(""), Text("").Or(Text("y")))
}

func TestTruthy(t *testing.T) {
	for _, v := range []Value{{}, Null(), Bool(false), Number(0), Number(math.NaN()), Text("")} {
		assert.False(t, v.Truthy(), v.Kind().String())
	}
	for _, v := range []Value{Bool(true), Number(-1), Text("0"), Seq(), Map()} {
		assert.True(t, v.Truthy(), v.Kind().String())
	}
}

func TestEqual(t *testing.T) {
	a := MustParse(`{"a":[1,{"b":"c"}]}`)
	b := MustParse(`{ "a" : [ 1 , { "b" : "c" } ] }`)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MustParse(`{"a":[1,{"b":"d"}]}`)))
	assert.False(t, MustParse(`{"a":1,"b":2}`).Equal(MustParse(`{"b":2,"a":1}`)))
	assert.True(t, Number(math.NaN()).Equal(Number(math.NaN())))
	assert.False(t, Null().Equal(Value{}))
}

func TestJSON(t *testing.T) {
	tcs := map[string]struct {
		in   Value
		want string
	}{
		"absent member omitted": {in: Map(F("a", Value{}), F("b", Number(1))), want: `{"b":1}`},
		"absent element null":   {in: Seq(Value{}, Number(2)), want: `[null,2]`},
		"non finite null":       {in: Seq(Number(math.NaN()), Number(math.Inf(-1))), want: `[null,null]`},
		"html kept":             {in: Text("<b>&</b>"), want: `"<b>&</b>"`},
		"control escaped":       {in: Text("a\x01\"\\\t"), want: `"a\u0001\"\\\t"`},
		"exponent number":       {in: Number(1.5e-7), want: `1.5e-7`},
		"absent":                {in: Value{}, want: `null`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.JSON())
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	type envelope struct {
		Raw Value `json:"raw"`
	}

	in := envelope{Raw: MustParse(`{"k":"v","n":[1,2]}`)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"raw":{"k":"v","n":[1,2]}}`, string(data))

	var out envelope
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Raw.Equal(out.Raw))
}

func TestFromAny(t *testing.T) {
	t.Run("decoded json", func(t *testing.T) {
		var decoded any
		require.NoError(t, json.Unmarshal([]byte(`{"b":[1,"x",null],"a":true}`), &decoded))
		assert.Equal(t, `{"a":true,"b":[1,"x",null]}`, FromAny(decoded).JSON())
	})

	t.Run("go values", func(t *testing.T) {
		ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		assert.Equal(t, Number(3), FromAny(3))
		assert.Equal(t, Number(7), FromAny(uint8(7)))
		assert.Equal(t, Time(ts), FromAny(ts))
		assert.Equal(t, Null(), FromAny(nil))
		assert.Equal(t, Number(12.5), FromAny(json.Number("12.5")))
		assert.Equal(t, `[1,2]`, FromAny([]int{1, 2}).JSON())
		assert.Equal(t, `{"x":"y"}`, FromAny(map[string]string{"x": "y"}).JSON())
		assert.Equal(t, `{"k":1}`, FromAny(json.RawMessage(`{"k":1}`)).JSON())
	})

	t.Run("structs round trip through json tags", func(t *testing.T) {
		type item struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}
		assert.Equal(t, `{"name":"a","count":2}`, FromAny(item{Name: "a", Count: 2}).JSON())
		assert.Equal(t, `{"name":"b","count":0}`, FromAny(&item{Name: "b"}).JSON())
	})

	t.Run("unserializable becomes null", func(t *testing.T) {
		assert.Equal(t, Null(), FromAny(make(chan int)))
		assert.Equal(t, Null(), FromAny(func() {}))
	})

	t.Run("cyclic structure terminates", func(t *testing.T) {
		m := map[string]any{}
		m["self"] = m
		m["again"] = m
		m["list"] = []any{m, "x"}
		assert.Equal(t, `{"again":null,"list":[null,"x"],"self":null}`, FromAny(m).JSON())
	})

	t.Run("shared values are not cycles", func(t *testing.T) {
		shared := map[string]any{"k": 1}
		assert.Equal(t, `{"a":{"k":1},"b":{"k":1}}`, FromAny(map[string]any{"a": shared, "b": shared}).JSON())
	})

	t.Run("wide sharing is cut by the node budget", func(t *testing.T) {
		var level any = "leaf"
		for i := 0; i < 40; i++ {
			level = []any{level, level}
		}

		done := make(chan Value, 1)
		go func() { done <- FromAny(level) }()

		select {
		case v := <-done:
			assert.Equal(t, KindSequence, v.Kind())
		case <-time.After(5 * time.Second):
			t.Fatal("FromAny did not return")
		}
	})

	t.Run("depth is bounded", func(t *testing.T) {
		var nested any = "leaf"
		for i := 0; i < MaxDepth*2; i++ {
			nested = map[string]any{"n": nested}
		}
		v := FromAny(nested)

		depth := 0
		for v.Kind() == KindMapping {
			v = v.Get("n")
			depth++
		}
		assert.Equal(t, KindNull, v.Kind())
		assert.Equal(t, MaxDepth+1, depth)
	})
}
