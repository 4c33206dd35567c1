package payload

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	tcs := map[string]struct {
		in   Value
		want float64
	}{
		"number":               {in: Number(42), want: 42},
		"decimal comma":        {in: Text("45,5"), want: 45.5},
		"percent sign":         {in: Text("70%"), want: 70},
		"negative text":        {in: Text("-12.5"), want: -12.5},
		"letters only":         {in: Text("abc"), want: 0},
		"empty text":           {in: Text(""), want: 0},
		"thousands and comma":  {in: Text("1.234,56"), want: 0},
		"absent":               {in: Value{}, want: 0},
		"null":                 {in: Null(), want: 0},
		"nan":                  {in: Number(math.NaN()), want: 0},
		"infinity":             {in: Number(math.Inf(1)), want: 0},
		"bool":                 {in: Bool(true), want: 0},
		"mapping":              {in: Map(F("a", Number(1))), want: 0},
		"sequence":             {in: Seq(Number(1)), want: 0},
		"exponent letter":      {in: Text("1e999"), want: 1999},
		"dangling minus":       {in: Text("-"), want: 0},
		"minus inside digits":  {in: Text("1-2"), want: 0},
		"leading decimal dot":  {in: Text(".5"), want: 0.5},
		"currency with spaces": {in: Text("R$ 12,3"), want: 12.3},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToNumber(tc.in))
		})
	}
}

func TestToText(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 120_000_000, time.FixedZone("BRT", -3*3600))

	tcs := map[string]struct {
		in   Value
		want string
	}{
		"absent":    {in: Value{}, want: ""},
		"null":      {in: Null(), want: ""},
		"text":      {in: Text("olá"), want: "olá"},
		"integer":   {in: Number(70), want: "70"},
		"fraction":  {in: Number(45.5), want: "45.5"},
		"huge":      {in: Number(1e21), want: "1e+21"},
		"nan":       {in: Number(math.NaN()), want: "NaN"},
		"true":      {in: Bool(true), want: "true"},
		"time":      {in: Time(ts), want: "2024-03-09T17:05:07.120Z"},
		"mapping":   {in: Map(F("a", Number(1)), F("b", Text("x"))), want: `{"a":1,"b":"x"}`},
		"sequence":  {in: Seq(Number(1), Null()), want: `[1,null]`},
		"empty map": {in: Map(), want: `{}`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToText(tc.in))
		})
	}
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-5))
	assert.Equal(t, 100.0, ClampPercent(150))
	assert.Equal(t, 40.0, ClampPercent(40))
	assert.Equal(t, 0.0, ClampPercent(math.NaN()))
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 0.0, ParseCount(Value{}))
	assert.Equal(t, 0.0, ParseCount(Null()))
	assert.Equal(t, 1200.0, ParseCount(Text("1200")))
	assert.Equal(t, 7.0, ParseCount(Number(7)))
}

func TestNumeric(t *testing.T) {
	tcs := map[string]struct {
		in   Value
		want float64
		nan  bool
	}{
		"absent":          {in: Value{}, nan: true},
		"null":            {in: Null(), want: 0},
		"true":            {in: Bool(true), want: 1},
		"false":           {in: Bool(false), want: 0},
		"number":          {in: Number(12), want: 12},
		"padded text":     {in: Text("  12 "), want: 12},
		"empty text":      {in: Text(""), want: 0},
		"blank text":      {in: Text("   "), want: 0},
		"exponent":        {in: Text("1e3"), want: 1000},
		"hex":             {in: Text("0x10"), want: 16},
		"binary":          {in: Text("0b101"), want: 5},
		"bad hex":         {in: Text("0xZZ"), nan: true},
		"trailing junk":   {in: Text("12abc"), nan: true},
		"decimal comma":   {in: Text("45,5"), nan: true},
		"infinity":        {in: Text("Infinity"), want: math.Inf(1)},
		"empty sequence":  {in: Seq(), want: 0},
		"single sequence": {in: Seq(Number(5)), want: 5},
		"text sequence":   {in: Seq(Text("7")), want: 7},
		"pair sequence":   {in: Seq(Number(1), Number(2)), nan: true},
		"mapping":         {in: Map(), nan: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := Numeric(tc.in)
			if tc.nan {
				assert.True(t, math.IsNaN(got), "got %v", got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
