package usecase

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestInterpolateExamples(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		params map[string]string
		want   string
	}{
		{
			name:   "invite",
			body:   "Hello {{name}}, you are invited on {{date}}.",
			params: map[string]string{"name": "Ada", "date": "May 1"},
			want:   "Hello Ada, you are invited on May 1.",
		},
		{
			name:   "inner whitespace",
			body:   "Hi {{ name }} / {{\tname}} / {{name  }}",
			params: map[string]string{"name": "Ada"},
			want:   "Hi Ada / Ada / Ada",
		},
		{
			name:   "unknown placeholder kept verbatim",
			body:   "Hi {{name}} at {{ venue }}",
			params: map[string]string{"name": "Ada"},
			want:   "Hi Ada at {{ venue }}",
		},
		{
			name:   "no partial match",
			body:   "{{nametag}} {{name}} {{first_name}}",
			params: map[string]string{"name": "Ada"},
			want:   "{{nametag}} Ada {{first_name}}",
		},
		{
			name:   "case sensitive",
			body:   "{{Name}} {{name}}",
			params: map[string]string{"name": "Ada"},
			want:   "{{Name}} Ada",
		},
		{
			name:   "value is not re-expanded",
			body:   "{{a}} {{b}}",
			params: map[string]string{"a": "{{b}}", "b": "B"},
			want:   "{{b}} B",
		},
		{
			name:   "nested braces",
			body:   "{{ {{name}} }}",
			params: map[string]string{"name": "Ada"},
			want:   "{{ Ada }}",
		},
		{
			name:   "regex metacharacters in key and value",
			body:   "Total: {{price.$}}",
			params: map[string]string{"price.$": "$1.00 \\1"},
			want:   "Total: $1.00 \\1",
		},
		{
			name:   "nil params",
			body:   "Hi {{name}}",
			params: nil,
			want:   "Hi {{name}}",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Interpolate(tc.body, tc.params))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("Hello {{name}}, {{ date }} at {{venue}} - {{name}} {{ }}")
	assert.Equal(t, []string{"name", "date", "venue"}, got)
	assert.Empty(t, Placeholders("no placeholders"))
}

var (
	keyGen   = rapid.StringMatching(`[a-z][a-z0-9_]{0,11}`)
	valueGen = rapid.StringMatching(`[A-Za-z0-9 .,!$\\-]{0,20}`)
	spaceGen = rapid.StringMatching(`[ \t]{0,3}`)
	plainGen = rapid.StringMatching(`[A-Za-z0-9 .,!?\n-]{0,40}`)
)

func testInterpolate_IdentityWithoutPlaceholders(t *rapid.T) {
	body := rapid.StringMatching(`[^{}]{0,80}`).Draw(t, "body")
	params := rapid.MapOf(keyGen, valueGen).Draw(t, "params")

	if got := Interpolate(body, params); got != body {
		t.Fatalf("identity violated: body=%q got=%q", body, got)
	}
}

func TestInterpolate_IdentityWithoutPlaceholders(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testInterpolate_IdentityWithoutPlaceholders)
}

// Monta um corpo com placeholders conhecidos e desconhecidos e confere o resultado
// contra a montagem esperada, pedaço por pedaço.
func testInterpolate_ReplacesKnownKeepsUnknown(t *rapid.T) {
	params := rapid.MapOfN(keyGen, valueGen, 1, 5).Draw(t, "params")
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var body, want strings.Builder
	n := rapid.IntRange(1, 8).Draw(t, "segments")
	for i := 0; i < n; i++ {
		text := plainGen.Draw(t, "text")
		body.WriteString(text)
		want.WriteString(text)

		left, right := spaceGen.Draw(t, "left"), spaceGen.Draw(t, "right")
		if rapid.Bool().Draw(t, "known") {
			k := rapid.SampledFrom(keys).Draw(t, "key")
			body.WriteString("{{" + left + k + right + "}}")
			want.WriteString(params[k])
			continue
		}

		unknown := keyGen.Draw(t, "unknown")
		if _, ok := params[unknown]; ok {
			unknown += "_x"
		}
		if _, ok := params[unknown]; ok {
			continue
		}
		token := "{{" + left + unknown + right + "}}"
		body.WriteString(token)
		want.WriteString(token)
	}

	if got := Interpolate(body.String(), params); got != want.String() {
		t.Fatalf("body=%q params=%v\n got=%q\nwant=%q", body.String(), params, got, want.String())
	}
}

func TestInterpolate_ReplacesKnownKeepsUnknown(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testInterpolate_ReplacesKnownKeepsUnknown)
}

func testInterpolate_NoPartialMatch(t *rapid.T) {
	name := keyGen.Draw(t, "name")
	suffix := rapid.StringMatching(`[a-z0-9_]{1,6}`).Draw(t, "suffix")
	value := valueGen.Draw(t, "value")

	body := "{{" + name + suffix + "}} {{" + suffix + name + "}}"
	params := map[string]string{name: value}

	if got := Interpolate(body, params); got != body {
		t.Fatalf("partial match: body=%q got=%q", body, got)
	}
}

func TestInterpolate_NoPartialMatch(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testInterpolate_NoPartialMatch)
}

func testInterpolate_AllOccurrencesReplaced(t *rapid.T) {
	name := keyGen.Draw(t, "name")
	value := rapid.StringMatching(`[A-Za-z0-9 ]{0,10}`).Draw(t, "value")
	times := rapid.IntRange(1, 10).Draw(t, "times")

	body := strings.Repeat("[{{"+name+"}}]", times)
	got := Interpolate(body, map[string]string{name: value})

	if want := strings.Repeat("["+value+"]", times); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestInterpolate_AllOccurrencesReplaced(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testInterpolate_AllOccurrencesReplaced)
}
