package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SinglePhrase(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	result, err := p.Parse("a <b> c")
	require.NoError(t, err)

	assert.Equal(t, "a <b> c", result.Text)
	require.Len(t, result.Phrases, 1)

	phrase := result.Phrases[0]
	assert.Equal(t, "b", phrase.Text)
	assert.Equal(t, 2, phrase.OpenIndex)
	assert.Equal(t, 4, phrase.CloseIndex)
	assert.Empty(t, phrase.Children)
	assert.Empty(t, phrase.ArgumentIndices)
}

func TestParse_Siblings(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	result, err := p.Parse("<one> and <two>")
	require.NoError(t, err)

	require.Len(t, result.Phrases, 2)
	assert.Equal(t, "one", result.Phrases[0].Text)
	assert.Equal(t, "two", result.Phrases[1].Text)
	assert.Equal(t, 10, result.Phrases[1].OpenIndex)
	assert.Equal(t, 14, result.Phrases[1].CloseIndex)
}

func TestParse_Nested(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	result, err := p.Parse("<out <in> side>")
	require.NoError(t, err)

	require.Len(t, result.Phrases, 1)
	outer := result.Phrases[0]
	assert.Equal(t, "out <in> side", outer.Text)
	require.Len(t, outer.Children, 1)

	inner := outer.Children[0]
	assert.Equal(t, "in", inner.Text)

	// Child marker range sits inside the parent's text.
	assert.GreaterOrEqual(t, inner.OpenIndex, 0)
	assert.Less(t, inner.CloseIndex, len(outer.Text))
	assert.Equal(t, byte('<'), outer.Text[inner.OpenIndex])
	assert.Equal(t, byte('>'), outer.Text[inner.CloseIndex])
}

func TestParse_ArgumentSpecifier(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantText     string
		wantArgs     []int
		wantOverride bool
	}{
		{"trailing specifier", "<warn<0>>", "warn", []int{0}, false},
		{"multiple indices", "<warn<0,2,1>>", "warn", []int{0, 2, 1}, false},
		{"override marker", "<warn<1!>>", "warn", []int{1}, true},
		{"leading specifier", "<0>warn>", "warn", []int{0}, false},
		{"negative-looking index", "<warn<-1>>", "warn", []int{-1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser()
			require.NoError(t, err)

			result, err := p.Parse(tt.input)
			require.NoError(t, err)
			require.Len(t, result.Phrases, 1)

			phrase := result.Phrases[0]
			assert.Equal(t, tt.wantText, phrase.Text)
			assert.Equal(t, tt.wantArgs, phrase.ArgumentIndices)
			assert.Equal(t, tt.wantOverride, phrase.OverrideAlways)
			assert.Empty(t, phrase.Children, "a specifier must not become a child phrase")
		})
	}
}

func TestParse_SpecifierRemovedFromText(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	result, err := p.Parse("<outer<0><inner<1>>>")
	require.NoError(t, err)

	assert.Equal(t, "<outer<inner>>", result.Text)
	require.Len(t, result.Phrases, 1)

	outer := result.Phrases[0]
	assert.Equal(t, []int{0}, outer.ArgumentIndices)
	assert.Equal(t, "outer<inner>", outer.Text)
	assert.Equal(t, 0, outer.OpenIndex)
	assert.Equal(t, 13, outer.CloseIndex)

	require.Len(t, outer.Children, 1)
	inner := outer.Children[0]
	assert.Equal(t, []int{1}, inner.ArgumentIndices)
	assert.Equal(t, "inner", inner.Text)
	assert.Equal(t, 5, inner.OpenIndex)
	assert.Equal(t, 11, inner.CloseIndex)
}

func TestParse_Escapes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantText   string // escape-adjusted working text
		wantCount  int
		wantPhrase string
	}{
		{"escaped opening", `a \< b`, "a < b", 0, ""},
		{"escaped orphan close", `a \> b`, "a > b", 0, ""},
		{"both escaped", `\<literal\>`, "<literal>", 0, ""},
		{"escaped close inside phrase", `<a\>b>`, "<a>b>", 1, "a>b"},
		{"double escape before open", `\\<b>`, `\<b>`, 1, "b"},
		{"double escape before close", `<a\\>`, `<a\>`, 1, `a\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser()
			require.NoError(t, err)

			result, err := p.Parse(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.wantText, result.Text)
			require.Len(t, result.Phrases, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantPhrase, result.Phrases[0].Text)
			}
		})
	}
}

func TestParse_ClosingIndexAfterEscapeRemoval(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	// The escape character disappears from the working text, so the closing
	// index must equal the opening index plus the genuine marker's offset in
	// the escape-resolved substring.
	result, err := p.Parse(`<a\\>`)
	require.NoError(t, err)
	require.Len(t, result.Phrases, 1)

	phrase := result.Phrases[0]
	assert.Equal(t, `<a\>`, result.Text)
	assert.Equal(t, 0, phrase.OpenIndex)
	assert.Equal(t, 3, phrase.CloseIndex)
	assert.Equal(t, byte('>'), result.Text[phrase.CloseIndex])
}

func TestParse_UnclosedPhrase(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	_, err = p.Parse("<abc")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "no closing marker")
	assert.Contains(t, parseErr.Message, "position 0")
}

func TestParse_UnclosedNested(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	_, err = p.Parse("a <ok> <broken")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, `"<broken"`)
}

func TestParse_OrphanCloseDiagnostic(t *testing.T) {
	var diags []Diagnostic
	p, err := NewParser(WithDiagnostics(func(d Diagnostic) {
		diags = append(diags, d)
	}))
	require.NoError(t, err)

	result, err := p.Parse("a > b")
	require.NoError(t, err)

	assert.Equal(t, "a > b", result.Text)
	assert.Empty(t, result.Phrases)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "un-escaped '>'")
	assert.Equal(t, "2", diags[0].Position)
}

func TestParse_OrphanClosePositionMultiline(t *testing.T) {
	var diags []Diagnostic
	p, err := NewParser(WithDiagnostics(func(d Diagnostic) {
		diags = append(diags, d)
	}))
	require.NoError(t, err)

	_, err = p.Parse("ab\ncd > ef")
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Equal(t, "2:4", diags[0].Position)
}

func TestParse_DepthLimit(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	deep := strings.Repeat("<a", maxNestingDepth+1) + strings.Repeat(">", maxNestingDepth+1)
	_, err = p.Parse(deep)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "nested")
}

func TestParse_EmptyInput(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	result, err := p.Parse("")
	require.NoError(t, err)
	assert.Empty(t, result.Text)
	assert.Empty(t, result.Phrases)
}
