package richtext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	inputs := []string{"", "plain", "<b>bold</b> and <i>italic</i>", "<ul><li>one</li></ul>", "a &amp; b"}
	for _, in := range inputs {
		assert.Equal(t, in, Serialize(Deserialize(in)))
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   Fragment
		want string
	}{
		{"empty", "", ""},
		{"text", "hello", "hello"},
		{"br", "a<br>b", "a\nb"},
		{"trailing br", "a<br>", "a\n"},
		{"divs", "<div>a</div><div>b</div>", "a\nb"},
		{"text then div", "a<div>b</div>c", "a\nb\nc"},
		{"list", "<ul><li>one</li><li>two</li></ul>", "one\ntwo"},
		{"inline with break", "<b>a<br>b</b>", "a\nb"},
		{"entities", "a &amp; b", "a & b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestLines(t *testing.T) {
	got := Lines("<ul><li>• Led the team</li><li>  </li></ul>Reduced cost<br><br>")
	assert.Equal(t, []string{"• Led the team", "Reduced cost"}, got)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Fragment
		want Fragment
	}{
		{"", ""},
		{"<br>", ""},
		{"<b></b>", ""},
		{"<div><br></div>", ""},
		{"   ", ""},
		{"&nbsp;", ""},
		{"<a href=\"https://x.dev\"></a>", "<a href=\"https://x.dev\"></a>"},
		{"<b>x</b>", "<b>x</b>"},
		{"text<br>", "text<br>"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
	assert.True(t, IsEmpty("<p></p>"))
}

func TestApply_Inline(t *testing.T) {
	tests := []struct {
		name  string
		in    Fragment
		cmd   Command
		rng   Range
		value string
		want  Fragment
	}{
		{"bold prefix", "hello world", CommandBold, Range{0, 5}, "", "<b>hello</b> world"},
		{"italic middle", "hello world", CommandItalic, Range{2, 4}, "", "he<i>ll</i>o world"},
		{"underline all", "hello", CommandUnderline, Range{0, 5}, "", "<u>hello</u>"},
		{"link", "see docs", CommandLink, Range{4, 8}, " https://go.dev ", "see <a href=\"https://go.dev\">docs</a>"},
		{"across lines", "ab<br>cd", CommandBold, Range{1, 4}, "", "a<b>b</b><br><b>c</b>d"},
		{"strong counts as bold", "<strong>hi</strong> there", CommandBold, Range{0, 2}, "", "<strong>hi</strong> there"},
		{"partially bold", "<b>hello</b> world", CommandBold, Range{3, 8}, "", "<b>hello</b><b> wo</b>rld"},
		{"unicode offsets", "héllo wörld", CommandBold, Range{6, 11}, "", "héllo <b>wörld</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.in, tt.cmd, tt.rng, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_InlineIsIdempotent(t *testing.T) {
	for _, cmd := range []Command{CommandBold, CommandItalic, CommandUnderline} {
		once, err := Apply("make it count", cmd, Range{5, 7}, "")
		require.NoError(t, err)
		twice, err := Apply(once, cmd, Range{5, 7}, "")
		require.NoError(t, err)
		assert.Equal(t, once, twice, "command %s", cmd)
		assert.Equal(t, "make it count", PlainText(twice))
	}
}

func TestApply_DoesNotChangeInput(t *testing.T) {
	in := Fragment("hello world")
	_, err := Apply(in, CommandBold, Range{0, 5}, "")
	require.NoError(t, err)
	assert.Equal(t, Fragment("hello world"), in)
}

func TestApply_Lists(t *testing.T) {
	got, err := Apply("a<br>b", CommandUnorderedList, Range{0, 3}, "")
	require.NoError(t, err)
	assert.Equal(t, Fragment("<ul><li>a</li><li>b</li></ul>"), got)

	toggled, err := Apply(got, CommandUnorderedList, Range{0, 3}, "")
	require.NoError(t, err)
	assert.Equal(t, Fragment("a<br>b"), toggled)

	got, err = Apply("a<br>b<br>c", CommandOrderedList, Range{2, 3}, "")
	require.NoError(t, err)
	assert.Equal(t, Fragment("a<ol><li>b</li></ol>c"), got)
	assert.Equal(t, "a\nb\nc", PlainText(got))

	got, err = Apply("<ul><li>a</li><li>b</li></ul>", CommandOrderedList, Range{2, 3}, "")
	require.NoError(t, err)
	assert.Equal(t, Fragment("<ul><li>a</li></ul><ol><li>b</li></ol>"), got)
}

func TestApply_EmptyRangeIsNoop(t *testing.T) {
	got, err := Apply("<div>keep</div>", CommandBold, Range{2, 2}, "")
	require.NoError(t, err)
	assert.Equal(t, Fragment("<div>keep</div>"), got)
}

func TestApply_Errors(t *testing.T) {
	_, err := Apply("abc", Command("strike"), Range{0, 1}, "")
	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, Command("strike"), cmdErr.Command)

	_, err = Apply("abc", CommandLink, Range{0, 1}, "  ")
	require.True(t, errors.As(err, &cmdErr))

	for _, rng := range []Range{{-1, 1}, {2, 1}, {0, 4}} {
		_, err = Apply("abc", CommandBold, rng, "")
		var rngErr *RangeError
		require.True(t, errors.As(err, &rngErr), "range %v", rng)
		assert.Equal(t, 3, rngErr.Length)
	}
}

func TestParseCommand(t *testing.T) {
	c, err := ParseCommand("orderedlist")
	require.NoError(t, err)
	assert.Equal(t, CommandOrderedList, c)

	_, err = ParseCommand("heading")
	assert.Error(t, err)
}

func TestAppendLine(t *testing.T) {
	tests := []struct {
		name string
		in   Fragment
		line string
		want Fragment
	}{
		{"empty", "", "• Led the team", "• Led the team"},
		{"br only", "<br>", "x", "x"},
		{"plain", "first", "second", "first<br>second"},
		{"trailing break", "first<br>", "second", "first<br>second"},
		{"list", "<ul><li>a</li></ul>", "b", "<ul><li>a</li><li>b</li></ul>"},
		{"escapes", "a &amp; b", "c < d", "a &amp; b<br>c &lt; d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppendLine(tt.in, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_KeepsVoidElementsHTMLStyle(t *testing.T) {
	tests := []struct {
		name string
		in   Fragment
		cmd  Command
		rng  Range
		want Fragment
	}{
		{"break after selection", "a<br>b", CommandBold, Range{0, 1}, "<b>a</b><br>b"},
		{"break splits formatting", "<i>a<br>b</i><br>c", CommandUnderline, Range{4, 5}, "<i>a</i><br><i>b</i><br><u>c</u>"},
		{"void inside formatting", `<b><img src="x.png">a</b>`, CommandItalic, Range{0, 1}, `<b><img src="x.png"><i>a</i></b>`},
		{"image untouched", `<img src="x.png" alt="logo">a`, CommandItalic, Range{0, 1}, `<img src="x.png" alt="logo"><i>a</i>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.in, tt.cmd, tt.rng, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, string(got), "/>")
		})
	}
}
