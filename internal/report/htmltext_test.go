package report

import (
	"testing"
)

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "paragraphs become blank-line separated text",
			src:  "<p>First paragraph.</p><p>Second paragraph.</p>",
			want: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name: "inline tags are dropped",
			src:  "<p>Use <code>context.Context</code> for <strong>cancellation</strong>.</p>",
			want: "Use context.Context for cancellation.",
		},
		{
			name: "list items become bullet lines",
			src:  "<ul><li>one</li><li>two</li></ul>",
			want: "• one\n\n• two",
		},
		{
			name: "pre content is skipped",
			src:  "<p>Intro</p><pre>func main() {}</pre><p>Outro</p>",
			want: "Intro\n\nOutro",
		},
		{
			name: "entities are decoded",
			src:  "<p>a &amp; b &lt; c</p>",
			want: "a & b < c",
		},
		{
			name: "whitespace runs collapse",
			src:  "<p>spaced\n   out\ttext</p>",
			want: "spaced out text",
		},
		{
			name: "empty input",
			src:  "",
			want: "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := htmlToText(tt.src); got != tt.want {
				t.Errorf("htmlToText(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestCodeExamples(t *testing.T) {
	t.Parallel()

	t.Run("extracts labeled blocks in document order", func(t *testing.T) {
		t.Parallel()

		src := `<p>Example:</p>` +
			`<pre data-diff-type="noncompliant">x := fmt.Sprint(v)</pre>` +
			`<p>Fixed:</p>` +
			`<pre data-diff-type="compliant">x := strconv.Itoa(v)</pre>`

		examples := codeExamples(src)
		if len(examples) != 2 {
			t.Fatalf("len(examples) = %d, want 2", len(examples))
		}
		if examples[0].Compliant {
			t.Error("examples[0].Compliant = true, want noncompliant first")
		}
		if examples[0].Code != "x := fmt.Sprint(v)" {
			t.Errorf("examples[0].Code = %q", examples[0].Code)
		}
		if !examples[1].Compliant {
			t.Error("examples[1].Compliant = false, want compliant")
		}
	})

	t.Run("ignores unlabeled pre blocks", func(t *testing.T) {
		t.Parallel()

		if got := codeExamples("<pre>plain code</pre>"); len(got) != 0 {
			t.Errorf("codeExamples() = %v, want none", got)
		}
	})

	t.Run("strips highlighting markup inside blocks", func(t *testing.T) {
		t.Parallel()

		src := `<pre data-diff-type="compliant"><span class="k">if</span> err != nil {</pre>`
		examples := codeExamples(src)
		if len(examples) != 1 {
			t.Fatalf("len(examples) = %d, want 1", len(examples))
		}
		if examples[0].Code != "if err != nil {" {
			t.Errorf("Code = %q", examples[0].Code)
		}
	})

	t.Run("no examples in plain prose", func(t *testing.T) {
		t.Parallel()

		if got := codeExamples("<p>Nothing to see.</p>"); got != nil {
			t.Errorf("codeExamples() = %v, want nil", got)
		}
	})
}

func TestStripLineMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "plain line passes through",
			code: "\tx := 1",
			want: "\tx := 1",
		},
		{
			name: "span wrappers removed",
			code: `<span class="k">return</span> <span class="c">err</span>`,
			want: "return err",
		},
		{
			name: "entities decoded",
			code: "a &lt; b &amp;&amp; c &gt; d",
			want: "a < b && c > d",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := stripLineMarkup(tt.code); got != tt.want {
				t.Errorf("stripLineMarkup(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
