package format

import "testing"

func TestEscape(t *testing.T) {
	got := Escape(`<b>Ivan</b> & "Co"`)
	want := "&lt;b&gt;Ivan&lt;/b&gt; &amp; &#34;Co&#34;"
	if got != want {
		t.Fatalf("Escape = %q, want %q", got, want)
	}
}

func TestLink(t *testing.T) {
	got := Link("https://maps.example/?a=1&b=2", "Open <here>")
	want := `<a href="https://maps.example/?a=1&amp;b=2">Open &lt;here&gt;</a>`
	if got != want {
		t.Fatalf("Link = %q, want %q", got, want)
	}
}

func TestLinesSkipsEmpty(t *testing.T) {
	if got := Lines("a", "", "b"); got != "a\nb" {
		t.Fatalf("Lines = %q", got)
	}
}
