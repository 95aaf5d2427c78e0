package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElSkipsNilChildren(t *testing.T) {
	t.Parallel()

	n := El("div", nil, Text("a"), nil, Text("b"))
	require.Len(t, n.Children(), 2)
}

func TestRenderEscapesText(t *testing.T) {
	t.Parallel()

	n := El("p", Text(`<script>alert("x")</script> & friends`))
	require.Equal(t, `<p>&lt;script&gt;alert("x")&lt;/script&gt; &amp; friends</p>`, n.Render())
}

func TestRenderEscapesAttributes(t *testing.T) {
	t.Parallel()

	n := El("img").WithAttr("alt", `say "hi" <now>`).WithAttr("src", "a.jpg")
	require.Equal(t, `<img alt="say &quot;hi&quot; &lt;now&gt;" src="a.jpg"/>`, n.Render())
}

func TestRenderRawPassesThrough(t *testing.T) {
	t.Parallel()

	n := El("div", Raw("<em>hi</em>"))
	require.Equal(t, "<div><em>hi</em></div>", n.Render())
}

func TestRenderDeterministicOrdering(t *testing.T) {
	t.Parallel()

	build := func() *Node {
		return El("div").
			WithAttr("data-b", "2").
			WithAttr("data-a", "1").
			WithStyle("color", "red").
			WithStyle("background", "blue")
	}
	require.Equal(t, build().Render(), build().Render())
	require.Equal(t, `<div data-a="1" data-b="2" style="background:blue;color:red"></div>`, build().Render())
}

func TestStyleAndClassRendering(t *testing.T) {
	t.Parallel()

	n := El("section").WithClass("hero", "hero--centered").WithStyle("color", "#fff")
	require.Equal(t, `<section class="hero hero--centered" style="color:#fff"></section>`, n.Render())
	require.True(t, n.HasClass("hero"))
	require.False(t, n.HasClass("hero--split"))
}

func TestFindByClass(t *testing.T) {
	t.Parallel()

	tree := El("div",
		El("div").WithClass("outer"),
		El("div",
			El("span", Text("deep")).WithClass("target"),
		),
	)

	found := tree.FindByClass("target")
	require.NotNil(t, found)
	require.Equal(t, "span", found.Tag())
	require.Nil(t, tree.FindByClass("missing"))
}

func TestVisibleText(t *testing.T) {
	t.Parallel()

	tree := El("div",
		El("h1", Text("Ayşe")),
		Text(" & "),
		El("h1", Text("Mehmet")),
	)
	require.Equal(t, "Ayşe & Mehmet", tree.VisibleText())
}

func TestVoidElements(t *testing.T) {
	t.Parallel()

	require.Equal(t, `<br/>`, El("br").Render())
	require.Equal(t, `<div><hr/></div>`, El("div", El("hr")).Render())
}
