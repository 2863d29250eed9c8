package xml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteTo_RoundTripSelfClosing(t *testing.T) {
	doc, err := Parse([]byte(`<a/>`))
	require.NoError(t, err)
	require.Equal(t, "<a/>\n", doc.String())
}

func TestWriteTo_SoleTextChildInlines(t *testing.T) {
	doc, err := Parse([]byte(`<a><b>hi</b></a>`), WithPrettyPrint(true))
	require.NoError(t, err)
	out := doc.String()
	require.Contains(t, out, "<b>hi</b>")
}

func TestWriteTo_AttributesWithDoubleQuotesUseSingle(t *testing.T) {
	doc, err := Parse([]byte(`<a x='has "quote"'/>`))
	require.NoError(t, err)
	out := doc.String()
	require.Contains(t, out, `x='has &quot;quote&quot;'`)
}

func TestEncodeText_EscapesReservedCharacters(t *testing.T) {
	require.Equal(t, "&lt;a &amp; b&gt;", EncodeText("<a & b>"))
}

func TestEncodeText_PassesThroughExistingHexRef(t *testing.T) {
	require.Equal(t, "&#x41;", EncodeText("&#x41;"))
}

func TestCanonicalize_SortsAttributesAndSuppressesSelfClosing(t *testing.T) {
	doc, err := Parse([]byte(`<a z="1" a="2"/>`))
	require.NoError(t, err)
	out, err := Canonicalize(doc)
	require.NoError(t, err)
	require.Equal(t, `<a a="2" z="1"></a>`, string(out))
}

func TestCanonicalize_OmitsDeclaration(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0"?><a/>`))
	require.NoError(t, err)
	out, err := Canonicalize(doc)
	require.NoError(t, err)
	require.NotContains(t, string(out), "<?xml")
}

func TestWriteTo_PrettyPrintIndentsNestedElements(t *testing.T) {
	doc, err := Parse([]byte(`<a><b><c/></b></a>`))
	require.NoError(t, err)
	out := doc.String(WithPrettyPrint(true), WithIndentWidth(2))
	require.Contains(t, out, "\n  <b>\n")
	require.Contains(t, out, "\n    <c/>\n")
}

func TestWriteTo_PrettyPrintDisabledIsFlat(t *testing.T) {
	doc, err := Parse([]byte(`<a><b/></a>`))
	require.NoError(t, err)
	out := doc.String(WithPrettyPrint(false))
	require.Equal(t, "<a><b/></a>\n", out)
}
