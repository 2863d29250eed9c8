package xml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// HAPPY PATHS
// ============================================================================

func TestParse_SelfClosingElement(t *testing.T) {
	doc, err := Parse([]byte(`<a/>`))
	require.NoError(t, err)
	root := doc.RootElement()
	require.NotNil(t, root)
	require.Equal(t, "a", root.Value())
	require.Equal(t, 0, root.AttrLen())
}

func TestParse_AttributesAndChildText(t *testing.T) {
	doc, err := Parse([]byte(`<a x="1" y='2'><b>hi</b></a>`))
	require.NoError(t, err)
	root := doc.RootElement()
	require.NotNil(t, root)

	x, ok := root.Attr("x")
	require.True(t, ok)
	require.Equal(t, "1", x)
	y, ok := root.Attr("y")
	require.True(t, ok)
	require.Equal(t, "2", y)

	b := root.FirstChildElement("b")
	require.NotNil(t, b)
	require.Equal(t, "hi", elementText(b))
}

func TestParse_DuplicateAttributeLastWins(t *testing.T) {
	doc, err := Parse([]byte(`<a x="1" x="2"/>`))
	require.NoError(t, err)
	root := doc.RootElement()
	require.Equal(t, 1, root.AttrLen())
	v, ok := root.Attr("x")
	require.True(t, ok)
	require.Equal(t, "2", v)
}

func TestParse_DeclarationSwitchesEncoding(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0" encoding="UTF-8"?><root/>`))
	require.NoError(t, err)
	require.Equal(t, EncodingUTF8, doc.Encoding())

	decl, ok := doc.Root().FirstChild().Declaration()
	require.True(t, ok)
	require.Equal(t, "1.0", decl.DeclVersion())
	require.Equal(t, "UTF-8", decl.DeclEncoding())

	root := doc.RootElement()
	require.NotNil(t, root)
	require.Equal(t, "root", root.Value())
}

func TestParse_DeclarationLegacyEncoding(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><root/>`))
	require.NoError(t, err)
	require.Equal(t, EncodingLegacy, doc.Encoding())
}

func TestParse_EntityDecoding(t *testing.T) {
	doc, err := Parse([]byte(`<a>&lt;hello&gt; &amp; &#65; &#x42;</a>`))
	require.NoError(t, err)
	root := doc.RootElement()
	require.Equal(t, "<hello> & A B", elementText(root))
}

func TestParse_CDATAInsideElement(t *testing.T) {
	doc, err := Parse([]byte(`<a><![CDATA[<not a tag> & ]]></a>`))
	require.NoError(t, err)
	root := doc.RootElement()
	text := root.FirstChild()
	require.NotNil(t, text)
	require.True(t, text.IsCDATA())
	require.Equal(t, "<not a tag> & ", text.Value())
}

func TestParse_CDATAContainingBrackets(t *testing.T) {
	doc, err := Parse([]byte(`<a><![CDATA[a]b]]c]]></a>`))
	require.NoError(t, err)
	root := doc.RootElement()
	require.Equal(t, "a]b]]c", elementText(root))
}

func TestParse_UnknownConstructDOCTYPE(t *testing.T) {
	doc, err := Parse([]byte(`<!DOCTYPE html><a/>`))
	require.NoError(t, err)
	unknown, ok := doc.Root().FirstChild().Unknown()
	require.True(t, ok)
	require.Equal(t, "<!DOCTYPE html>", unknown.Value())
}

func TestParse_UnknownConstructUnterminated(t *testing.T) {
	doc, err := Parse([]byte(`<!DOCTYPE html`))
	require.Error(t, err)
	require.Equal(t, ErrUnknownMalformed, doc.ErrorID())
}

func TestParse_Comment(t *testing.T) {
	doc, err := Parse([]byte(`<a><!-- note --></a>`))
	require.NoError(t, err)
	root := doc.RootElement()
	c, ok := root.FirstChild().Comment()
	require.True(t, ok)
	require.Equal(t, " note ", c.Value())
}

// ============================================================================
// BOUNDARY / EDGE CASES
// ============================================================================

func TestParse_EmptyInput(t *testing.T) {
	doc, err := Parse([]byte(``))
	require.Error(t, err)
	require.Equal(t, ErrDocumentEmpty, doc.ErrorID())
}

func TestParse_WhitespaceOnlyInput(t *testing.T) {
	doc, err := Parse([]byte("   \n\t  "))
	require.Error(t, err)
	require.Equal(t, ErrDocumentEmpty, doc.ErrorID())
}

func TestParse_DeclarationOnlyInput(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0"?>`))
	require.Error(t, err)
	require.Equal(t, ErrDocumentEmpty, doc.ErrorID())
}

func TestParse_EndTagMismatch(t *testing.T) {
	doc, err := Parse([]byte(`<a><b></c></a>`))
	require.Error(t, err)
	require.Equal(t, ErrEndTagMismatch, doc.ErrorID())
}

func TestParse_UnterminatedEndOfInput(t *testing.T) {
	doc, err := Parse([]byte(`<a><b>`))
	require.Error(t, err)
	require.Equal(t, ErrEndTagMismatch, doc.ErrorID())
}

func TestParse_EmbeddedNUL(t *testing.T) {
	doc, err := Parse([]byte("<a>\x00</a>"))
	require.Error(t, err)
	require.Equal(t, ErrUnexpectedEOF, doc.ErrorID())
}

func TestParse_TrailingNULIsTerminator(t *testing.T) {
	doc, err := Parse([]byte("<a/>\x00"))
	require.NoError(t, err)
	require.Equal(t, "a", doc.RootElement().Value())
}

func TestParse_DeclarationNotFirstIsRejected(t *testing.T) {
	doc, err := Parse([]byte(`<a/><?xml version="1.0"?>`))
	require.Error(t, err)
	require.Equal(t, ErrDocumentNonRoot, doc.ErrorID())
}

func TestParse_SecondDeclarationIsRejected(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0"?><?xml version="1.0"?><a/>`))
	require.Error(t, err)
	require.Equal(t, ErrDocumentNonRoot, doc.ErrorID())
}

func TestParse_ElementNameMissing(t *testing.T) {
	doc, err := Parse([]byte(`< attr="1"/>`))
	require.Error(t, err)
	require.Equal(t, ErrElementNameMissing, doc.ErrorID())
}

func TestParse_CommentUnterminated(t *testing.T) {
	doc, err := Parse([]byte(`<!-- never closes`))
	require.Error(t, err)
	require.Equal(t, ErrCommentUnterminated, doc.ErrorID())
}

func TestParse_NumericEntityBoundaryCodepoints(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want rune
	}{
		{"control-0x01", `<a>&#1;</a>`, 0x01},
		{"del-0x7F", `<a>&#127;</a>`, 0x7F},
		{"latin1-boundary-0x80", `<a>&#128;</a>`, 0x80},
		{"max-2byte-0x7FF", `<a>&#2047;</a>`, 0x7FF},
		{"min-3byte-0x800", `<a>&#2048;</a>`, 0x800},
		{"replacement-char", `<a>&#xFFFD;</a>`, 0xFFFD},
		{"min-astral-0x10000", `<a>&#x10000;</a>`, 0x10000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse([]byte(tc.src))
			require.NoError(t, err)
			require.Equal(t, string(tc.want), elementText(doc.RootElement()))
		})
	}
}

func TestParse_CursorRowColumnOnError(t *testing.T) {
	doc, err := Parse([]byte("<a>\n  <b></c>\n</a>"))
	require.Error(t, err)
	require.Equal(t, 2, doc.ErrorRow())
	require.Greater(t, doc.ErrorCol(), 0)
}

func TestParse_TabExpandsColumn(t *testing.T) {
	doc, _ := Parse([]byte("\t<a></b>"), WithTabSize(4))
	require.Equal(t, 1, doc.ErrorRow())
	// A leading tab expands to 4 columns before "<a></b>" even starts, so
	// the reported error column must land well past the tab stop.
	require.Greater(t, doc.ErrorCol(), 4)
}

func TestParse_DeclarationAttributesOrderIndependent(t *testing.T) {
	doc, err := Parse([]byte(`<?xml encoding="UTF-8" version="1.0"?><a/>`))
	require.NoError(t, err)
	decl, ok := doc.Root().FirstChild().Declaration()
	require.True(t, ok)
	require.Equal(t, "1.0", decl.DeclVersion())
	require.Equal(t, "UTF-8", decl.DeclEncoding())
}

func TestParse_DeclarationDuplicateAttributeRejected(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0" version="1.1"?><a/>`))
	require.Error(t, err)
	require.Equal(t, ErrDeclarationMalformed, doc.ErrorID())
}

func TestParse_UnquotedAttributeValue(t *testing.T) {
	doc, err := Parse([]byte(`<a x=1/>`))
	require.NoError(t, err)
	v, ok := doc.RootElement().Attr("x")
	require.True(t, ok)
	require.Equal(t, "1", v)
}

func TestParse_UnquotedAttributeEmbeddedQuoteRejected(t *testing.T) {
	doc, err := Parse([]byte(`<a x=1"2/>`))
	require.Error(t, err)
	require.Equal(t, ErrAttributeMalformed, doc.ErrorID())
}

func TestParse_AttributeValueUnterminated(t *testing.T) {
	doc, err := Parse([]byte(`<a x="unterminated`))
	require.Error(t, err)
	require.Equal(t, ErrAttributeMalformed, doc.ErrorID())
}
