package xml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocument_ErrorAccessorsOnSuccess(t *testing.T) {
	doc, err := Parse([]byte(`<a/>`))
	require.NoError(t, err)
	require.Nil(t, doc.Error())
	require.Equal(t, ErrNone, doc.ErrorID())
	require.Equal(t, "", doc.ErrorDesc())
	require.Equal(t, 0, doc.ErrorRow())
	require.Equal(t, 0, doc.ErrorCol())
}

func TestDocument_ErrorAccessorsOnFailure(t *testing.T) {
	doc, err := Parse([]byte(`<a><b></c></a>`))
	require.Error(t, err)
	require.NotNil(t, doc.Error())
	require.Equal(t, ErrEndTagMismatch, doc.ErrorID())
	require.NotEmpty(t, doc.ErrorDesc())
	require.Positive(t, doc.ErrorRow())
	require.Positive(t, doc.ErrorCol())
}

func TestDocument_ClearError(t *testing.T) {
	doc, err := Parse([]byte(`<a><b></c></a>`))
	require.Error(t, err)
	doc.ClearError()
	require.Nil(t, doc.Error())
	require.Equal(t, ErrNone, doc.ErrorID())
}

func TestDocument_HasBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<a/>`)...)
	doc, err := Parse(withBOM)
	require.NoError(t, err)
	require.True(t, doc.HasBOM())

	doc2, err := Parse([]byte(`<a/>`))
	require.NoError(t, err)
	require.False(t, doc2.HasBOM())
}

func TestSetCondenseWhitespace_ProcessDefault(t *testing.T) {
	original := IsWhitespaceCondensed()
	defer SetCondenseWhitespace(original)

	SetCondenseWhitespace(true)
	doc, err := Parse([]byte("<a>  x   y  </a>"))
	require.NoError(t, err)
	require.Equal(t, "x y", elementText(doc.RootElement()))

	SetCondenseWhitespace(false)
	doc2, err := Parse([]byte("<a>  x   y  </a>"))
	require.NoError(t, err)
	require.Equal(t, "  x   y  ", elementText(doc2.RootElement()))
}

func TestWithCondenseWhitespace_OverridesProcessDefault(t *testing.T) {
	original := IsWhitespaceCondensed()
	defer SetCondenseWhitespace(original)
	SetCondenseWhitespace(false)

	doc, err := Parse([]byte("<a>  x   y  </a>"), WithCondenseWhitespace(true))
	require.NoError(t, err)
	require.Equal(t, "x y", elementText(doc.RootElement()))
}
