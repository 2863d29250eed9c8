package xml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile_NormalizesCRLF(t *testing.T) {
	doc, err := LoadFile(strings.NewReader("<a>\r\n<b/>\r\n</a>"))
	require.NoError(t, err)
	require.NotNil(t, doc.RootElement().FirstChildElement("b"))
}

func TestLoadFile_NormalizesBareCR(t *testing.T) {
	doc, err := LoadFile(strings.NewReader("<a>\r<b/>\r</a>"))
	require.NoError(t, err)
	require.NotNil(t, doc.RootElement().FirstChildElement("b"))
}

func TestNormalizeLineEndings(t *testing.T) {
	require.Equal(t, []byte("a\nb\nc"), normalizeLineEndings([]byte("a\r\nb\rc")))
}
