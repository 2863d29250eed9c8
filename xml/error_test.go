package xml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCode_String(t *testing.T) {
	require.Equal(t, "no error", ErrNone.String())
	require.Equal(t, "end-tag mismatch or missing", ErrEndTagMismatch.String())
	require.Equal(t, "unknown error code", ErrorCode(999).String())
}

func TestParseError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := &ParseError{Code: ErrGeneric, Msg: "bad thing", Row: 3, Col: 7, Err: cause}
	require.Contains(t, e.Error(), "bad thing")
	require.Contains(t, e.Error(), "line 3")
	require.Contains(t, e.Error(), "column 7")
	require.Equal(t, cause, errors.Unwrap(e))
}

func TestParseError_ErrorWithoutLocation(t *testing.T) {
	e := &ParseError{Code: ErrGeneric, Msg: "bad thing"}
	require.Equal(t, "xmlkit: bad thing", e.Error())
}
