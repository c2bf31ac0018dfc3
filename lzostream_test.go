package lzostream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
)

func TestCompressDecompress(t *testing.T) {
	data := bytes.Repeat([]byte("lzostream "), 100)

	packed, err := Compress(data)
	require.NoError(t, err)
	require.Less(t, len(packed), len(data))

	out, err := Decompress(packed)
	require.NoError(t, err)
	require.Equal(t, data, out)

	report, err := Inspect(packed)
	require.NoError(t, err)
	require.True(t, report.Valid())
	require.Equal(t, format.Default.String(), report.FormatName)
}

func TestCompressWith(t *testing.T) {
	data := bytes.Repeat([]byte("named method "), 100)

	for _, name := range Formats() {
		t.Run(name, func(t *testing.T) {
			packed, err := CompressWith(name, data)
			require.NoError(t, err)

			out, err := Decompress(packed)
			require.NoError(t, err)
			require.Equal(t, data, out)
		})
	}
}

func TestCompressWith_UnknownName(t *testing.T) {
	_, err := CompressWith("Lzo9x", []byte("data"))
	require.ErrorIs(t, err, errs.ErrUnknownFormat)
	require.Equal(t, errs.InvalidArgument, errs.KindOf(err))
}

func TestFormatID(t *testing.T) {
	id, err := FormatID("LZO1X_999")
	require.NoError(t, err)
	require.Equal(t, format.Lzo1x_999, id)

	id, err = FormatID("none")
	require.NoError(t, err)
	require.Equal(t, format.None, id)

	_, err = FormatID("")
	require.ErrorIs(t, err, errs.ErrUnknownFormat)
}

func TestFormats(t *testing.T) {
	names := Formats()
	require.Contains(t, names, "Lzo1x_999")
	require.Contains(t, names, "Zstd")
	require.NotContains(t, names, "None")
	require.NotContains(t, names, "Lzo1b")
}

func TestTitle(t *testing.T) {
	require.Equal(t, "LZOStream v1.0", Title)
}
