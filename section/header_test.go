package section

import (
	"encoding/binary"
	"testing"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
	"github.com/arloliu/lzostream/internal/hash"
	"github.com/stretchr/testify/require"
)

func TestHeaderID(t *testing.T) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], HeaderID)

	require.Equal(t, []byte{'L', 'Z', 'O', 28}, b[:])
}

func TestNewHeader(t *testing.T) {
	header := NewHeader(format.Lzo1x_999, 100, 1000, 0x1111, 0x2222)

	require.Equal(t, HeaderID, header.HeaderID)
	require.Equal(t, format.Lzo1x_999, header.FormatID)
	require.Equal(t, uint32(100), header.SourceSize)
	require.Equal(t, uint32(1000), header.DestinationSize)
	require.Equal(t, uint32(0x1111), header.SourceHash)
	require.Equal(t, uint32(0x2222), header.DestinationHash)
	require.True(t, header.Valid())
	require.True(t, header.MagicValid())
	require.False(t, header.Stored())
}

func TestHeader_Bytes(t *testing.T) {
	header := NewHeader(format.None, 16, 16, 0xdeadbeef, 0xdeadbeef)

	data := header.Bytes()

	require.Len(t, data, HeaderSize)
	require.Equal(t, HeaderID, binary.LittleEndian.Uint32(data[HeaderIDOffset:]))
	require.Equal(t, uint32(format.None), binary.LittleEndian.Uint32(data[FormatIDOffset:]))
	require.Equal(t, uint32(16), binary.LittleEndian.Uint32(data[SourceSizeOffset:]))
	require.Equal(t, uint32(16), binary.LittleEndian.Uint32(data[DestinationSizeOffset:]))
	require.Equal(t, uint32(0xdeadbeef), binary.LittleEndian.Uint32(data[SourceHashOffset:]))
	require.Equal(t, uint32(0xdeadbeef), binary.LittleEndian.Uint32(data[DestinationHashOffset:]))
	require.Equal(t, hash.CRC32(data[:HeaderHashOffset]), binary.LittleEndian.Uint32(data[HeaderHashOffset:]))

	require.Equal(t, data, header.AppendTo(nil))

	put := make([]byte, HeaderSize+4)
	header.Put(put)
	require.Equal(t, data, put[:HeaderSize])
}

func TestHeader_Parse(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		original := NewHeader(format.Lzo1x_1, 10, 20, 30, 40)
		data := append(original.Bytes(), 1, 2, 3)

		parsed := &Header{}
		err := parsed.Parse(data)

		require.NoError(t, err)
		require.Equal(t, original, *parsed)
		require.True(t, parsed.Valid())
	})

	t.Run("Invalid size", func(t *testing.T) {
		header := &Header{}
		err := header.Parse([]byte{1, 2, 3})

		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Unknown format is not a parse error", func(t *testing.T) {
		original := NewHeader(format.ID(0x01020304), 1, 1, 0, 0)

		parsed, err := ParseHeader(original.Bytes(), true)

		require.NoError(t, err)
		require.Equal(t, "Unknown", parsed.FormatID.String())
	})
}

func TestParseHeader(t *testing.T) {
	original := NewHeader(format.Lzo1x_999, 5, 50, 1, 2)
	data := original.Bytes()

	t.Run("Verified", func(t *testing.T) {
		parsed, err := ParseHeader(data, true)
		require.NoError(t, err)
		require.Equal(t, original, parsed)
	})

	t.Run("Too short", func(t *testing.T) {
		_, err := ParseHeader(data[:HeaderSize-1], false)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Bad checksum only fails when verified", func(t *testing.T) {
		corrupted := append([]byte(nil), data...)
		corrupted[SourceSizeOffset] ^= 0x01

		_, err := ParseHeader(corrupted, true)
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
		require.Equal(t, errs.IllegalData, errs.KindOf(err))

		parsed, err := ParseHeader(corrupted, false)
		require.NoError(t, err)
		require.False(t, parsed.Valid())
	})
}

func TestHeader_SingleBitFlipInvalidates(t *testing.T) {
	original := NewHeader(format.Lzo1x_999, 1234, 56789, 0xcafebabe, 0x0badf00d)
	data := original.Bytes()

	for bit := 0; bit < HeaderHashOffset*8; bit++ {
		corrupted := append([]byte(nil), data...)
		corrupted[bit/8] ^= 1 << (bit % 8)

		parsed, err := ParseHeader(corrupted, false)
		require.NoError(t, err)
		require.False(t, parsed.Valid(), "bit %d flip not detected", bit)
	}
}

func TestHeader_FlipInChecksumInvalidates(t *testing.T) {
	original := NewHeader(format.Lzo1x_999, 1, 2, 3, 4)
	data := original.Bytes()
	data[HeaderHashOffset+3] ^= 0x80

	parsed, err := ParseHeader(data, false)
	require.NoError(t, err)
	require.False(t, parsed.Valid())
}

func TestHeader_Payload(t *testing.T) {
	payload := []byte("payload bytes")
	header := NewHeader(format.None, uint32(len(payload)), uint32(len(payload)), 0, 0)
	data := append(header.Bytes(), payload...)

	got, err := header.Payload(data)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	_, err = header.Payload(data[:len(data)-1])
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)
}

func TestSize(t *testing.T) {
	require.Equal(t, 28, Size(0))
	require.Equal(t, 28+16, Size(16))
	require.Equal(t, HeaderSize, PayloadOffset)
}
