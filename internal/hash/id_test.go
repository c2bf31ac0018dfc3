package hash

import (
	"hash/adler32"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameKey(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"upper case folds", "TEST", 0x4fdcca5ddb678139},
		{"mixed case folds", "TeSt", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, NameKey(tt.data))
		})
	}

	assert.Equal(t, NameKey("lzo1x_999"), NameKey("LZO1X_999"))
	assert.NotEqual(t, NameKey("Lzo1x_999"), NameKey("Lzo1x_99"))
}

func TestAdler(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"empty", nil, 0},
		{"single byte", []byte("a"), 0x00610061},
		{"abc", []byte("abc"), 0x024a0126},
		{"all zero", make([]byte, 4096), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Adler(tt.data))
		})
	}
}

func TestAdlerUpdate_MatchesStdlibWithSeedOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{0, 1, 100, adlerNMax - 1, adlerNMax, adlerNMax + 1, 3 * adlerNMax, 1 << 20} {
		data := make([]byte, size)
		_, _ = rng.Read(data)
		require.Equal(t, adler32.Checksum(data), AdlerUpdate(1, data), "size %d", size)
	}
}

func TestAdlerUpdate_Chaining(t *testing.T) {
	data := make([]byte, 3*adlerNMax+17)
	for i := range data {
		data[i] = 0xff
	}

	whole := Adler(data)
	split := AdlerUpdate(Adler(data[:1000]), data[1000:])
	assert.Equal(t, whole, split)
}

func TestCRC32(t *testing.T) {
	assert.Equal(t, uint32(0xcbf43926), CRC32([]byte("123456789")))
	assert.Equal(t, uint32(0), CRC32(nil))
}

func BenchmarkAdler(b *testing.B) {
	data := make([]byte, 1<<20)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for b.Loop() {
		_ = Adler(data)
	}
}
