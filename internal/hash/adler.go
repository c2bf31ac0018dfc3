package hash

const (
	adlerBase = 65521 // largest prime smaller than 65536
	adlerNMax = 5552  // largest n such that 255n(n+1)/2 + (n+1)(base-1) fits in 32 bits
)

// Adler returns the payload hash stored in container headers.
//
// It is Adler-32 arithmetic started from 0 instead of 1, the way liblzo's
// lzo_adler32(0, buf, len) is called by containers in the wild. The empty
// input and any input whose sums are both multiples of 65521 (for example
// all-zero bytes) hash to 0.
func Adler(data []byte) uint32 {
	return AdlerUpdate(0, data)
}

// AdlerUpdate continues an Adler-32 checksum. AdlerUpdate(1, p) equals hash/adler32.Checksum(p).
func AdlerUpdate(adler uint32, data []byte) uint32 {
	s1 := adler & 0xffff
	s2 := adler >> 16

	for len(data) > 0 {
		n := len(data)
		if n > adlerNMax {
			n = adlerNMax
		}
		for _, b := range data[:n] {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= adlerBase
		s2 %= adlerBase
		data = data[n:]
	}

	return s2<<16 | s1
}
