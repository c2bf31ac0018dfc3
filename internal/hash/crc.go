package hash

import "hash/crc32"

// CRC32 returns the IEEE CRC-32 of data, identical to liblzo's lzo_crc32(0, buf, len).
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
