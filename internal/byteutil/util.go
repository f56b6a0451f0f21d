package byteutil

import "encoding/binary"

// EncodeInt64 renders an int64 as a big-endian bolt key.
func EncodeInt64(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}
