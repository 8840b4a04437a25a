package varint

// EncodeZigZag32 maps a signed 32-bit value to an unsigned one so that
// small-magnitude negative values stay small after encoding: 0, -1, 1, -2,
// 2 ... map to 0, 1, 2, 3, 4 ...
func EncodeZigZag32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// DecodeZigZag32 reverses EncodeZigZag32.
func DecodeZigZag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// EncodeZigZag64 is the 64-bit analogue of EncodeZigZag32, the mapping
// dataio uses to variable-length encode signed integers.
func EncodeZigZag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// DecodeZigZag64 reverses EncodeZigZag64.
func DecodeZigZag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
