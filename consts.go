package num64

// Ranges of the native scalar widths the emulated types are built from.
const (
	MaxU8  uint8  = 255
	MaxU16 uint16 = 65535
	MaxU32 uint32 = 4294967295

	MaxI8  int8  = 127
	MinI8  int8  = -MaxI8 - 1
	MaxI16 int16 = 32767
	MinI16 int16 = -MaxI16 - 1
	MaxI32 int32 = 2147483647
	MinI32 int32 = -MaxI32 - 1
)

const (
	maxUint32 = 1<<32 - 1

	signBit  = 0x80000000
	signMask = 0x7FFFFFFF

	wrapUint32Float = float64(1 << 32) // 1 << 32
	wrapUint64Float = float64(1 << 64) // 1 << 64; first float64 a U64 can't hold
	wrapInt64Float  = float64(1 << 63) // 1 << 63; first float64 an I64 can't hold

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU64 = U64{hi: maxUint32, lo: maxUint32}
	MaxI64 = I64{hi: signMask, lo: maxUint32}
	MinI64 = I64{hi: -signMask - 1, lo: 0}

	zeroU64 U64
	zeroI64 I64

	// decimalChunk is the largest power of ten that fits in a uint32; String()
	// peels off nine digits per division.
	decimalChunk = U64{lo: 1000000000}
)
