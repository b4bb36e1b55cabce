package wire

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Compact-size integer encoding used throughout the transaction wire format:
// values below 0xfd are a single byte, then 0xfd + uint16, 0xfe + uint32,
// 0xff + uint64, all little-endian.
const (
	varInt16Prefix = 0xfd
	varInt32Prefix = 0xfe
	varInt64Prefix = 0xff
)

func appendVarInt(dst []byte, n uint64) []byte {
	switch {
	case n < varInt16Prefix:
		return append(dst, byte(n))
	case n <= 0xffff:
		dst = append(dst, varInt16Prefix)
		return binary.LittleEndian.AppendUint16(dst, uint16(n))
	case n <= 0xffffffff:
		dst = append(dst, varInt32Prefix)
		return binary.LittleEndian.AppendUint32(dst, uint32(n))
	default:
		dst = append(dst, varInt64Prefix)
		return binary.LittleEndian.AppendUint64(dst, n)
	}
}

func readVarInt(r *bytes.Reader) (uint64, error) {
	prefix, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	switch prefix {
	case varInt16Prefix:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(buf[:])), nil
	case varInt32Prefix:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32(buf[:])), nil
	case varInt64Prefix:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf[:]), nil
	default:
		return uint64(prefix), nil
	}
}
