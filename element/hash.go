package element

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"math/big"
)

// hashSeed is shared by every Hash call so equal elements hash equal for
// the lifetime of the process. Hashes are not stable across processes.
var hashSeed = maphash.MakeSeed()

func (Null) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(NullType))
	return h.Sum64()
}

// Hash folds the payload family and the canonical payload bytes, so a
// value reachable through several constructors, say FromInt(7) and
// FromBigInt(big.NewInt(7)), hashes the same.
func (s *Scalar) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(ScalarType))
	h.WriteByte(byte(scalarFamily(s.val)))
	var b [8]byte
	switch v := s.val.(type) {
	case bool:
		if v {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case string:
		h.WriteString(v)
	case int64:
		binary.LittleEndian.PutUint64(b[:], uint64(v))
		h.Write(b[:])
	case uint64:
		binary.LittleEndian.PutUint64(b[:], v)
		h.Write(b[:])
	case float64:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		h.Write(b[:])
	case *big.Int:
		if v.Sign() < 0 {
			h.WriteByte(0)
		} else {
			h.WriteByte(1)
		}
		h.Write(v.Bytes())
	case *big.Float:
		h.WriteString(v.Text('e', 64))
	}
	return h.Sum64()
}

func (a *Array) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(ArrayType))
	var b [8]byte
	for _, el := range a.elems {
		binary.LittleEndian.PutUint64(b[:], el.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}

// Hash is order-insensitive, matching Equal: the entry hashes combine
// commutatively.
func (o *Object) Hash() uint64 {
	var sum uint64
	var b [8]byte
	for i, k := range o.keys {
		var eh maphash.Hash
		eh.SetSeed(hashSeed)
		eh.WriteString(k)
		binary.LittleEndian.PutUint64(b[:], o.vals[i].Hash())
		eh.Write(b[:])
		sum += eh.Sum64()
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(ObjectType))
	binary.LittleEndian.PutUint64(b[:], uint64(len(o.keys)))
	h.Write(b[:])
	binary.LittleEndian.PutUint64(b[:], sum)
	h.Write(b[:])
	return h.Sum64()
}
