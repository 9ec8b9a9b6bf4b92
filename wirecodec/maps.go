package wirecodec

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/fnasraoui/logicaldecoding/btreemap"
)

const (
	mapKeyNumber   protowire.Number = 1
	mapValueNumber protowire.Number = 2
)

// AppendMap appends one entry field per map entry, in ascending key order.
// Equal maps therefore always produce identical bytes.
func AppendMap[K btreemap.Key, V any](b []byte, num protowire.Number, m btreemap.Map[K, V], kc Codec[K], vc Codec[V]) []byte {
	var entry []byte
	m.Ascend(func(k K, v V) bool {
		entry = appendEntry(entry[:0], k, v, kc, vc)
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
		return true
	})
	return b
}

// ConsumeMapEntry decodes one map entry field into m.
func ConsumeMapEntry[K btreemap.Key, V any](typ protowire.Type, b []byte, m *btreemap.Map[K, V], kc Codec[K], vc Codec[V]) (int, error) {
	k, v, n, err := consumeEntry(typ, b, kc, vc)
	if err != nil {
		return 0, err
	}
	m.Set(k, v)
	return n, nil
}

// AppendGoMap is AppendMap for builtin maps. Entry order follows Go map
// iteration and is not stable between calls.
func AppendGoMap[K comparable, V any](b []byte, num protowire.Number, m map[K]V, kc Codec[K], vc Codec[V]) []byte {
	var entry []byte
	for k, v := range m {
		entry = appendEntry(entry[:0], k, v, kc, vc)
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

// ConsumeGoMapEntry decodes one map entry field into a builtin map,
// allocating it on first use.
func ConsumeGoMapEntry[K comparable, V any](typ protowire.Type, b []byte, m *map[K]V, kc Codec[K], vc Codec[V]) (int, error) {
	k, v, n, err := consumeEntry(typ, b, kc, vc)
	if err != nil {
		return 0, err
	}
	if *m == nil {
		*m = make(map[K]V)
	}
	(*m)[k] = v
	return n, nil
}

func appendEntry[K, V any](b []byte, k K, v V, kc Codec[K], vc Codec[V]) []byte {
	b = kc.AppendField(b, mapKeyNumber, k)
	return vc.AppendField(b, mapValueNumber, v)
}

func consumeEntry[K, V any](typ protowire.Type, b []byte, kc Codec[K], vc Codec[V]) (K, V, int, error) {
	var (
		k K
		v V
	)
	if typ != protowire.BytesType {
		return k, v, 0, ErrWireType
	}
	payload, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return k, v, 0, protowire.ParseError(n)
	}
	err := DecodeFields(payload, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		var (
			m   int
			err error
		)
		switch num {
		case mapKeyNumber:
			k, m, err = kc.ConsumeField(typ, b)
		case mapValueNumber:
			v, m, err = vc.ConsumeField(typ, b)
		default:
			m, err = SkipField(num, typ, b)
		}
		return m, err
	})
	if err != nil {
		return k, v, 0, err
	}
	return k, v, n, nil
}
