// Package form implements application/x-www-form-urlencoded bodies codec.
package form

import (
	"bytes"

	"github.com/indigo-web/lite/internal/urlencoded"
	"github.com/indigo-web/lite/kv"
)

// Decode parses the urlencoded data into ordered pairs. Segments are separated by &,
// key and value are separated by the first =. Segments without = (including empty ones)
// are dropped. If a key occurs more than once, the last value wins, though the key keeps
// the position of its first occurrence. Data is interpreted as UTF-8 and isn't transcoded.
func Decode(data []byte) *kv.Storage {
	into := kv.NewPrealloc(bytes.Count(data, []byte("&")) + 1)
	DecodeInto(into, data)

	return into
}

// DecodeInto does the same as Decode, but stores the pairs into the passed storage.
func DecodeInto(into *kv.Storage, data []byte) {
	var buff []byte

	for len(data) > 0 {
		segment := data
		if amp := bytes.IndexByte(data, '&'); amp != -1 {
			segment, data = data[:amp], data[amp+1:]
		} else {
			data = nil
		}

		eq := bytes.IndexByte(segment, '=')
		if eq == -1 {
			continue
		}

		var key, value []byte
		key, buff = urlencoded.Decode(segment[:eq], buff[:0])
		k := string(key)
		value, buff = urlencoded.Decode(segment[eq+1:], buff[:0])
		into.Set(k, string(value))
	}
}

// Encode serializes the pairs into the urlencoded form, joined by &.
func Encode(pairs *kv.Storage) []byte {
	var buff []byte

	for key, value := range pairs.Pairs() {
		if len(buff) > 0 {
			buff = append(buff, '&')
		}

		buff = urlencoded.Encode([]byte(key), buff)
		buff = append(buff, '=')
		buff = urlencoded.Encode([]byte(value), buff)
	}

	return buff
}
