package input

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var emptyObject = []byte("{}")

// Body is a JSON object whose keys keep the position of their first
// insertion. Setting an existing key replaces its value in place.
type Body struct {
	raw []byte
}

func (b *Body) document() []byte {
	if len(b.raw) == 0 {
		return emptyObject
	}
	return b.raw
}

func (b *Body) setString(name, value string) error {
	raw, err := sjson.SetBytes(b.document(), escapeKey(name), value)
	if err != nil {
		return errors.Wrapf(err, "setting body field '%s'", name)
	}
	b.raw = raw
	return nil
}

// setRaw stores value verbatim. The caller guarantees it is valid JSON.
func (b *Body) setRaw(name string, value []byte) error {
	raw, err := sjson.SetRawBytes(b.document(), escapeKey(name), value)
	if err != nil {
		return errors.Wrapf(err, "setting body field '%s'", name)
	}
	b.raw = raw
	return nil
}

func (b Body) clone() Body {
	if len(b.raw) == 0 {
		return Body{}
	}
	raw := make([]byte, len(b.raw))
	copy(raw, b.raw)
	return Body{raw: raw}
}

// JSON returns the object as compact JSON. An empty body is "{}".
func (b Body) JSON() []byte {
	doc := b.document()
	out := make([]byte, len(doc))
	copy(out, doc)
	return out
}

func (b Body) IsEmpty() bool {
	return b.Len() == 0
}

func (b Body) Len() int {
	n := 0
	b.ForEach(func(string, gjson.Result) bool {
		n++
		return true
	})
	return n
}

func (b Body) Get(name string) gjson.Result {
	return gjson.GetBytes(b.document(), escapeKey(name))
}

// ForEach visits the fields in insertion order until fn returns false.
func (b Body) ForEach(fn func(name string, value gjson.Result) bool) {
	gjson.ParseBytes(b.document()).ForEach(func(key, value gjson.Result) bool {
		return fn(key.Str, value)
	})
}

// escapeKey turns an object key into a single-component gjson/sjson path.
func escapeKey(name string) string {
	var sb strings.Builder
	for _, c := range name {
		if c < 0x80 && !isAlnum(byte(c)) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
