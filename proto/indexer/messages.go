package indexerpb

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

var ErrMalformed = errors.New("malformed message")

// Message is implemented by the request and reply types of indexer.proto.
// Field numbers follow the .proto definitions.
type Message interface {
	AppendWire(b []byte) []byte
	UnmarshalWire(b []byte) error
}

type TextRequest struct {
	Text string
}

type IDRequest struct {
	ID string
}

type Document struct {
	ID   string
	Text string
}

type Keyword struct {
	Stem      string
	Terms     []string
	Frequency int64
}

type KeywordList struct {
	Keywords []Keyword
}

type TermList struct {
	Terms []string
}

type Stats struct {
	Documents     int64
	TermsTotal    int64
	TermsUnique   int64
	ReferenceSize int64
}

func (m *TextRequest) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.Text)
}

func (m *TextRequest) UnmarshalWire(b []byte) error {
	*m = TextRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Text)
		}
		return 0, nil
	})
}

func (m *IDRequest) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.ID)
}

func (m *IDRequest) UnmarshalWire(b []byte) error {
	*m = IDRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.ID)
		}
		return 0, nil
	})
}

func (m *Document) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	return appendString(b, 2, m.Text)
}

func (m *Document) UnmarshalWire(b []byte) error {
	*m = Document{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.ID)
		case 2:
			return consumeString(typ, b, &m.Text)
		}
		return 0, nil
	})
}

func (m *Keyword) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Stem)
	b = appendStrings(b, 2, m.Terms)
	return appendInt64(b, 3, m.Frequency)
}

func (m *Keyword) UnmarshalWire(b []byte) error {
	*m = Keyword{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Stem)
		case 2:
			return consumeRepeatedString(typ, b, &m.Terms)
		case 3:
			return consumeInt64(typ, b, &m.Frequency)
		}
		return 0, nil
	})
}

func (m *KeywordList) AppendWire(b []byte) []byte {
	for i := range m.Keywords {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Keywords[i].AppendWire(nil))
	}
	return b
}

func (m *KeywordList) UnmarshalWire(b []byte) error {
	*m = KeywordList{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		if typ != protowire.BytesType {
			return 0, fmt.Errorf("wire type %d is not a keyword: %w", typ, ErrMalformed)
		}
		raw, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		var kw Keyword
		if err := kw.UnmarshalWire(raw); err != nil {
			return 0, fmt.Errorf("keyword %d: %w", len(m.Keywords), err)
		}
		m.Keywords = append(m.Keywords, kw)
		return n, nil
	})
}

func (m *TermList) AppendWire(b []byte) []byte {
	return appendStrings(b, 1, m.Terms)
}

func (m *TermList) UnmarshalWire(b []byte) error {
	*m = TermList{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeRepeatedString(typ, b, &m.Terms)
		}
		return 0, nil
	})
}

func (m *Stats) AppendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.Documents)
	b = appendInt64(b, 2, m.TermsTotal)
	b = appendInt64(b, 3, m.TermsUnique)
	return appendInt64(b, 4, m.ReferenceSize)
}

func (m *Stats) UnmarshalWire(b []byte) error {
	*m = Stats{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt64(typ, b, &m.Documents)
		case 2:
			return consumeInt64(typ, b, &m.TermsTotal)
		case 3:
			return consumeInt64(typ, b, &m.TermsUnique)
		case 4:
			return consumeInt64(typ, b, &m.ReferenceSize)
		}
		return 0, nil
	})
}

// zero scalars are omitted, as proto3 does
func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendStrings(b []byte, num protowire.Number, values []string) []byte {
	for _, s := range values {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	return b
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

// fieldFunc consumes the value of one field and reports its length.
// A zero length skips the field as unknown.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func unmarshalFields(b []byte, field fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%v: %w", protowire.ParseError(n), ErrMalformed)
		}
		b = b[n:]
		n, err := field(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("field %d: %v: %w", num, protowire.ParseError(n), ErrMalformed)
		}
		b = b[n:]
	}
	return nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	if typ != protowire.BytesType {
		return 0, fmt.Errorf("wire type %d is not a string: %w", typ, ErrMalformed)
	}
	s, n := protowire.ConsumeString(b)
	if n < 0 {
		return n, nil
	}
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("invalid UTF-8: %w", ErrMalformed)
	}
	*dst = s
	return n, nil
}

func consumeRepeatedString(typ protowire.Type, b []byte, dst *[]string) (int, error) {
	var s string
	n, err := consumeString(typ, b, &s)
	if err != nil || n < 0 {
		return n, err
	}
	*dst = append(*dst, s)
	return n, nil
}

func consumeInt64(typ protowire.Type, b []byte, dst *int64) (int, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("wire type %d is not a number: %w", typ, ErrMalformed)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return n, nil
	}
	*dst = int64(v)
	return n, nil
}
