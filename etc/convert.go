package etc

import (
	"fmt"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/google/uuid"
	"github.com/wkalt/easytau/util/decode"
	"github.com/wkalt/easytau/util/schema"
)

/*
Conversions from decoded container records to presentation types. These are
pure and stateless: the decoder hands over raw integers, floats, and byte
strings, and this file turns them into GUIDs, timestamps, display strings,
and tagged parameter values.
*/

////////////////////////////////////////////////////////////////////////////////

// The container's creation date is a fractional day count from the Delphi
// TDateTime epoch.
var delphiEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC) // nolint:gochecknoglobals

// ParameterKind tags the interpretation of a parameter payload.
type ParameterKind int

const (
	ParameterInt ParameterKind = iota
	ParameterFloat
	ParameterString
)

// ParameterValue is a tagged parameter payload: an integer, a float, or a
// string, selected by the record's ParType field.
type ParameterValue struct {
	Kind   ParameterKind
	Int    int64
	Float  float64
	String string
}

func (v ParameterValue) Display() string {
	switch v.Kind {
	case ParameterInt:
		return fmt.Sprintf("%d", v.Int)
	case ParameterFloat:
		return fmt.Sprintf("%g", v.Float)
	default:
		return v.String
	}
}

// parameterData interprets a parameter payload per its ParType tag: 0 is an
// integer of 4 or 8 bytes, 1 is a float64, 2 is a string.
func parameterData(parType int32, data []byte) (ParameterValue, error) {
	switch parType {
	case 0:
		cur := decode.NewCursor(data)
		switch len(data) {
		case 4:
			d, err := decode.NewDescriptor(schema.I32, schema.LittleEndian, 1)
			if err != nil {
				return ParameterValue{}, err
			}
			v, err := cur.Read(d)
			if err != nil {
				return ParameterValue{}, fmt.Errorf("failed to read int parameter: %w", err)
			}
			return ParameterValue{Kind: ParameterInt, Int: int64(v.(int32))}, nil
		case 8:
			d, err := decode.NewDescriptor(schema.I64, schema.LittleEndian, 1)
			if err != nil {
				return ParameterValue{}, err
			}
			v, err := cur.Read(d)
			if err != nil {
				return ParameterValue{}, fmt.Errorf("failed to read int parameter: %w", err)
			}
			return ParameterValue{Kind: ParameterInt, Int: v.(int64)}, nil
		default:
			return ParameterValue{}, fmt.Errorf("invalid size %d for integer parameter", len(data))
		}
	case 1:
		if len(data) != 8 {
			return ParameterValue{}, fmt.Errorf("invalid size %d for float parameter", len(data))
		}
		d, err := decode.NewDescriptor(schema.F64, schema.LittleEndian, 1)
		if err != nil {
			return ParameterValue{}, err
		}
		v, err := decode.NewCursor(data).Read(d)
		if err != nil {
			return ParameterValue{}, fmt.Errorf("failed to read float parameter: %w", err)
		}
		return ParameterValue{Kind: ParameterFloat, Float: v.(float64)}, nil
	case 2:
		return ParameterValue{Kind: ParameterString, String: safeString(data)}, nil
	default:
		return ParameterValue{}, fmt.Errorf("unknown parameter type %d", parType)
	}
}

// safeString decodes a byte string as ASCII, substituting "?" when the bytes
// are not ASCII. A nil byte string decodes to "".
func safeString(b []byte) string {
	if b == nil {
		return ""
	}
	for _, c := range b {
		if c > 0x7f {
			return "?"
		}
	}
	return string(b)
}

// guidFromMixedEndian reassembles a Microsoft GUID from its on-disk byte
// layout. The first three groups are stored little-endian and must be
// reversed; the remaining eight bytes are stored as written.
// https://en.wikipedia.org/wiki/Universally_unique_identifier#Encoding
func guidFromMixedEndian(b []byte) (uuid.UUID, error) {
	if len(b) != 16 {
		return uuid.Nil, fmt.Errorf("GUID requires 16 bytes, got %d", len(b))
	}
	swapped := make([]byte, 16)
	swapped[0], swapped[1], swapped[2], swapped[3] = b[3], b[2], b[1], b[0]
	swapped[4], swapped[5] = b[5], b[4]
	swapped[6], swapped[7] = b[7], b[6]
	copy(swapped[8:], b[8:])
	guid, err := uuid.FromBytes(swapped)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to construct GUID: %w", err)
	}
	return guid, nil
}

// dateFromDays converts a fractional day count from the Delphi epoch to a
// UTC timestamp.
func dateFromDays(days float64) time.Time {
	return delphiEpoch.Add(time.Duration(days * 24 * float64(time.Hour)))
}

func getI32(record *ordereddict.Dict, key string) (int32, error) {
	v, ok := record.Get(key)
	if !ok {
		return 0, fmt.Errorf("record has no field %s", key)
	}
	n, ok := v.(int32)
	if !ok {
		return 0, fmt.Errorf("field %s is not an int32", key)
	}
	return n, nil
}

func getF32(record *ordereddict.Dict, key string) (float32, error) {
	v, ok := record.Get(key)
	if !ok {
		return 0, fmt.Errorf("record has no field %s", key)
	}
	f, ok := v.(float32)
	if !ok {
		return 0, fmt.Errorf("field %s is not a float32", key)
	}
	return f, nil
}

func getF64(record *ordereddict.Dict, key string) (float64, error) {
	v, ok := record.Get(key)
	if !ok {
		return 0, fmt.Errorf("record has no field %s", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("field %s is not a float64", key)
	}
	return f, nil
}

// getBytes returns a byte-string field. Zero-length fields decode to nil,
// which is a valid byte string here.
func getBytes(record *ordereddict.Dict, key string) ([]byte, error) {
	v, ok := record.Get(key)
	if !ok {
		return nil, fmt.Errorf("record has no field %s", key)
	}
	if v == nil {
		return nil, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("field %s is not a byte string", key)
	}
	return b, nil
}

func getList(record *ordereddict.Dict, key string) ([]any, error) {
	v, ok := record.Get(key)
	if !ok {
		return nil, fmt.Errorf("record has no field %s", key)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %s is not a list", key)
	}
	return list, nil
}
