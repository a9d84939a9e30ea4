package etc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/google/uuid"
	"github.com/wkalt/easytau/util/decode"
	"github.com/wkalt/easytau/util/log"
)

/*
Reader for PicoQuant EasyTau container files (.etc). The container is decoded
against ContainerSchema and then projected into the presentation types in
this file: a File holding system and series parameters plus data curves.
*/

////////////////////////////////////////////////////////////////////////////////

// Magic is the identity string at the head of every container.
const Magic = "EasyTau Container"

// ErrBadMagic indicates the buffer is not an EasyTau container.
var ErrBadMagic = errors.New("bad container magic")

// File is a fully-decoded EasyTau container.
type File struct {
	Identity         string
	Version          int32
	GUID             uuid.UUID
	CreationDate     time.Time
	Context          MeasurementContext
	SystemParameters []SystemParameter
	SeriesParameters []SeriesParameter
	Curves           []Curve
}

// SystemParameter is an instrument-level setting recorded with the
// measurement.
type SystemParameter struct {
	Identity    string
	DisplayName string
	Unit        string
	Prefix      string
	Precision   int32
	Data        ParameterValue
}

// SeriesParameter describes the swept axis of a measurement series.
type SeriesParameter struct {
	Identity    string
	DisplayName string
	Unit        string
	Prefix      string
	Precision   int32
	Start       float32
	Step        float32
	End         float32
}

// MeasurementParameter is a per-curve acquisition setting.
type MeasurementParameter struct {
	Identity    string
	DisplayName string
	Unit        string
	Prefix      string
	Precision   int32
	Data        ParameterValue
}

// Curve is one decoded data curve with its acquisition parameters and X/Y
// series.
type Curve struct {
	Type       CurveType
	Anisotropy Anisotropy
	Resolution float32
	FirstX     float32
	Parameters []MeasurementParameter
	X          []float32
	Y          []int32
}

// Decode decodes a fully-buffered container file.
func Decode(ctx context.Context, data []byte) (*File, error) {
	record, err := decode.Decode(ContainerSchema, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode container: %w", err)
	}
	ident, err := getBytes(record, "Ident")
	if err != nil {
		return nil, err
	}
	identity := strings.Trim(safeString(ident), "\x00")
	if identity != Magic {
		return nil, fmt.Errorf("identity %q: %w", identity, ErrBadMagic)
	}
	version, err := getI32(record, "Version")
	if err != nil {
		return nil, err
	}
	rawGUID, err := getBytes(record, "GUID")
	if err != nil {
		return nil, err
	}
	guid, err := guidFromMixedEndian(rawGUID)
	if err != nil {
		return nil, err
	}
	days, err := getF64(record, "CreationDate")
	if err != nil {
		return nil, err
	}
	measContext, err := getI32(record, "MeasContext")
	if err != nil {
		return nil, err
	}
	sysParams, err := systemParameters(record)
	if err != nil {
		return nil, err
	}
	seriesParams, err := seriesParameters(record)
	if err != nil {
		return nil, err
	}
	curves, err := curves(record)
	if err != nil {
		return nil, err
	}
	log.Debugw(ctx, "decoded container",
		"version", version,
		"guid", guid,
		"system parameters", len(sysParams),
		"series parameters", len(seriesParams),
		"curves", len(curves),
	)
	return &File{
		Identity:         identity,
		Version:          version,
		GUID:             guid,
		CreationDate:     dateFromDays(days),
		Context:          MeasurementContext(measContext),
		SystemParameters: sysParams,
		SeriesParameters: seriesParams,
		Curves:           curves,
	}, nil
}

// Read reads and decodes a container file from disk.
func Read(ctx context.Context, path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(ctx, data)
}

func systemParameters(record *ordereddict.Dict) ([]SystemParameter, error) {
	list, err := getList(record, "SysParam")
	if err != nil {
		return nil, err
	}
	params := make([]SystemParameter, 0, len(list))
	for i, item := range list {
		sub, ok := item.(*ordereddict.Dict)
		if !ok {
			return nil, fmt.Errorf("system parameter %d is not a record", i)
		}
		param, err := systemParameter(sub)
		if err != nil {
			return nil, fmt.Errorf("failed to convert system parameter %d: %w", i, err)
		}
		params = append(params, param)
	}
	return params, nil
}

func systemParameter(record *ordereddict.Dict) (SystemParameter, error) {
	fields, err := textFields(record, "SysParIdent", "SysParDispNm", "SysParUnit", "SysParPrefix")
	if err != nil {
		return SystemParameter{}, err
	}
	precision, err := getI32(record, "Precision")
	if err != nil {
		return SystemParameter{}, err
	}
	data, err := taggedData(record)
	if err != nil {
		return SystemParameter{}, err
	}
	return SystemParameter{
		Identity:    fields[0],
		DisplayName: fields[1],
		Unit:        fields[2],
		Prefix:      fields[3],
		Precision:   precision,
		Data:        data,
	}, nil
}

func seriesParameters(record *ordereddict.Dict) ([]SeriesParameter, error) {
	list, err := getList(record, "SeriesParam")
	if err != nil {
		return nil, err
	}
	params := make([]SeriesParameter, 0, len(list))
	for i, item := range list {
		sub, ok := item.(*ordereddict.Dict)
		if !ok {
			return nil, fmt.Errorf("series parameter %d is not a record", i)
		}
		param, err := seriesParameter(sub)
		if err != nil {
			return nil, fmt.Errorf("failed to convert series parameter %d: %w", i, err)
		}
		params = append(params, param)
	}
	return params, nil
}

func seriesParameter(record *ordereddict.Dict) (SeriesParameter, error) {
	fields, err := textFields(
		record, "SeriesParIdent", "SeriesParDispNm", "SeriesParUnit", "SeriesParPrefix")
	if err != nil {
		return SeriesParameter{}, err
	}
	precision, err := getI32(record, "Precision")
	if err != nil {
		return SeriesParameter{}, err
	}
	start, err := getF32(record, "Start")
	if err != nil {
		return SeriesParameter{}, err
	}
	step, err := getF32(record, "Step")
	if err != nil {
		return SeriesParameter{}, err
	}
	end, err := getF32(record, "End")
	if err != nil {
		return SeriesParameter{}, err
	}
	return SeriesParameter{
		Identity:    fields[0],
		DisplayName: fields[1],
		Unit:        fields[2],
		Prefix:      fields[3],
		Precision:   precision,
		Start:       start,
		Step:        step,
		End:         end,
	}, nil
}

func measurementParameter(record *ordereddict.Dict) (MeasurementParameter, error) {
	// The display name, unit, and prefix fields of measurement parameters
	// carry SeriesPar names on disk; an inherited quirk of the format.
	fields, err := textFields(
		record, "MeasParIdent", "SeriesParDispNm", "SeriesParUnit", "SeriesParPrefix")
	if err != nil {
		return MeasurementParameter{}, err
	}
	precision, err := getI32(record, "Precision")
	if err != nil {
		return MeasurementParameter{}, err
	}
	data, err := taggedData(record)
	if err != nil {
		return MeasurementParameter{}, err
	}
	return MeasurementParameter{
		Identity:    fields[0],
		DisplayName: fields[1],
		Unit:        fields[2],
		Prefix:      fields[3],
		Precision:   precision,
		Data:        data,
	}, nil
}

func curves(record *ordereddict.Dict) ([]Curve, error) {
	list, err := getList(record, "Curve")
	if err != nil {
		return nil, err
	}
	out := make([]Curve, 0, len(list))
	for i, item := range list {
		sub, ok := item.(*ordereddict.Dict)
		if !ok {
			return nil, fmt.Errorf("curve %d is not a record", i)
		}
		curve, err := convertCurve(sub)
		if err != nil {
			return nil, fmt.Errorf("failed to convert curve %d: %w", i, err)
		}
		out = append(out, curve)
	}
	return out, nil
}

func convertCurve(record *ordereddict.Dict) (Curve, error) {
	curveType, err := getI32(record, "CurveType")
	if err != nil {
		return Curve{}, err
	}
	anisotropy, err := getI32(record, "Anisotropy")
	if err != nil {
		return Curve{}, err
	}
	resolution, err := getF32(record, "Resolution")
	if err != nil {
		return Curve{}, err
	}
	firstX, err := getF32(record, "FirstX")
	if err != nil {
		return Curve{}, err
	}
	measList, err := getList(record, "MeasParam")
	if err != nil {
		return Curve{}, err
	}
	params := make([]MeasurementParameter, 0, len(measList))
	for i, item := range measList {
		sub, ok := item.(*ordereddict.Dict)
		if !ok {
			return Curve{}, fmt.Errorf("measurement parameter %d is not a record", i)
		}
		param, err := measurementParameter(sub)
		if err != nil {
			return Curve{}, fmt.Errorf("failed to convert measurement parameter %d: %w", i, err)
		}
		params = append(params, param)
	}
	points, err := getList(record, "XY")
	if err != nil {
		return Curve{}, err
	}
	xs := make([]float32, 0, len(points))
	ys := make([]int32, 0, len(points))
	for i, item := range points {
		sub, ok := item.(*ordereddict.Dict)
		if !ok {
			return Curve{}, fmt.Errorf("point %d is not a record", i)
		}
		x, err := getF32(sub, "X")
		if err != nil {
			return Curve{}, err
		}
		y, err := getI32(sub, "Y")
		if err != nil {
			return Curve{}, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return Curve{
		Type:       CurveType(curveType),
		Anisotropy: Anisotropy(anisotropy),
		Resolution: resolution,
		FirstX:     firstX,
		Parameters: params,
		X:          xs,
		Y:          ys,
	}, nil
}

// textFields reads and ASCII-decodes a run of byte-string fields.
func textFields(record *ordereddict.Dict, keys ...string) ([]string, error) {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		b, err := getBytes(record, key)
		if err != nil {
			return nil, err
		}
		out = append(out, safeString(b))
	}
	return out, nil
}

// taggedData reads a parameter's ParType tag and interprets its payload.
func taggedData(record *ordereddict.Dict) (ParameterValue, error) {
	parType, err := getI32(record, "ParType")
	if err != nil {
		return ParameterValue{}, err
	}
	data, err := getBytes(record, "Data")
	if err != nil {
		return ParameterValue{}, err
	}
	return parameterData(parType, data)
}
