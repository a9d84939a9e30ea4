package etc

import "github.com/wkalt/easytau/util/schemadef"

/*
Field layout of the EasyTau container format. The container is a
little-endian sequence of length-prefixed strings, counted parameter lists,
and counted curve lists; every variable-length field takes its length from
the integer field immediately preceding it.
*/

////////////////////////////////////////////////////////////////////////////////

// nolint:gochecknoglobals
var (
	containerDef = `
@order little_endian
bytes[32] Ident
int32 Version
bytes[16] GUID
float64 CreationDate
int32 MeasContext
int32 SysParamCount
SysParam[SysParamCount] SysParam
int32 SeriesParamCount
SeriesParam[SeriesParamCount] SeriesParam
int32 CurveCount
DataCurve[CurveCount] Curve
===
MSG: SysParam
int32 SysParIdLgt
bytes[SysParIdLgt] SysParIdent
int32 SysParDispNmLgt
bytes[SysParDispNmLgt] SysParDispNm
int32 SysParUnitLgt
bytes[SysParUnitLgt] SysParUnit
int32 SysParPrefixLgt
bytes[SysParPrefixLgt] SysParPrefix
int32 Precision
int32 ParType
int32 Size
bytes[Size] Data
===
MSG: SeriesParam
int32 SeriesParIdLgt
bytes[SeriesParIdLgt] SeriesParIdent
int32 SeriesParDispNmLgt
bytes[SeriesParDispNmLgt] SeriesParDispNm
int32 SeriesParUnitLgt
bytes[SeriesParUnitLgt] SeriesParUnit
int32 SeriesParPrefixLgt
bytes[SeriesParPrefixLgt] SeriesParPrefix
int32 Precision
float32 Start
float32 Step
float32 End
===
MSG: MeasParam
int32 MeasParIdLgt
bytes[MeasParIdLgt] MeasParIdent
int32 SeriesParDispNmLgt
bytes[SeriesParDispNmLgt] SeriesParDispNm
int32 SeriesParUnitLgt
bytes[SeriesParUnitLgt] SeriesParUnit
int32 SeriesParPrefixLgt
bytes[SeriesParPrefixLgt] SeriesParPrefix
int32 Precision
int32 ParType
int32 Size
bytes[Size] Data
===
MSG: XY
float32 X
int32 Y
===
MSG: DataCurve
int32 CurveType
int32 Anisotropy
float32 Resolution
float32 FirstX
int32 MeasParamCount
MeasParam[MeasParamCount] MeasParam
int32 NumPoints
XY[NumPoints] XY
`

	// ContainerSchema is the root schema an .etc file decodes against.
	ContainerSchema = schemadef.MustParse("ContainerFile", []byte(containerDef))
)
