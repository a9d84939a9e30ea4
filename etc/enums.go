package etc

import "fmt"

/*
Presentation enums for the small integer tags carried by the container:
measurement context, curve type, and anisotropy channel. Unrecognized values
print as Unknown(n) rather than failing - whether to tolerate them is the
caller's policy.
*/

////////////////////////////////////////////////////////////////////////////////

// MeasurementContext identifies the kind of measurement a container holds.
type MeasurementContext int32

const (
	ContextUnknown MeasurementContext = iota
	ContextDecay
	ContextTRES
	ContextAnisoDecay
	ContextDecayTempSeries
	ContextDecayTimeSeries
	ContextFluorSpec
	ContextExSpec
	ContextFluorAnisoSpec
	ContextExAnisoSpec
	ContextFluorSpecTimeSeries
	ContextExSpecTimeSeries
	ContextFluorSpecTempSeries
	ContextExSpecTempSeries
)

func (c MeasurementContext) String() string {
	switch c {
	case ContextUnknown:
		return "Unknown"
	case ContextDecay:
		return "Decay"
	case ContextTRES:
		return "TRES"
	case ContextAnisoDecay:
		return "AnisoDecay"
	case ContextDecayTempSeries:
		return "DecayTempSeries"
	case ContextDecayTimeSeries:
		return "DecayTimeSeries"
	case ContextFluorSpec:
		return "FluorSpec"
	case ContextExSpec:
		return "ExSpec"
	case ContextFluorAnisoSpec:
		return "FluorAnisoSpec"
	case ContextExAnisoSpec:
		return "ExAnisoSpec"
	case ContextFluorSpecTimeSeries:
		return "FluorSpecTimeSeries"
	case ContextExSpecTimeSeries:
		return "ExSpecTimeSeries"
	case ContextFluorSpecTempSeries:
		return "FluorSpecTempSeries"
	case ContextExSpecTempSeries:
		return "ExSpecTempSeries"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(c))
	}
}

// CurveType identifies what a data curve represents.
type CurveType int32

const (
	CurveIRF CurveType = iota
	CurveDecay
	CurveSpectrum
	CurveArbitrary
)

func (c CurveType) String() string {
	switch c {
	case CurveIRF:
		return "IRF"
	case CurveDecay:
		return "Decay"
	case CurveSpectrum:
		return "Spectrum"
	case CurveArbitrary:
		return "Arbitrary"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(c))
	}
}

// Anisotropy identifies the polarization channel of a curve.
type Anisotropy int32

const (
	AnisotropyVH Anisotropy = iota
	AnisotropyVV
	AnisotropyVM
	AnisotropyHH
	AnisotropyHV
	AnisotropyHM
	AnisotropyAA
)

func (a Anisotropy) String() string {
	switch a {
	case AnisotropyVH:
		return "VH"
	case AnisotropyVV:
		return "VV"
	case AnisotropyVM:
		return "VM"
	case AnisotropyHH:
		return "HH"
	case AnisotropyHV:
		return "HV"
	case AnisotropyHM:
		return "HM"
	case AnisotropyAA:
		return "AA"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(a))
	}
}
