package max31855

// FaultOf classifies the fault bits of a raw frame.
//
// The generic fault flag (D16) gates reporting: the specific cause bits are
// ignored unless it is set. On real hardware a cause bit only ever appears
// together with the generic flag, but the decoder does not rely on that.
func FaultOf(raw uint32) Fault {
	if raw&faultGeneric == 0 {
		return 0
	}

	var f Fault
	if raw&faultOpen != 0 {
		f |= FaultOpen
	}
	if raw&faultGround != 0 {
		f |= FaultGround
	}
	if raw&faultVCC != 0 {
		f |= FaultVCC
	}
	if f == 0 {
		f = FaultUnknown
	}
	return f
}

// Decode interprets a raw 32-bit frame as temperatures and fault state.
// It is a pure function of the frame: decoding the same value twice yields
// identical readings.
func Decode(raw uint32) Reading {
	r := Reading{
		Connected: true,
		Raw:       raw,
		Fault:     FaultOf(raw),
	}

	// A fault invalidates the thermocouple channel only.
	if r.Fault.None() {
		tc := int32((raw >> tcShift) & tcMask)
		if raw&tcSignBit != 0 {
			tc -= tcModulus
		}
		r.Thermocouple = Celsius(float64(tc) * tcResolution)
		r.ThermocoupleOK = true
	}

	in := int32((raw >> internalShift) & internalMask)
	if raw&internalSignBit != 0 {
		in -= internalModulus
	}
	r.Internal = Celsius(float64(in) * internalResolution)
	r.InternalOK = true

	return r
}
