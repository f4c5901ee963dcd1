package codec

// TerrestrialParams are DVB-T tuning parameters.
type TerrestrialParams struct {
	Frequency        uint32
	Bandwidth        Bandwidth
	FecRateHigh      FecRate
	FecRateLow       FecRate
	Modulation       Modulation
	TransmissionMode TransmissionMode
	GuardInterval    GuardInterval
	Hierarchy        Hierarchy
}

func decodeTerrestrial(r *tokenReader) *TerrestrialParams {
	return &TerrestrialParams{
		Frequency:        r.uint32("frequency"),
		Bandwidth:        readEnum(r, "bandwidth", bandwidths),
		FecRateHigh:      readEnum(r, "fec rate high", fecRates),
		FecRateLow:       readEnum(r, "fec rate low", fecRates),
		Modulation:       readEnum(r, "modulation", terrestrialModulations),
		TransmissionMode: readEnum(r, "transmission mode", transmissionModes),
		GuardInterval:    readEnum(r, "guard interval", guardIntervals),
		Hierarchy:        readEnum(r, "hierarchy", hierarchies),
	}
}

func (p *TerrestrialParams) encode(w *tokenWriter) {
	w.uint32(p.Frequency)
	w.token(string(p.Bandwidth))
	w.token(string(p.FecRateHigh))
	w.token(string(p.FecRateLow))
	w.token(string(p.Modulation))
	w.token(string(p.TransmissionMode))
	w.token(string(p.GuardInterval))
	w.token(string(p.Hierarchy))
}
