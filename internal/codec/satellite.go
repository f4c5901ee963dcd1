package codec

// SatelliteParams are DVB-S tuning parameters:
// S <frequency kHz> <polarization> <symbol rate> <fec>.
type SatelliteParams struct {
	Frequency    uint32
	Polarization Polarization
	SymbolRate   uint32
	FecRate      FecRate
}

func decodeSatellite(r *tokenReader) *SatelliteParams {
	return &SatelliteParams{
		Frequency:    r.uint32("frequency"),
		Polarization: readEnum(r, "polarization", polarizations),
		SymbolRate:   r.uint32("symbol rate"),
		FecRate:      readEnum(r, "fec rate", fecRates),
	}
}

func (p *SatelliteParams) encode(w *tokenWriter) {
	w.uint32(p.Frequency)
	w.token(string(p.Polarization))
	w.uint32(p.SymbolRate)
	w.token(string(p.FecRate))
}
