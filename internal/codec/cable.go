package codec

// CableParams are DVB-C tuning parameters: C <frequency> <symbol rate> <fec> <modulation>.
type CableParams struct {
	Frequency  uint32
	SymbolRate uint32
	FecRate    FecRate
	Modulation Modulation
}

func decodeCable(r *tokenReader) *CableParams {
	return &CableParams{
		Frequency:  r.uint32("frequency"),
		SymbolRate: r.uint32("symbol rate"),
		FecRate:    readEnum(r, "fec rate", fecRates),
		Modulation: readEnum(r, "modulation", cableModulations),
	}
}

func (p *CableParams) encode(w *tokenWriter) {
	w.uint32(p.Frequency)
	w.uint32(p.SymbolRate)
	w.token(string(p.FecRate))
	w.token(string(p.Modulation))
}
