package codec

// ATSCParams are ATSC tuning parameters: A <frequency> <modulation>.
type ATSCParams struct {
	Frequency  uint32
	Modulation Modulation
}

func decodeATSC(r *tokenReader) *ATSCParams {
	return &ATSCParams{
		Frequency:  r.uint32("frequency"),
		Modulation: readEnum(r, "modulation", atscModulations),
	}
}

func (p *ATSCParams) encode(w *tokenWriter) {
	w.uint32(p.Frequency)
	w.token(string(p.Modulation))
}
