package codec

// FecRate is a forward error correction code rate.
type FecRate string

// Code rates shared by every variant that carries one.
const (
	FecNone FecRate = "NONE"
	Fec1_2  FecRate = "1/2"
	Fec2_3  FecRate = "2/3"
	Fec3_4  FecRate = "3/4"
	Fec4_5  FecRate = "4/5"
	Fec5_6  FecRate = "5/6"
	Fec6_7  FecRate = "6/7"
	Fec7_8  FecRate = "7/8"
	Fec8_9  FecRate = "8/9"
	FecAuto FecRate = "AUTO"
)

var fecRates = []FecRate{FecNone, Fec1_2, Fec2_3, Fec3_4, Fec4_5, Fec5_6, Fec6_7, Fec7_8, Fec8_9, FecAuto}

// Modulation is the constellation used by a transponder.
type Modulation string

// Modulations; each variant accepts a subset.
const (
	QPSK           Modulation = "QPSK"
	QAM16          Modulation = "QAM16"
	QAM32          Modulation = "QAM32"
	QAM64          Modulation = "QAM64"
	QAM128         Modulation = "QAM128"
	QAM256         Modulation = "QAM256"
	VSB8           Modulation = "8VSB"
	VSB16          Modulation = "16VSB"
	ModulationAuto Modulation = "AUTO"
)

var (
	cableModulations       = []Modulation{QAM16, QAM32, QAM64, QAM128, QAM256, ModulationAuto}
	terrestrialModulations = []Modulation{QPSK, QAM16, QAM64, ModulationAuto}
	atscModulations        = []Modulation{QAM64, QAM256, VSB8, VSB16, ModulationAuto}
)

// Polarization of a satellite transponder.
type Polarization string

// Polarizations: horizontal, vertical, circular left and right.
const (
	Horizontal    Polarization = "H"
	Vertical      Polarization = "V"
	CircularLeft  Polarization = "L"
	CircularRight Polarization = "R"
)

var polarizations = []Polarization{Horizontal, Vertical, CircularLeft, CircularRight}

// Bandwidth of a terrestrial channel.
type Bandwidth string

// Terrestrial bandwidths.
const (
	Bandwidth6MHz Bandwidth = "6MHz"
	Bandwidth7MHz Bandwidth = "7MHz"
	Bandwidth8MHz Bandwidth = "8MHz"
	BandwidthAuto Bandwidth = "AUTO"
)

var bandwidths = []Bandwidth{Bandwidth6MHz, Bandwidth7MHz, Bandwidth8MHz, BandwidthAuto}

// TransmissionMode is the OFDM carrier count.
type TransmissionMode string

// Transmission modes.
const (
	TransmissionMode2k   TransmissionMode = "2k"
	TransmissionMode8k   TransmissionMode = "8k"
	TransmissionModeAuto TransmissionMode = "AUTO"
)

var transmissionModes = []TransmissionMode{TransmissionMode2k, TransmissionMode8k, TransmissionModeAuto}

// GuardInterval is the OFDM guard interval.
type GuardInterval string

// Guard intervals.
const (
	GuardInterval1_4  GuardInterval = "1/4"
	GuardInterval1_8  GuardInterval = "1/8"
	GuardInterval1_16 GuardInterval = "1/16"
	GuardInterval1_32 GuardInterval = "1/32"
	GuardIntervalAuto GuardInterval = "AUTO"
)

var guardIntervals = []GuardInterval{GuardInterval1_4, GuardInterval1_8, GuardInterval1_16, GuardInterval1_32, GuardIntervalAuto}

// Hierarchy is the terrestrial hierarchical modulation alpha.
type Hierarchy string

// Hierarchy values.
const (
	HierarchyNone Hierarchy = "NONE"
	Hierarchy1    Hierarchy = "1"
	Hierarchy2    Hierarchy = "2"
	Hierarchy4    Hierarchy = "4"
	HierarchyAuto Hierarchy = "AUTO"
)

var hierarchies = []Hierarchy{HierarchyNone, Hierarchy1, Hierarchy2, Hierarchy4, HierarchyAuto}
