package catalog

// Catalog names shipped in the embedded data.
const (
	ParameterTypes    = "parameter-types"
	Gravity           = "gravity"
	RotationSlow      = "rotation-slow"
	RotationFast      = "rotation-fast"
	StellarBinary     = "stellar-binary"
	StellarType       = "stellar-type"
	AxialTilt         = "axial-tilt"
	AtmosphereDensity = "atmosphere-density"
	WaterCoverage     = "water-coverage"
	MoonCount         = "moon-count"
	MagneticField     = "magnetic-field"

	PlanetTypes         = "planet-types"
	DayNightCycles      = "day-night-cycles"
	StellarEnvironments = "stellar-environments"
	Seasonality         = "seasonality"
	Atmospheres         = "atmospheres"
	Hydrospheres        = "hydrospheres"
	MoonSystems         = "moon-systems"
	Magnetospheres      = "magnetospheres"

	SensoryModalities  = "sensory-modalities"
	ConsciousnessTypes = "consciousness-types"
	Lifespans          = "lifespans"
	Lifecycles         = "lifecycles"
	Diets              = "diets"
	MemoryInheritance  = "memory-inheritance"
	SkyVisibility      = "sky-visibility"
	PredationPressure  = "predation-pressure"
	Catastrophes       = "catastrophes"
)
