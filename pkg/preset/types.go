package preset

// Preset is a named terrain configuration. Unset fields are inherited from
// the parent preset, then from the config defaults.
type Preset struct {
	Parent           string       `json:"parent"`
	Bounds           *Bounds      `json:"bounds"`
	Heights          *HeightRange `json:"heights"`
	UnitSize         *float64     `json:"unitSize"`
	FrequencyDivisor *float64     `json:"frequencyDivisor"`
	Randomize        *bool        `json:"randomize"`
	Border           *bool        `json:"border"`
	NoiseOctaves     *int         `json:"noiseOctaves"`
}

// Bounds is the horizontal rectangle covered by the terrain.
type Bounds struct {
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
}

// HeightRange bounds the generated elevations.
type HeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
