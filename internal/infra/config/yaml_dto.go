package config

// YAMLConfig mirrors rectcalc.yaml. Pointer fields distinguish "unset" from an explicit zero.
type YAMLConfig struct {
	Rectcalc struct {
		Dimensions YAMLDimensions `yaml:"dimensions"`
		Output     YAMLOutput     `yaml:"output"`
	} `yaml:"rectcalc"`
}

type YAMLDimensions struct {
	Length *float64 `yaml:"length"`
	Width  *float64 `yaml:"width"`
}

type YAMLOutput struct {
	Format string `yaml:"format"`
}
