package profile

// Profile is the on-disk shape of .skelgen.yaml. Every field is optional.
type Profile struct {
	Template    string `yaml:"template,omitempty"`
	OutputDir   string `yaml:"output_dir,omitempty"`
	Extension   string `yaml:"extension,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Overwrite   *bool  `yaml:"overwrite,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
	MinVersion  string `yaml:"min_version,omitempty"`
}

// Overrides returns the keys the profile sets, in file-schema order.
func (p *Profile) Overrides() []string {
	var keys []string
	add := func(set bool, key string) {
		if set {
			keys = append(keys, key)
		}
	}
	add(p.Template != "", "template")
	add(p.OutputDir != "", "output_dir")
	add(p.Extension != "", "extension")
	add(p.Placeholder != "", "placeholder")
	add(p.Overwrite != nil, "overwrite")
	add(p.LogLevel != "", "log_level")
	add(p.MinVersion != "", "min_version")
	return keys
}
