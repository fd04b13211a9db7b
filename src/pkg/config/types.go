package config

// Config is the optional tool configuration file.
type Config struct {
	Limits Limits `yaml:"limits"`
}

// Limits holds the per-stage truncation bounds. All line limits must be
// positive. PlanChars switches the plan section to a character budget when
// set; zero means line-count bounding.
type Limits struct {
	FormatLines   int `yaml:"formatLines"`
	InitLines     int `yaml:"initLines"`
	ValidateLines int `yaml:"validateLines"`
	PlanLines     int `yaml:"planLines"`
	PlanChars     int `yaml:"planChars"`
	CostLines     int `yaml:"costLines"`
}
