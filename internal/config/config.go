package config

// Config represents the complete pydocstub configuration.
// It can be loaded from .pydocstub.yaml with environment variable overrides.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// PathsConfig defines where modules live and which files to document.
type PathsConfig struct {
	LibraryRoot string   `yaml:"library_root" mapstructure:"library_root"` // root the dotted module paths are relative to
	TestsRoot   string   `yaml:"tests_root" mapstructure:"tests_root"`     // conventional unit-test tree
	Include     []string `yaml:"include" mapstructure:"include"`           // glob patterns for source files
	Ignore      []string `yaml:"ignore" mapstructure:"ignore"`             // glob patterns to skip
}

// OutputConfig defines where and how stubs are written.
type OutputConfig struct {
	Dir   string `yaml:"dir" mapstructure:"dir"`     // destination directory for .rst stubs
	Force bool   `yaml:"force" mapstructure:"force"` // overwrite stubs that already exist
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			LibraryRoot: ".",
			TestsRoot:   "tests",
			Include:     []string{},
			Ignore: []string{
				"__pycache__/**",
				"**/__pycache__/**",
				".venv/**",
				"venv/**",
				".tox/**",
				"build/**",
				"dist/**",
			},
		},
		Output: OutputConfig{
			Dir:   "docs/api",
			Force: false,
		},
	}
}
