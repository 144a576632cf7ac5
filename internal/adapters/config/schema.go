package config

// Modfile represents the structure of the modkit.yaml configuration file.
type Modfile struct {
	Output    string       `yaml:"output"`
	Toolchain string       `yaml:"toolchain"`
	Compile   []CompileDTO `yaml:"compile"`
	Java      JavaDTO      `yaml:"java"`
	Tools     ToolsDTO     `yaml:"tools"`
	Package   PackageDTO   `yaml:"package"`
	Push      PushDTO      `yaml:"push"`
}

// CompileDTO represents one compile entry.
type CompileDTO struct {
	Type   string `yaml:"type"`
	Source string `yaml:"source"`
}

// JavaDTO represents the java pipeline options.
// Pointers distinguish an omitted key from an explicit zero value.
type JavaDTO struct {
	KeepLibraries *bool    `yaml:"keepLibraries"`
	KeepSources   *bool    `yaml:"keepSources"`
	Classpath     []string `yaml:"classpath"`
	MinAPI        int      `yaml:"minApi"`
	BatchSize     int      `yaml:"batchSize"`
}

// ToolsDTO locates external programs.
type ToolsDTO struct {
	Java   string `yaml:"java"`
	Gradle string `yaml:"gradle"`
	D8     string `yaml:"d8"`
	Adb    string `yaml:"adb"`
}

// PackageDTO represents the mod package options.
type PackageDTO struct {
	Output  string   `yaml:"output"`
	Exclude []string `yaml:"exclude"`
}

// PushDTO represents the device push options.
type PushDTO struct {
	Target string `yaml:"target"`
}
