package domain

// CompileTypeJava selects the java pipeline for a compile entry.
const CompileTypeJava = "java"

// CompileEntry points at a module, or a directory of modules, to compile.
type CompileEntry struct {
	Type string
	// Source is an absolute path or glob.
	Source string
}

// JavaOptions tunes the java pipeline.
type JavaOptions struct {
	KeepLibraries bool
	KeepSources   bool
	// Classpath lists extra jars or directories of jars compiled against.
	Classpath []string
	MinAPI    int
	BatchSize int
}

// Tools locates the external programs the pipeline invokes.
type Tools struct {
	Java   string
	Gradle string
	D8     string
	Adb    string
}

// PackageOptions controls the mod package.
type PackageOptions struct {
	Output  string
	Exclude []string
}

// PushOptions controls device deployment.
type PushOptions struct {
	Target string
}

// Config is a fully resolved project configuration.
type Config struct {
	Layout  Layout
	Compile []CompileEntry
	Java    JavaOptions
	Tools   Tools
	Package PackageOptions
	Push    PushOptions
}

// JavaEntries returns the compile entries handled by the java pipeline.
func (c *Config) JavaEntries() []CompileEntry {
	var entries []CompileEntry
	for _, entry := range c.Compile {
		if entry.Type == CompileTypeJava {
			entries = append(entries, entry)
		}
	}
	return entries
}
