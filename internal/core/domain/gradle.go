package domain

// GradleModule is the structured build descriptor of one module.
type GradleModule struct {
	Name string
	Dir  string
	// SourceDirs are absolute compile roots.
	SourceDirs []string
	// LibraryDirs are absolute directories whose jars are compile dependencies.
	LibraryDirs []string
	// BuildDir is where gradle writes classes and the shaded jar.
	BuildDir string
	// Classpath lists toolchain jars added to the compile classpath.
	Classpath []string
}

// GradleProject is the structured descriptor of the multi-module gradle build.
type GradleProject struct {
	// Root is the directory holding settings.gradle; gradle runs with -p Root.
	Root    string
	Modules []GradleModule
}
