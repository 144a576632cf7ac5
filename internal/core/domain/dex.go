package domain

// DexMode selects the d8 invocation shape.
type DexMode uint8

const (
	// DexLibrary dexes a merged library archive into intermediate form.
	DexLibrary DexMode = iota
	// DexClasses dexes class files into one intermediate dex file per class.
	DexClasses
	// DexMerge merges an archive of intermediate dex files into final output.
	DexMerge
)

// DexRequest is one d8 invocation.
type DexRequest struct {
	Mode   DexMode
	Inputs []string
	Output string
	// Libraries are passed as --lib.
	Libraries []string
	// Classpath entries are passed as --classpath.
	Classpath []string
	MinAPI    int
	// Release selects --release instead of --debug for merges.
	Release bool
}

// Toolchain is the set of jars shared by every module of a build.
type Toolchain struct {
	Jars []string
}
