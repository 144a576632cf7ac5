package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "modkit.yaml"

	// ManifestFileName is the name of the per-module manifest file.
	ManifestFileName = "manifest"

	// OrderFileName lists module names in build order.
	OrderFileName = "order.txt"

	// FingerprintCacheFileName is the name of the persisted fingerprint document.
	FingerprintCacheFileName = "gradle_classes_cache.json"

	// SettingsGradleFileName is the name of the generated gradle settings file.
	SettingsGradleFileName = "settings.gradle"

	// BuildGradleFileName is the name of the generated per-module gradle script.
	BuildGradleFileName = "build.gradle"

	// ClassesDirName holds gradle build dirs, one per module.
	ClassesDirName = "classes"

	// DexDirName holds intermediate dex outputs, one per module.
	DexDirName = "d8"

	// LibCacheDirName holds extracted library archives, one per module.
	LibCacheDirName = "d8_lib_cache"

	// LibDexDirName is the subdirectory of a module's intermediate dex dir that
	// receives the dexed library archive.
	LibDexDirName = "lib-dex"

	// JavaDirName is the name of the java subdirectory of the output root.
	JavaDirName = "java"

	// DefaultOutputDir is the default output root relative to the project root.
	DefaultOutputDir = "output"

	// DefaultToolchainDir is the default toolchain root relative to the project root.
	DefaultToolchainDir = "toolchain"

	// DefaultPackageName is the default mod package file name.
	DefaultPackageName = "mod.icmod"

	// DefaultMinAPI is the android API level passed to every d8 invocation.
	DefaultMinAPI = 17

	// DefaultBatchSize bounds the number of class files per d8 invocation.
	DefaultBatchSize = 128

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Layout resolves every path the toolchain reads or writes.
// All fields are absolute.
type Layout struct {
	Root      string
	Output    string
	Toolchain string
}

// NewLayout returns a Layout whose output and toolchain roots default to
// their conventional locations under root.
func NewLayout(root string) Layout {
	return Layout{
		Root:      root,
		Output:    filepath.Join(root, DefaultOutputDir),
		Toolchain: filepath.Join(root, DefaultToolchainDir),
	}
}

// CacheDir is the gradle project root and the home of every java build cache.
func (l Layout) CacheDir() string {
	return filepath.Join(l.Toolchain, "build", "gradle")
}

// LockDir holds task lock files.
func (l Layout) LockDir() string {
	return filepath.Join(l.Toolchain, "build", "lock")
}

// ClasspathDir holds the toolchain jars every module compiles and dexes against.
func (l Layout) ClasspathDir() string {
	return filepath.Join(l.Toolchain, "classpath")
}

// PackageStagingPath is the temporary archive written before the package is renamed into place.
func (l Layout) PackageStagingPath() string {
	return filepath.Join(l.Toolchain, "build", "mod.zip")
}

// FingerprintCachePath is the location of the persisted fingerprint document.
func (l Layout) FingerprintCachePath() string {
	return filepath.Join(l.CacheDir(), FingerprintCacheFileName)
}

// SettingsGradlePath is the location of the generated settings script.
func (l Layout) SettingsGradlePath() string {
	return filepath.Join(l.CacheDir(), SettingsGradleFileName)
}

// BuildDir is the gradle build dir of a module.
func (l Layout) BuildDir(module string) string {
	return filepath.Join(l.CacheDir(), ClassesDirName, module)
}

// ClassesDir is where gradle leaves a module's compiled class files.
func (l Layout) ClassesDir(module string) string {
	return filepath.Join(l.BuildDir(module), "classes")
}

// ModuleJar is the shaded jar gradle produces for a module.
func (l Layout) ModuleJar(module string) string {
	return filepath.Join(l.BuildDir(module), "libs", module+"-all.jar")
}

// IntermediateDexDir holds per-class dex files accumulated across builds.
func (l Layout) IntermediateDexDir(module string) string {
	return filepath.Join(l.CacheDir(), DexDirName, module)
}

// LibraryDexDir holds the dexed library archive of a module.
func (l Layout) LibraryDexDir(module string) string {
	return filepath.Join(l.IntermediateDexDir(module), LibDexDirName)
}

// IntermediateArchive is the zip of every intermediate dex file of a module.
func (l Layout) IntermediateArchive(module string) string {
	return filepath.Join(l.CacheDir(), DexDirName, module+".zip")
}

// LibraryExtractDir is the scratch directory libraries are merged into.
func (l Layout) LibraryExtractDir(module string) string {
	return filepath.Join(l.CacheDir(), LibCacheDirName, module)
}

// LibraryArchive is the merged library archive of a module.
func (l Layout) LibraryArchive(module string) string {
	return filepath.Join(l.CacheDir(), LibCacheDirName+"-"+module+".zip")
}

// JavaOutputDir is the root of every module's final output.
func (l Layout) JavaOutputDir() string {
	return filepath.Join(l.Output, JavaDirName)
}

// ModuleOutputDir is the final output directory of a module.
func (l Layout) ModuleOutputDir(module string) string {
	return filepath.Join(l.JavaOutputDir(), module)
}

// OrderFilePath is the build order file written next to the module outputs.
func (l Layout) OrderFilePath() string {
	return filepath.Join(l.JavaOutputDir(), OrderFileName)
}
