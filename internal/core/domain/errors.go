package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no modkit.yaml exists in the directory tree.
	ErrConfigNotFound = zerr.New("could not find modkit.yaml")

	// ErrInvalidCompileType is returned when a compile entry names an unknown pipeline.
	ErrInvalidCompileType = zerr.New("invalid compile type")

	// ErrManifestReadFailed is returned when a module manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read module manifest")

	// ErrManifestParseFailed is returned when a module manifest is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse module manifest")

	// ErrManifestMissingSourceDirs is returned when a manifest has no source-dirs key.
	ErrManifestMissingSourceDirs = zerr.New("manifest is missing source-dirs")

	// ErrModuleNotFound is returned when a compile entry points to a nonexistent path.
	ErrModuleNotFound = zerr.New("module path does not exist")

	// ErrDuplicateModuleName is returned when two modules resolve to the same name.
	ErrDuplicateModuleName = zerr.New("duplicate module name")

	// ErrNoModules is returned when the build list is empty.
	ErrNoModules = zerr.New("no java modules to build")

	// ErrStoreReadFailed is returned when the fingerprint cache cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read fingerprint cache")

	// ErrStoreUnmarshalFailed is returned when the fingerprint cache cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal fingerprint cache")

	// ErrStoreMarshalFailed is returned when the fingerprint cache cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal fingerprint cache")

	// ErrStoreWriteFailed is returned when the fingerprint cache cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write fingerprint cache")

	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create fingerprint cache directory")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrDirectoryClearFailed is returned when a directory cannot be emptied.
	ErrDirectoryClearFailed = zerr.New("failed to clear directory")

	// ErrMirrorFailed is returned when a directory cannot be mirrored into the output.
	ErrMirrorFailed = zerr.New("failed to mirror directory")

	// ErrArchiveExtractFailed is returned when an archive cannot be extracted.
	ErrArchiveExtractFailed = zerr.New("failed to extract archive")

	// ErrArchiveCreateFailed is returned when an archive cannot be written.
	ErrArchiveCreateFailed = zerr.New("failed to create archive")

	// ErrIllegalArchivePath is returned when an archive entry escapes the destination.
	ErrIllegalArchivePath = zerr.New("illegal file path in archive")

	// ErrGradleScriptWriteFailed is returned when a gradle descriptor cannot be written.
	ErrGradleScriptWriteFailed = zerr.New("failed to write gradle script")

	// ErrCompileFailed is returned when gradle exits with a nonzero code.
	ErrCompileFailed = zerr.New("java compilation failed")

	// ErrDexFailed is returned when a d8 invocation exits with a nonzero code.
	ErrDexFailed = zerr.New("dexing failed")

	// ErrBuildFailed wraps the failure of any task.
	ErrBuildFailed = zerr.New("build failed")

	// ErrLockTimeout is returned when a task lock could not be acquired in time.
	ErrLockTimeout = zerr.New("timed out waiting for task lock")

	// ErrDeadLock is returned when a task lock is requested twice by the same process.
	ErrDeadLock = zerr.New("dead lock detected")

	// ErrUnknownPhase is returned when a task name does not match any phase.
	ErrUnknownPhase = zerr.New("no such task")

	// ErrUnknownOutputMode is returned for an unsupported --output-mode value.
	ErrUnknownOutputMode = zerr.New("unknown output mode")

	// ErrNoPhasesSpecified is returned when the run command is invoked without tasks.
	ErrNoPhasesSpecified = zerr.New("no tasks to execute")

	// ErrPushTargetMissing is returned when pushing without a configured device target.
	ErrPushTargetMissing = zerr.New("push target is not configured")

	// ErrDeviceCommandFailed is returned when an adb invocation fails.
	ErrDeviceCommandFailed = zerr.New("device command failed")

	// ErrPackageFailed is returned when the mod package cannot be assembled.
	ErrPackageFailed = zerr.New("failed to build mod package")
)
