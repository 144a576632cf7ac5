package domain

import "go.trai.ch/zerr"

// Phase is one task the runner can execute.
type Phase uint8

const (
	// PhaseCompileJavaDebug builds every java module with debug dex output.
	PhaseCompileJavaDebug Phase = iota + 1
	// PhaseCompileJavaRelease builds every java module with release dex output.
	PhaseCompileJavaRelease
	// PhaseClearGradleCache removes the java build cache.
	PhaseClearGradleCache
	// PhaseClearOutput empties the output root.
	PhaseClearOutput
	// PhaseExcludeDirectories deletes configured paths from the output root.
	PhaseExcludeDirectories
	// PhaseBuildPackage zips the output root into the mod package.
	PhaseBuildPackage
	// PhasePushEverything copies the output root to the device.
	PhasePushEverything
	// PhaseLaunchHorizon starts the game on the device.
	PhaseLaunchHorizon
	// PhaseStopHorizon stops the game on the device.
	PhaseStopHorizon
)

// Lock groups shared between phases.
const (
	LockJava     = "java"
	LockNative   = "native"
	LockCleanup  = "cleanup"
	LockPush     = "push"
	LockAssemble = "assemble"
)

var phaseNames = map[Phase]string{
	PhaseCompileJavaDebug:   "compileJavaDebug",
	PhaseCompileJavaRelease: "compileJavaRelease",
	PhaseClearGradleCache:   "clearGradleCache",
	PhaseClearOutput:        "clearOutput",
	PhaseExcludeDirectories: "excludeDirectories",
	PhaseBuildPackage:       "buildPackage",
	PhasePushEverything:     "pushEverything",
	PhaseLaunchHorizon:      "launchHorizon",
	PhaseStopHorizon:        "stopHorizon",
}

// Phases returns every phase in declaration order.
func Phases() []Phase {
	return []Phase{
		PhaseCompileJavaDebug,
		PhaseCompileJavaRelease,
		PhaseClearGradleCache,
		PhaseClearOutput,
		PhaseExcludeDirectories,
		PhaseBuildPackage,
		PhasePushEverything,
		PhaseLaunchHorizon,
		PhaseStopHorizon,
	}
}

// String returns the task name of the phase.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePhase resolves a task name.
func ParsePhase(name string) (Phase, error) {
	for _, p := range Phases() {
		if phaseNames[p] == name {
			return p, nil
		}
	}
	return 0, zerr.With(ErrUnknownPhase, "task", name)
}

// Locks returns the lock names a phase holds while running, its own name first.
func (p Phase) Locks() []string {
	var groups []string
	switch p {
	case PhaseCompileJavaDebug, PhaseCompileJavaRelease, PhaseClearGradleCache:
		groups = []string{LockJava, LockCleanup, LockPush}
	case PhaseClearOutput, PhaseExcludeDirectories, PhaseBuildPackage:
		groups = []string{LockPush, LockAssemble, LockNative, LockJava}
	case PhasePushEverything:
		groups = []string{LockPush}
	case PhaseLaunchHorizon, PhaseStopHorizon:
	}
	return append([]string{p.String()}, groups...)
}
