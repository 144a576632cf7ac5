package shell

// MergeEnv exposes mergeEnv for testing.
var MergeEnv = mergeEnv

// ResolveExecutable exposes resolveExecutable for testing.
var ResolveExecutable = resolveExecutable
