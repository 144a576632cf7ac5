// Package config provides the configuration loader for modkit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPushRoot is the device directory mods are pushed below.
const DefaultPushRoot = "/storage/emulated/0/games/horizon/packs/Inner_Core/innercore/mods"

// skippedCompileTypes are pipelines modkit does not build.
var skippedCompileTypes = map[string]bool{
	"native": true,
	"script": true,
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers modkit.yaml at cwd or any of its parents and resolves it.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var modfile Modfile
	if err := readAndUnmarshalYAML(configPath, &modfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.resolve(filepath.Dir(configPath), &modfile)
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) resolve(root string, modfile *Modfile) (*domain.Config, error) {
	root = filepath.Clean(root)

	layout := domain.NewLayout(root)
	if modfile.Output != "" {
		layout.Output = resolvePath(root, modfile.Output)
	}
	if modfile.Toolchain != "" {
		layout.Toolchain = resolvePath(root, modfile.Toolchain)
	}

	compile, err := l.resolveCompile(root, modfile.Compile)
	if err != nil {
		return nil, err
	}

	cfg := &domain.Config{
		Layout:  layout,
		Compile: compile,
		Java: domain.JavaOptions{
			KeepLibraries: boolOr(modfile.Java.KeepLibraries, true),
			KeepSources:   boolOr(modfile.Java.KeepSources, false),
			Classpath:     resolvePaths(root, modfile.Java.Classpath),
			MinAPI:        intOr(modfile.Java.MinAPI, domain.DefaultMinAPI),
			BatchSize:     intOr(modfile.Java.BatchSize, domain.DefaultBatchSize),
		},
		Tools: domain.Tools{
			Java:   resolveTool(root, modfile.Tools.Java, "java"),
			Gradle: resolveTool(root, modfile.Tools.Gradle, filepath.Join(layout.Toolchain, "bin", "gradlew")),
			D8:     resolveTool(root, modfile.Tools.D8, filepath.Join(layout.Toolchain, "bin", "lib", "d8.jar")),
			Adb:    resolveTool(root, modfile.Tools.Adb, "adb"),
		},
		Package: domain.PackageOptions{
			Output:  resolvePath(root, stringOr(modfile.Package.Output, domain.DefaultPackageName)),
			Exclude: modfile.Package.Exclude,
		},
		Push: domain.PushOptions{
			Target: stringOr(modfile.Push.Target, DefaultPushRoot+"/"+filepath.Base(root)),
		},
	}

	return cfg, nil
}

func (l *Loader) resolveCompile(root string, entries []CompileDTO) ([]domain.CompileEntry, error) {
	resolved := make([]domain.CompileEntry, 0, len(entries))
	for i, entry := range entries {
		switch {
		case entry.Type == domain.CompileTypeJava:
		case skippedCompileTypes[entry.Type]:
			l.Logger.Warn(fmt.Sprintf("compile type %s is not supported, skipping %s", entry.Type, entry.Source))
			continue
		default:
			err := zerr.With(domain.ErrInvalidCompileType, "type", entry.Type)
			return nil, zerr.With(err, "entry", i)
		}

		if entry.Source == "" {
			return nil, zerr.With(zerr.New("compile entry has no source"), "entry", i)
		}

		resolved = append(resolved, domain.CompileEntry{
			Type:   entry.Type,
			Source: resolvePath(root, entry.Source),
		})
	}
	return resolved, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func resolvePaths(root string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]string, len(paths))
	for i, p := range paths {
		resolved[i] = resolvePath(root, p)
	}
	return resolved
}

// resolveTool keeps bare program names for PATH lookup and anchors anything
// that looks like a path at the project root.
func resolveTool(root, configured, fallback string) string {
	if configured == "" {
		return fallback
	}
	if !strings.ContainsRune(configured, '/') && !strings.ContainsRune(configured, filepath.Separator) {
		return configured
	}
	return resolvePath(root, configured)
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is located by findConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
