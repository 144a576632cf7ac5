package driver

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolve expands compile entries into the ordered build list. Each glob
// match holding a manifest is a module; any other directory is a container
// whose modules are listed in its order.txt, or are its subdirectories.
// Every invalid entry is collected into one *domain.ConfigError.
func (d *Driver) Resolve(entries []domain.CompileEntry) ([]domain.Module, error) {
	var (
		modules []domain.Module
		issues  []domain.ConfigIssue
		seen    = make(map[string]string)
	)

	for _, entry := range entries {
		dirs, entryIssues := expand(entry.Source)
		issues = append(issues, entryIssues...)

		for _, dir := range dirs {
			name := filepath.Base(dir)
			if first, ok := seen[name]; ok {
				err := zerr.With(domain.ErrDuplicateModuleName, "module", name)
				issues = append(issues, domain.ConfigIssue{
					Path:      dir,
					Err:       zerr.With(err, "first_occurrence", first),
					Duplicate: true,
				})
				continue
			}
			seen[name] = dir

			manifest, err := d.manifests.Read(dir)
			if err != nil {
				issues = append(issues, domain.ConfigIssue{Path: dir, Err: err})
				continue
			}
			modules = append(modules, domain.Module{Name: name, Dir: dir, Manifest: manifest})
		}
	}

	if len(issues) > 0 {
		return nil, &domain.ConfigError{Issues: issues}
	}
	return modules, nil
}

func expand(source string) ([]string, []domain.ConfigIssue) {
	matches, err := doublestar.FilepathGlob(source)
	if err != nil {
		return nil, []domain.ConfigIssue{{Path: source, Err: zerr.Wrap(err, "invalid compile source pattern")}}
	}
	slices.Sort(matches)
	if len(matches) == 0 {
		return nil, []domain.ConfigIssue{{Path: source, Err: domain.ErrModuleNotFound}}
	}

	var (
		dirs   []string
		issues []domain.ConfigIssue
	)
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.IsDir() {
			issues = append(issues, domain.ConfigIssue{Path: match, Err: domain.ErrModuleNotFound})
			continue
		}

		if isModule(match) {
			dirs = append(dirs, match)
			continue
		}

		children, err := containerModules(match)
		if err != nil {
			issues = append(issues, domain.ConfigIssue{Path: match, Err: err})
			continue
		}
		for _, child := range children {
			if _, err := os.Stat(child); err != nil {
				issues = append(issues, domain.ConfigIssue{Path: child, Err: domain.ErrModuleNotFound})
				continue
			}
			dirs = append(dirs, child)
		}
	}
	return dirs, issues
}

func isModule(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, domain.ManifestFileName))
	return err == nil
}

// containerModules lists the module directories of a container in build order.
func containerModules(dir string) ([]string, error) {
	order, err := os.ReadFile(filepath.Join(dir, domain.OrderFileName)) //nolint:gosec // Path is derived from the configuration
	if err == nil {
		var children []string
		scanner := bufio.NewScanner(bytes.NewReader(order))
		for scanner.Scan() {
			name := strings.TrimSpace(scanner.Text())
			if name == "" {
				continue
			}
			children = append(children, filepath.Join(dir, name))
		}
		return children, scanner.Err()
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.Wrap(err, "failed to read build order")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list module container")
	}
	var children []string
	for _, entry := range entries {
		if entry.IsDir() {
			children = append(children, filepath.Join(dir, entry.Name()))
		}
	}
	slices.Sort(children)
	return children, nil
}
