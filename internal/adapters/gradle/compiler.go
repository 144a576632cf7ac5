// Package gradle compiles java modules with a generated multi-project gradle build.
package gradle

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	toolName = "gradle"
	task     = "shadowJar"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler on top of a gradle wrapper.
type Compiler struct {
	executor ports.Executor
	fs       ports.FileSystem
	gradle   string
	javaHome string
	stdout   io.Writer
	stderr   io.Writer
}

// NewCompiler creates a Compiler invoking the gradle executable from tools.
func NewCompiler(executor ports.Executor, fs ports.FileSystem, tools domain.Tools, stdout, stderr io.Writer) *Compiler {
	return &Compiler{
		executor: executor,
		fs:       fs,
		gradle:   tools.Gradle,
		javaHome: JavaHome(tools.Java),
		stdout:   stdout,
		stderr:   stderr,
	}
}

// WriteProject writes settings.gradle into the project root and a build.gradle
// into every module directory. Unchanged scripts are left untouched.
func (c *Compiler) WriteProject(project *domain.GradleProject) error {
	settings, err := RenderSettings(project)
	if err != nil {
		return err
	}
	if _, err := c.fs.WriteFileIfChanged(filepath.Join(project.Root, domain.SettingsGradleFileName), settings); err != nil {
		return zerr.Wrap(err, domain.ErrGradleScriptWriteFailed.Error())
	}

	for i := range project.Modules {
		module := &project.Modules[i]
		script, err := RenderModule(module)
		if err != nil {
			return err
		}
		path := filepath.Join(module.Dir, domain.BuildGradleFileName)
		if _, err := c.fs.WriteFileIfChanged(path, script); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrGradleScriptWriteFailed.Error()), "module", module.Name)
		}
	}
	return nil
}

// Compile runs the shadowJar task over the whole project.
func (c *Compiler) Compile(ctx context.Context, project *domain.GradleProject) error {
	cmd := &domain.Command{
		Tool: toolName,
		Name: c.gradle,
		Args: []string{"-p", project.Root, task},
		Dir:  project.Root,
	}
	if c.javaHome != "" {
		cmd.Env = map[string]string{"JAVA_HOME": c.javaHome}
	}
	if err := c.executor.Execute(ctx, cmd, c.stdout, c.stderr); err != nil {
		return errors.Join(domain.ErrCompileFailed, err)
	}
	return nil
}

// JavaHome returns the JDK home of an absolute java executable path such as
// /opt/jdk/bin/java. A bare command name yields "" and gradle keeps the
// inherited JAVA_HOME.
func JavaHome(java string) string {
	if !filepath.IsAbs(java) {
		return ""
	}
	bin := filepath.Dir(java)
	if filepath.Base(bin) != "bin" {
		return ""
	}
	return filepath.Dir(bin)
}

// CleanupProject removes the per-module build.gradle scripts.
func (c *Compiler) CleanupProject(project *domain.GradleProject) error {
	var errs []error
	for _, module := range project.Modules {
		if err := c.fs.RemoveAll(filepath.Join(module.Dir, domain.BuildGradleFileName)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RenderSettings renders the settings.gradle of project.
func RenderSettings(project *domain.GradleProject) ([]byte, error) {
	var buf bytes.Buffer
	if err := settingsTemplate.Execute(&buf, project); err != nil {
		return nil, zerr.Wrap(err, domain.ErrGradleScriptWriteFailed.Error())
	}
	return buf.Bytes(), nil
}

// RenderModule renders the build.gradle of module.
func RenderModule(module *domain.GradleModule) ([]byte, error) {
	var buf bytes.Buffer
	if err := buildTemplate.Execute(&buf, module); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGradleScriptWriteFailed.Error()), "module", module.Name)
	}
	return buf.Bytes(), nil
}
