package driver

import (
	"os"
	"slices"

	"go.trai.ch/modkit/internal/core/domain"
)

const jarExt = ".jar"

// classpath returns the toolchain jars shared by every dex invocation and the
// compile classpath, which adds the configured extra entries. Directories are
// expanded to the jars below them.
func (d *Driver) classpath(extra []string) (domain.Toolchain, []string, error) {
	jars, err := d.fs.ListFiles(d.layout.ClasspathDir(), jarExt)
	if err != nil {
		return domain.Toolchain{}, nil, err
	}

	compile := slices.Clone(jars)
	for _, entry := range extra {
		info, err := os.Stat(entry)
		if err != nil {
			d.logger.Warn("classpath entry does not exist: " + entry)
			continue
		}
		if !info.IsDir() {
			compile = append(compile, entry)
			continue
		}
		found, err := d.fs.ListFiles(entry, jarExt)
		if err != nil {
			return domain.Toolchain{}, nil, err
		}
		compile = append(compile, found...)
	}

	return domain.Toolchain{Jars: jars}, compile, nil
}
