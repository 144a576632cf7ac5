package gradle

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"quote":    quote,
	"quoteAll": quoteAll,
}

// quote renders s as a single-quoted groovy string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// quoteAll renders paths as a comma separated list of groovy string literals.
func quoteAll(paths []string) string {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = quote(p)
	}
	return strings.Join(quoted, ", ")
}

var settingsTemplate = template.Must(template.New("settings").Funcs(funcs).Parse(
	`{{- range .Modules -}}
include ':{{ .Name }}'
project(':{{ .Name }}').projectDir = file({{ quote .Dir }})
{{ end -}}
`))

var buildTemplate = template.Must(template.New("build").Funcs(funcs).Parse(
	`plugins {
    id 'com.github.johnrengelman.shadow' version '5.2.0'
    id 'java'
}

buildDir = {{ quote .BuildDir }}

dependencies {
{{- if .LibraryDirs }}
    compile fileTree({{ quoteAll .LibraryDirs }}) { include '*.jar' }
{{- end }}
}

sourceSets {
    main {
        java {
            srcDirs = [{{ quoteAll .SourceDirs }}]
        }
        resources {
            srcDirs = []
        }
{{- if .Classpath }}
        compileClasspath += files({{ quoteAll .Classpath }})
{{- end }}
    }
}
`))
