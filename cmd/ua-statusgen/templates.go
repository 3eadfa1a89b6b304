package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to the templates.
var funcMap = template.FuncMap{
	"hex32": func(v uint32) string { return fmt.Sprintf("0x%08X", v) },
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

const registryTmpl = `// Code generated by ua-statusgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

// Registry status codes.
const (
{{- range .Codes}}
{{.Name}} StatusCode = {{hex32 .Value}}
{{- end}}
)

// registryEntries returns the registry in source order.
func registryEntries() []Entry {
return []Entry{
{{- range .Codes}}
{Code: {{.Name}}, Name: {{quote .Name}}},
{{- end}}
}
}
`

var templates = template.Must(template.New("registry").Funcs(funcMap).Parse(registryTmpl))

// registryData is the template input.
type registryData struct {
	Package string
	Source  string
	Codes   []RawCode
}

// GenerateRegistry renders the registry as unformatted Go source.
func GenerateRegistry(reg *RawRegistry, pkgName, source string) (string, error) {
	var b strings.Builder
	data := registryData{Package: pkgName, Source: source, Codes: reg.Codes}
	if err := templates.Execute(&b, data); err != nil {
		return "", fmt.Errorf("template registry: %w", err)
	}
	return b.String(), nil
}
