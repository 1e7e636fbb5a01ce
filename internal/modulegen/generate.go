package modulegen

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"golang.org/x/tools/imports"
)

//go:embed service.go.tmpl
var serviceTemplate string

var tmpl = template.Must(template.New("service").Funcs(template.FuncMap{
	"upper":     modulesdk.UpperFirst,
	"quote":     strconv.Quote,
	"modelExpr": modelExpr,
}).Parse(serviceTemplate))

type entityView struct {
	EntityManifest
	Retrieve     string
	List         string
	ListAndCount string
	Delete       string
	SoftDelete   string
	Restore      string
}

type templateData struct {
	*Manifest
	Source string
	Views  []entityView
}

// Generate renders the typed methods file of m. source names the manifest in
// the generated header.
func Generate(m *Manifest, source string) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	data := templateData{Manifest: m, Source: source}
	for _, e := range m.Entities {
		names := modulesdk.MethodNames(e.ModelConfig(), true)
		data.Views = append(data.Views, entityView{
			EntityManifest: e,
			Retrieve:       names[modulesdk.OpRetrieve],
			List:           names[modulesdk.OpList],
			ListAndCount:   names[modulesdk.OpListAndCount],
			Delete:         names[modulesdk.OpDelete],
			SoftDelete:     names[modulesdk.OpSoftDelete],
			Restore:        names[modulesdk.OpRestore],
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", source, err)
	}

	out, err := imports.Process(m.Package+"_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}

// modelExpr renders the modulesdk.Model call for e
func modelExpr(e EntityManifest) string {
	var b strings.Builder
	b.WriteString("modulesdk.Model(" + strconv.Quote(e.Name) + ")")
	if e.Singular != "" {
		b.WriteString(".WithSingular(" + strconv.Quote(e.Singular) + ")")
	}
	if e.Plural != "" {
		b.WriteString(".WithPlural(" + strconv.Quote(e.Plural) + ")")
	}
	return b.String()
}
