// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upgrade

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/tinytapeout/tt-upgrade/internal/infoyaml"
	"github.com/tinytapeout/tt-upgrade/pkg/types"
)

var templateFuncs = template.FuncMap{
	"quote": infoyaml.Quote,
	"pin": func(p types.PinEntry) string {
		return infoyaml.Quote(p.String())
	},
	// sourceList writes one "    - <file>" line per file, without a
	// trailing newline.
	"sourceList": func(files []string) string {
		lines := make([]string, len(files))
		for i, f := range files {
			lines[i] = "    - " + f
		}
		return strings.Join(lines, "\n")
	},
}

// infoYAMLTmpl is the v6 info.yaml. The comments are part of the output:
// they guide the designer editing the generated file.
var infoYAMLTmpl = template.Must(template.New("info.yaml").Funcs(templateFuncs).Parse(`# Tiny Tapeout project information
project:
{{- if .IsWokwi}}
  wokwi_id:     {{.WokwiID}}       # Set this to the ID of your Wokwi project (the number from the project's URL)
{{- end}}
  title:        {{.TitleLiteral}}      # Project title
  author:       {{.AuthorLiteral}}      # Your name
  discord:      {{.DiscordLiteral}}      # Your discord username, for communication and automatically assigning you a Tapeout role (optional)
  description:  {{.DescriptionLiteral}}      # One line description of what your project does
  language:     {{.LanguageLiteral}} # other examples include SystemVerilog, Amaranth, VHDL, etc
  clock_hz:     {{.ClockHzLiteral}}       # Clock frequency in Hz (or 0 if not applicable)

  # How many tiles your design occupies? A single tile is about 167x108 uM.
  tiles: {{.TilesLiteral}}          # Valid values: 1x1, 1x2, 2x2, 3x2, 4x2, 6x2 or 8x2
{{if not .IsWokwi}}
  # Your top module name must start with "tt_um_". Make it unique by including your github username:
  top_module:  {{quote .TopModule}}

  # List your project's source files here. Source files must be in ./src and you must list each source file separately, one per line:
  source_files:
{{sourceList .SourceFileLiterals}}
{{end}}
# The pinout of your project. Leave unused pins blank. DO NOT delete or add any pins.
pinout:
  # Inputs
{{- range $i, $p := .Inputs}}
  ui[{{$i}}]: {{pin $p}}
{{- end}}

  # Outputs
{{- range $i, $p := .Outputs}}
  uo[{{$i}}]: {{pin $p}}
{{- end}}

  # Bidirectional pins
{{- range $i, $p := .Bidirectional}}
  uio[{{$i}}]: {{pin $p}}
{{- end}}

# Do not change!
yaml_version: ` + TargetVersion + `
`))

// infoMarkdownTmpl is the datasheet page. The HTML comment header is
// boilerplate every project starts from.
var infoMarkdownTmpl = template.Must(template.New("info.md").Parse(`<!---

This file is used to generate your project datasheet. Please fill in the information below and delete any unused
sections.

You can also include images in this folder and reference them in the markdown. Each image must be less than
512 kb in size, and the combined size of all images must be less than 1 MB.
-->

## How it works

{{.HowItWorks}}

## How to test

{{.HowToTest}}
{{if .ExternalHW}}
## External Hardware

{{.ExternalHW}}
{{end}}`))

// RenderYAML renders the v6 info.yaml for info.
func RenderYAML(info *types.ProjectInfo) (string, error) {
	return render(infoYAMLTmpl, info)
}

// RenderMarkdown renders the datasheet Markdown for info.
func RenderMarkdown(info *types.ProjectInfo) (string, error) {
	return render(infoMarkdownTmpl, info)
}

func render(t *template.Template, info *types.ProjectInfo) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, info); err != nil {
		return "", fmt.Errorf("rendering %s: %w", t.Name(), err)
	}
	return b.String(), nil
}
