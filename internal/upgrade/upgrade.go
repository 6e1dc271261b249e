// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package upgrade migrates a Tiny Tapeout info.yaml from schema version 4 to
// schema version 6 and derives the project datasheet (docs/info.md) from the
// same fields.
//
// Migrate is a pure function of its input and is safe for concurrent use.
package upgrade

import (
	"errors"
	"strings"

	"github.com/tinytapeout/tt-upgrade/internal/infoyaml"
	"github.com/tinytapeout/tt-upgrade/pkg/types"
)

const (
	// SourceVersion is the only yaml_version Migrate accepts.
	SourceVersion = "4"
	// TargetVersion is the yaml_version of the generated document.
	TargetVersion = "6"

	// TopModulePrefix is required at the start of every top module name.
	TopModulePrefix = "tt_um_"

	wokwiModulePrefix = "tt_um_wokwi_"
)

var errMissing = errors.New("field is missing")

// Result holds the two generated documents.
type Result struct {
	// YAML is the info.yaml in schema version 6.
	YAML string
	// Markdown is the datasheet text for docs/info.md.
	Markdown string
}

// Migrate converts the v4 info.yaml in raw. It returns either both
// documents or an *Error describing the first check that failed.
func Migrate(raw string) (*Result, error) {
	doc, err := infoyaml.Parse(raw)
	if err != nil {
		return nil, ParseFailed(err)
	}

	info, err := Build(doc)
	if err != nil {
		return nil, err
	}

	yamlText, err := RenderYAML(info)
	if err != nil {
		return nil, err
	}
	mdText, err := RenderMarkdown(info)
	if err != nil {
		return nil, err
	}
	return &Result{YAML: yamlText, Markdown: mdText}, nil
}

// Build validates doc and flattens it into the record the renderers use.
// Checks run in a fixed order and the first failure is returned.
func Build(doc *infoyaml.Document) (*types.ProjectInfo, error) {
	version := doc.Get("yaml_version")
	if found := versionText(version); found != SourceVersion {
		return nil, VersionMismatch(found, SourceVersion)
	}

	project := doc.Get("project")
	if !project.Truthy() {
		return nil, MissingSection("project")
	}
	documentation := doc.Get("documentation")
	if !documentation.Truthy() {
		return nil, MissingSection("documentation")
	}

	tiles := project.Get("tiles")
	if !tiles.Truthy() {
		return nil, MissingField("project.tiles")
	}
	title := documentation.Get("title")
	if !title.Truthy() {
		return nil, MissingField("documentation.title")
	}
	author := documentation.Get("author")
	if !author.Truthy() {
		return nil, MissingField("documentation.author")
	}

	info := &types.ProjectInfo{}

	wokwiID, err := wokwiText(project.Get("wokwi_id"))
	if err != nil {
		return nil, Malformed("project.wokwi_id", err)
	}
	info.IsWokwi = wokwiID != "" && wokwiID != "0"

	topModule := project.Get("top_module")
	if !info.IsWokwi && !topModule.Truthy() {
		return nil, MissingField("project.wokwi_id", "project.top_module")
	}

	if info.IsWokwi {
		info.WokwiID = wokwiID
		info.TopModule = wokwiModulePrefix + wokwiID
	}
	if topModule.Truthy() {
		name, err := topModule.Text()
		if err != nil {
			return nil, Malformed("project.top_module", err)
		}
		if !strings.HasPrefix(name, TopModulePrefix) {
			return nil, InvalidField("project.top_module", name, `a name starting with "`+TopModulePrefix+`"`)
		}
		if !info.IsWokwi {
			info.TopModule = name
		}
	}

	var b builder
	info.TilesLiteral = b.literal("project.tiles", tiles, "")
	info.TitleLiteral = b.literal("documentation.title", title, "")
	info.AuthorLiteral = b.literal("documentation.author", author, "")
	info.DiscordLiteral = b.literal("documentation.discord", documentation.Get("discord"), `""`)
	info.DescriptionLiteral = b.literal("documentation.description", documentation.Get("description"), `""`)
	info.LanguageLiteral = b.literal("documentation.language", documentation.Get("language"), `""`)
	info.ClockHzLiteral = b.literal("documentation.clock_hz", documentation.Get("clock_hz"), "0")
	info.SourceFileLiterals = b.sourceFiles(project.Get("source_files"))
	info.Inputs = b.pins("documentation.inputs", documentation.Get("inputs"))
	info.Outputs = b.pins("documentation.outputs", documentation.Get("outputs"))
	info.Bidirectional = b.pins("documentation.bidirectional", documentation.Get("bidirectional"))
	info.HowItWorks = b.longText("documentation.how_it_works", documentation.Get("how_it_works"))
	info.HowToTest = b.longText("documentation.how_to_test", documentation.Get("how_to_test"))
	info.ExternalHW = b.optionalText("documentation.external_hw", documentation.Get("external_hw"))
	if b.err != nil {
		return nil, b.err
	}
	return info, nil
}

// versionText returns the yaml_version as text, or "nothing" when absent.
func versionText(v infoyaml.Value) string {
	if !v.Exists() {
		return "nothing"
	}
	s, err := v.Text()
	if err != nil {
		return v.Kind()
	}
	return s
}

// wokwiText returns the Wokwi ID as text; empty when absent or null.
func wokwiText(v infoyaml.Value) (string, error) {
	if v.IsNull() {
		return "", nil
	}
	return v.Text()
}

// builder extracts optional fields, keeping the first error so Build can
// read every field in one straight sequence.
type builder struct {
	err error
}

func (b *builder) fail(path string, err error) {
	if b.err == nil {
		b.err = Malformed(path, err)
	}
}

// literal serializes v, falling back to def when v is absent or null.
func (b *builder) literal(path string, v infoyaml.Value, def string) string {
	if b.err != nil {
		return ""
	}
	if v.IsNull() && def != "" {
		return def
	}
	lit, err := v.Literal()
	if err != nil {
		b.fail(path, err)
		return ""
	}
	return lit
}

func (b *builder) sourceFiles(v infoyaml.Value) []string {
	if b.err != nil {
		return nil
	}
	items, err := v.Items()
	if err != nil {
		b.fail("project.source_files", err)
		return nil
	}
	files := make([]string, 0, len(items))
	for _, item := range items {
		lit, err := item.Literal()
		if err != nil {
			b.fail("project.source_files", err)
			return nil
		}
		files = append(files, lit)
	}
	return files
}

func (b *builder) pins(path string, v infoyaml.Value) types.Pinout {
	if b.err != nil {
		return types.Pinout{}
	}
	pins, err := infoyaml.Pins(v)
	if err != nil {
		b.fail(path, err)
	}
	return pins
}

// longText returns a required Markdown body, trimmed.
func (b *builder) longText(path string, v infoyaml.Value) string {
	if b.err != nil {
		return ""
	}
	if v.IsNull() {
		b.fail(path, errMissing)
		return ""
	}
	s, err := v.Text()
	if err != nil {
		b.fail(path, err)
		return ""
	}
	return strings.TrimSpace(s)
}

// optionalText returns v as written, or "" when v is not filled in.
func (b *builder) optionalText(path string, v infoyaml.Value) string {
	if b.err != nil || !v.Truthy() {
		return ""
	}
	s, err := v.Text()
	if err != nil {
		b.fail(path, err)
		return ""
	}
	return s
}
