package boardfile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"quadmatch/internal/core"
	"quadmatch/internal/engine"
)

type fileRoot struct {
	Boards []*boardBlock `hcl:"board,block"`
}

type boardBlock struct {
	Name    string   `hcl:"name,label"`
	Width   *int     `hcl:"width,optional"`
	Height  *int     `hcl:"height,optional"`
	Refill  *int     `hcl:"refill,optional"`
	Palette []string `hcl:"palette,optional"`
	Seed    *int64   `hcl:"seed,optional"`
}

// Load reads the board file at path and overlays it on base. The result is
// validated before it is returned.
func Load(path string, base engine.Config) (engine.Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return engine.Config{}, fmt.Errorf("failed to read board file: %w", err)
	}
	return Parse(src, path, base)
}

// Parse decodes HCL source; filename is only used in diagnostics.
func Parse(src []byte, filename string, base engine.Config) (engine.Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return engine.Config{}, fmt.Errorf("failed to parse board file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return engine.Config{}, fmt.Errorf("failed to decode board file %s: %w", filename, diags)
	}

	block, diags := uniqueBoard(root.Boards)
	if diags.HasErrors() {
		return engine.Config{}, fmt.Errorf("invalid board file %s: %w", filename, diags)
	}

	cfg, err := block.apply(base)
	if err != nil {
		return engine.Config{}, fmt.Errorf("board %q in %s: %w", block.Name, filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, fmt.Errorf("board %q in %s: %w", block.Name, filename, err)
	}
	return cfg, nil
}

func uniqueBoard(blocks []*boardBlock) (*boardBlock, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	if len(blocks) == 0 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing \"board\" block",
			Detail:   "A board file must define exactly one \"board\" block.",
		})
		return nil, diags
	}
	for _, b := range blocks[1:] {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate \"board\" block",
			Detail:   fmt.Sprintf("Only one \"board\" block is allowed; found extra %q.", b.Name),
		})
	}
	return blocks[0], diags
}

func (b *boardBlock) apply(base engine.Config) (engine.Config, error) {
	cfg := base
	cfg.Name = b.Name
	if b.Width != nil {
		cfg.Width = *b.Width
	}
	if b.Height != nil {
		cfg.Height = *b.Height
	}
	if b.Refill != nil {
		cfg.RefillCount = *b.Refill
	}
	if b.Seed != nil {
		cfg.Seed = *b.Seed
	}
	if b.Palette != nil {
		palette := make([]core.Color, 0, len(b.Palette))
		for _, name := range b.Palette {
			c, err := core.ParseColor(name)
			if err != nil {
				return engine.Config{}, err
			}
			palette = append(palette, c)
		}
		cfg.Palette = palette
	} else {
		cfg.Palette = append([]core.Color(nil), base.Palette...)
	}
	return cfg, nil
}
