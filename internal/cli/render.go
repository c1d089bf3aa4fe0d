package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/card/layout"
	"github.com/matzehuels/cardstudio/pkg/cardio"
	"github.com/matzehuels/cardstudio/pkg/config"
	"github.com/matzehuels/cardstudio/pkg/render/card/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "svg", "pdf", "png", "json"
	width    int      // card width override in pixels (0 = use document value)
	color    string   // theme color override
	pngScale float64  // raster scale factor for PNG output
}

// newRenderCmd creates the render command for exporting a card document.
// This is the print path: the SVG written here is byte-identical to the
// source the PDF and PNG conversions use, so preview and print always match.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{pngScale: 2.0}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a card document to SVG, PDF, PNG, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(cmd.Context(), formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png, json (comma-separated)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "card width override in pixels (clamped to [300, 800])")
	cmd.Flags().StringVarP(&opts.color, "color", "c", "", "theme color override (e.g. '#FF4400')")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "PNG resolution scale factor")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, the configured default (or "svg") applies.
func parseFormats(ctx context.Context, s string) []string {
	if s == "" {
		if cfg, err := config.Load(); err == nil && cfg.DefaultFormat != "" {
			return []string{cfg.DefaultFormat}
		} else if err != nil {
			loggerFromContext(ctx).Debugf("config: %v", err)
		}
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "pdf": true, "png": true, "json": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'pdf', 'png', or 'json')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file
// paths, stripping a known format extension when present.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the card, applies overrides, computes the layout, and
// writes every requested format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	d, err := cardio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded card: %d services, %d partners", len(d.Services), len(d.Partners))

	if opts.width != 0 {
		d = card.SetCardWidth(d, opts.width)
	}
	if opts.color != "" {
		d = card.SetThemeColor(d, opts.color)
	}

	m := layout.Compute(d)
	logger.Debugf("Layout: %0.fx%.0f, scale %.2f", m.CardWidth, m.CardHeight, m.Scale)

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}

		data, err := renderFormat(d, m, format, opts.pngScale)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))
	return nil
}

// renderFormat dispatches to the sink for a single output format.
func renderFormat(d card.Data, m layout.Metrics, format string, pngScale float64) ([]byte, error) {
	switch format {
	case "svg":
		return sink.RenderSVG(d, m), nil
	case "pdf":
		return sink.RenderPDF(d, m)
	case "png":
		return sink.RenderPNG(d, m, sink.WithScale(pngScale))
	case "json":
		return sink.RenderJSON(d, m)
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
