package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/card/layout"
	"github.com/matzehuels/cardstudio/pkg/cardio"
	"github.com/matzehuels/cardstudio/pkg/config"
	"github.com/matzehuels/cardstudio/pkg/errors"
	"github.com/matzehuels/cardstudio/pkg/integrations/gemini"
	"github.com/matzehuels/cardstudio/pkg/render/card/sink"
)

// newGenerateCmd creates the generate command, which fills a card document
// with AI-generated content from a free-text company description.
//
// The call is all-or-nothing: on any failure (missing key, network, quota,
// unparseable response) the document is left exactly as it was. Theme
// color, width, phone, and the QR fields are never touched by generation.
func newGenerateCmd() *cobra.Command {
	var output string
	var render bool

	cmd := &cobra.Command{
		Use:   "generate <file> <description...>",
		Short: "Fill a card with AI-generated content",
		Long: `Generate card content from a one-line company description via Gemini
and merge it into the card document.

The generated services and partners lists replace the existing ones; the
company names, tagline, and email overwrite only when the model returned a
non-empty value. Everything else (theme color, width, phone, QR settings)
is preserved.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args[1:], " ")
			return runGenerate(cmd.Context(), args[0], output, description, render)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a different file")
	cmd.Flags().BoolVar(&render, "render", false, "also render the result to SVG")
	return cmd
}

func runGenerate(ctx context.Context, input, output, description string, render bool) error {
	logger := loggerFromContext(ctx)

	current, err := cardio.ImportJSON(input)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Generating card content...")
	spinner.Start()

	content, err := client.Generate(ctx, description)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.StopWithSuccess("Content generated")

	logger.Debugf("Generated %d services, %d partners", len(content.Services), len(content.Partners))

	result := card.Apply(current, content)

	if output == "" {
		output = input
	}
	if err := cardio.ExportJSON(result, output); err != nil {
		return err
	}

	printKeyValue("Company", result.CompanyNameEN)
	printKeyValue("Tagline", result.Tagline)
	printFile(output)

	if render {
		svgPath := basePath("", output) + ".svg"
		svg := sink.RenderSVG(result, layout.Compute(result))
		if err := os.WriteFile(svgPath, svg, 0644); err != nil {
			return fmt.Errorf("write %s: %w", svgPath, err)
		}
		printFile(svgPath)
	}
	return nil
}
