package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardstudio/pkg/buildinfo"
)

// defaultCardFile is the document path used when a command takes no file
// argument.
const defaultCardFile = "card.json"

// Execute runs the cardstudio CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (init, edit,
// render, generate, completion), configures logging based on the --verbose
// flag, and executes the command tree under ctx.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cardstudio",
		Short:        "Cardstudio designs print-ready business cards",
		Long:         `Cardstudio is a CLI tool for designing business cards: edit the card in an interactive terminal form with a live preview, fill it from a one-line company description via Gemini, and export a print-ready SVG, PNG, or PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInitCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
