package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/cardio"
	"github.com/matzehuels/cardstudio/pkg/config"
	"github.com/matzehuels/cardstudio/pkg/integrations/gemini"
)

// newEditCmd creates the edit command, which opens the interactive editor
// with a live preview. The file is created from the starter card when it
// does not exist yet.
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a card interactively with live preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultCardFile
			if len(args) == 1 {
				path = args[0]
			}
			return runEdit(cmd, path)
		},
	}
}

func runEdit(cmd *cobra.Command, path string) error {
	var d card.Data
	if _, err := os.Stat(path); os.IsNotExist(err) {
		d = card.Default()
	} else {
		loaded, err := cardio.ImportJSON(path)
		if err != nil {
			return err
		}
		d = loaded
	}

	// The generation client is optional in the editor: without a key the
	// generate action reports the configuration error instead.
	var genClient *gemini.Client
	cfg, err := config.Load()
	if err == nil && cfg.GeminiAPIKey != "" {
		genClient, err = gemini.New(cmd.Context(), cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			loggerFromContext(cmd.Context()).Debugf("gemini client: %v", err)
		}
	}

	model := newEditorModel(d, path, genClient)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	if m, ok := final.(editorModel); ok && m.dirty {
		if err := cardio.ExportJSON(m.data, path); err != nil {
			return err
		}
		printSuccess("Saved card")
		printFile(path)
	}
	return nil
}
