package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/invitekit/invitekit/internal/record"
	"github.com/invitekit/invitekit/internal/tui/preview"
)

type previewOptions struct {
	template string
	watch    bool
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <record>",
		Short: "Preview an invitation record in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Template selector (numeric id or legacy name); defaults to the record's own")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the preview when the record file changes")

	return cmd
}

func runPreview(rootFlags *rootFlags, opts *previewOptions, recordPath string) error {
	log, err := newLogger(rootFlags)
	if err != nil {
		return newCommandError("preview", "creating logger", err, "Report this as a bug; the logger should always initialise.")
	}

	rec, err := record.Load(recordPath)
	if err != nil {
		return newCommandError("preview", fmt.Sprintf("loading record %s", recordPath), err, "Check that the file exists and is valid YAML or JSON.")
	}

	model := preview.NewModel(recordPath, opts.template, rec, opts.watch, log.WithComponent("preview"))

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return newCommandError("preview", "running terminal preview", err, "Ensure you are running in an interactive terminal.")
	}

	return nil
}
