package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/invitekit/invitekit/internal/record"
	"github.com/invitekit/invitekit/internal/render"
)

type renderOptions struct {
	template string
	mode     string
	out      string
	width    int
	height   int
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <record>",
		Short: "Render an invitation record to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Template selector (numeric id or legacy name); defaults to the record's own")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "full", "Rendering mode: full or embedded")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Force canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Force canvas height in pixels")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, recordPath string) error {
	log, err := newLogger(rootFlags)
	if err != nil {
		return newCommandError("render", "creating logger", err, "Report this as a bug; the logger should always initialise.")
	}

	mode, err := parseMode(opts.mode)
	if err != nil {
		return newCommandError("render", "parsing flags", err, "Use --mode full or --mode embedded.")
	}

	rec, err := record.Load(recordPath)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("loading record %s", recordPath), err, "Check that the file exists and is valid YAML or JSON.")
	}

	page := render.Render(rec, render.Options{
		Template: opts.template,
		Mode:     mode,
		Now:      time.Now(),
		Width:    opts.width,
		Height:   opts.height,
	})

	out := cmd.OutOrStdout()
	if opts.out != "" {
		file, err := os.Create(opts.out)
		if err != nil {
			return newCommandError("render", fmt.Sprintf("creating output file %s", opts.out), err, "Check directory permissions and try again.")
		}
		defer file.Close()
		out = file
	}

	if err := page.WriteHTML(out); err != nil {
		return newCommandError("render", "writing output", err, "Check that the output destination is writable.")
	}

	log.WithComponent("render").WithFields(map[string]any{
		"record": recordPath,
		"mode":   string(mode),
	}).Debug("record rendered")

	return nil
}

func parseMode(raw string) (render.Mode, error) {
	switch raw {
	case "full", "full_page":
		return render.ModeFullPage, nil
	case "embedded", "embed":
		return render.ModeEmbedded, nil
	default:
		return "", fmt.Errorf("unknown mode %q", raw)
	}
}
