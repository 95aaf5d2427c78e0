package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/invitekit/invitekit/internal/catalog"
)

type templatesOptions struct {
	jsonOutput bool
	category   string
}

func newTemplatesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &templatesOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the available invitation templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Only show templates for the given category")

	return cmd
}

func runTemplates(cmd *cobra.Command, opts *templatesOptions) error {
	descriptors := catalog.All()

	if opts.category != "" {
		filtered := descriptors[:0]
		for _, d := range descriptors {
			if string(d.Category) == opts.category {
				filtered = append(filtered, d)
			}
		}
		descriptors = filtered
	}

	if len(descriptors) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates match the given category.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'invitekit templates' without --category to see every template.")
		return nil
	}

	if opts.jsonOutput {
		return renderTemplatesJSON(cmd, descriptors)
	}

	return renderTemplatesTable(cmd, descriptors)
}

func renderTemplatesTable(cmd *cobra.Command, descriptors []catalog.Descriptor) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tLAYOUT\tOVERLAY\tACCENT")

	colorize := supportsColor(cmd.OutOrStdout())

	for _, d := range descriptors {
		accent := d.AccentColor
		if colorize && accent != "" {
			accent = lipgloss.NewStyle().Foreground(lipgloss.Color(d.AccentColor)).Render(accent)
		}

		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\n",
			d.ID,
			d.Name,
			d.Category,
			d.Layout,
			d.Overlay,
			accent,
		)
	}

	return writer.Flush()
}

type templatesJSONEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Layout      string `json:"layout"`
	Overlay     string `json:"overlay"`
	AccentColor string `json:"accent_color"`
	AvatarCount int    `json:"avatar_count"`
	PreviewTag  string `json:"preview_tag,omitempty"`
}

type templatesJSONPayload struct {
	Version   string               `json:"version"`
	Count     int                  `json:"count"`
	Templates []templatesJSONEntry `json:"templates"`
}

func renderTemplatesJSON(cmd *cobra.Command, descriptors []catalog.Descriptor) error {
	payload := templatesJSONPayload{
		Version:   "1.0",
		Count:     len(descriptors),
		Templates: make([]templatesJSONEntry, len(descriptors)),
	}

	for i, d := range descriptors {
		payload.Templates[i] = templatesJSONEntry{
			ID:          d.ID,
			Name:        d.Name,
			Category:    string(d.Category),
			Layout:      string(d.Layout),
			Overlay:     string(d.Overlay),
			AccentColor: d.AccentColor,
			AvatarCount: d.AvatarCount,
			PreviewTag:  d.PreviewTag,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsColor(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
