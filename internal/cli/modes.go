package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/jhoelz/fancyio/pkg/sgr"
)

var sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the mode catalog with keys and SGR codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, sectionStyle.Render("COLORS"))
			colors := pterm.TableData{{"Key", "BG Key", "Name", "FG Code", "BG Code", "Sample"}}
			for _, m := range sgr.ColorModes {
				colors = append(colors, []string{
					m.FG.Key, m.BG.Key, m.Name, m.FG.Code, m.BG.Code,
					sgr.Stylize("sample", sgr.Combi{FG: m}, false),
				})
			}
			if err := renderTable(out, colors); err != nil {
				return err
			}

			fmt.Fprintln(out, sectionStyle.Render("STYLES"))
			styles := pterm.TableData{{"Key", "Name", "Code", "Reset", "Sample"}}
			for _, m := range sgr.StyleModes {
				styles = append(styles, []string{
					m.Esc.Key, m.Name, m.Esc.Code, m.Reset.Esc.Key,
					sgr.Stylize("sample", sgr.Combi{Styles: []*sgr.StyleMode{m}}, false),
				})
			}
			if err := renderTable(out, styles); err != nil {
				return err
			}

			fmt.Fprintln(out, sectionStyle.Render("RESETS"))
			resets := pterm.TableData{{"Key", "Name", "Code"}}
			for _, m := range sgr.ResetModes {
				resets = append(resets, []string{m.Esc.Key, m.Name, m.Esc.Code})
			}
			return renderTable(out, resets)
		},
	}
}

func renderTable(out io.Writer, data pterm.TableData) error {
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}
