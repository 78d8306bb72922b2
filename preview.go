package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andersonsilva/portfolio/internal/preview"
	"github.com/andersonsilva/portfolio/internal/theme"
)

func newPreviewCmd(app *appContext) *cobra.Command {
	var (
		mode  string
		width int
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the portfolio in the terminal",
		Long: `Show the portfolio in the terminal. On an interactive terminal this opens a
scrollable view where "t" switches between the dark and light themes. Otherwise, or
with --plain, the page is printed once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := theme.Parse(mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f, isFile := out.(*os.File)
			interactive := isFile && term.IsTerminal(int(f.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))

			if plain || !interactive {
				w := width
				if w <= 0 && isFile {
					if tw, _, err := term.GetSize(int(f.Fd())); err == nil {
						w = tw
					}
				}
				if w <= 0 {
					w = 80
				}
				_, err := fmt.Fprint(out, preview.Render(app.content, m, w))
				return err
			}

			_, err = preview.Run(cmd.Context(), app.content, m, os.Stdin, out)
			return err
		},
	}
	cmd.Flags().StringVar(&mode, "theme", theme.Default.String(), "Initial theme: dark or light")
	cmd.Flags().IntVar(&width, "width", 0, "Render width when printing (default: terminal width or 80)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print once instead of opening the interactive view")
	return cmd
}
