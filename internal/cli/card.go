package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/langcard/pkg/card/langs"
	"github.com/matzehuels/langcard/pkg/github"
	"github.com/matzehuels/langcard/pkg/langstats"
)

// cardCommand creates the card rendering command.
func (c *CLI) cardCommand() *cobra.Command {
	var (
		layout       string
		theme        string
		langsCount   int
		hide         []string
		width        int
		excludeRepos []string
		sizeWeight   string
		countWeight  string
		locale       string
		customTitle  string
		hideTitle    bool
		hideBorder   bool
		hideProgress bool
		noAnimations bool
		bytesFormat  bool
		output       string
		token        string
		noCache      bool
		interactive  bool
	)

	cmd := &cobra.Command{
		Use:   "card <username>",
		Short: "Render a user's language statistics as an SVG card",
		Long: `Aggregate the language breakdown of a GitHub user's repositories and
render it as an SVG card.

The GitHub token is read from --token or the GITHUB_TOKEN environment
variable. With --output the card is written to a file and a summary table is
printed; without it the SVG goes to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			if token == "" {
				token = os.Getenv("GITHUB_TOKEN")
			}
			client, err := github.NewClient(token)
			if err != nil {
				return err
			}

			if interactive {
				selection, err := runPicker()
				if err != nil {
					return err
				}
				if selection == nil {
					printInfo("Aborted")
					return nil
				}
				layout = string(selection.Layout)
				theme = selection.Theme
			}

			fetcher := newCachedFetcher(client, newCache(noCache))

			prog := newProgress(c.Logger)
			table, err := langstats.Aggregate(cmd.Context(), fetcher, langstats.Options{
				Username:     username,
				ExcludeRepos: excludeRepos,
				SizeWeight:   sizeWeight,
				CountWeight:  countWeight,
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Aggregated %d languages for %s", table.Len(), username))

			format := langs.FormatPercentages
			if bytesFormat {
				format = langs.FormatBytes
			}
			opts := langs.CardOptions{
				Layout:            langs.Layout(layout),
				Width:             width,
				LangsCount:        langsCount,
				Hide:              hide,
				Theme:             theme,
				Locale:            locale,
				FullTitle:         customTitle,
				HideTitle:         hideTitle,
				HideBorder:        hideBorder,
				HideProgress:      hideProgress,
				DisableAnimations: noAnimations,
				Format:            format,
				Username:          username,
			}

			svg, err := langs.RenderCard(cmd.Context(), table, opts)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				fmt.Print(svg)
				return nil
			}

			if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			printSuccess("Rendered %s card for %s", displayLayout(layout), username)
			printFile(output)

			count := langsCount
			if count == 0 {
				count = langstats.DefaultLanguageCount(layout, hideProgress)
			}
			printLangTable(langstats.Trim(table, count, hide))
			return nil
		},
	}

	cmd.Flags().StringVarP(&layout, "layout", "l", "", "card layout: normal, compact, donut, donut-vertical, pie")
	cmd.Flags().StringVarP(&theme, "theme", "t", "", "color theme")
	cmd.Flags().IntVarP(&langsCount, "langs-count", "n", 0, "number of languages to display (default per layout)")
	cmd.Flags().StringSliceVar(&hide, "hide", nil, "language names to hide")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "card width in pixels")
	cmd.Flags().StringSliceVar(&excludeRepos, "exclude-repo", nil, "repository names to exclude")
	cmd.Flags().StringVar(&sizeWeight, "size-weight", "", "exponent applied to byte size (default 1)")
	cmd.Flags().StringVar(&countWeight, "count-weight", "", "exponent applied to repository count (default 0)")
	cmd.Flags().StringVar(&locale, "locale", "", "locale for the card chrome")
	cmd.Flags().StringVar(&customTitle, "title", "", "custom card title")
	cmd.Flags().BoolVar(&hideTitle, "hide-title", false, "hide the card title")
	cmd.Flags().BoolVar(&hideBorder, "hide-border", false, "hide the card border")
	cmd.Flags().BoolVar(&hideProgress, "hide-progress", false, "hide the progress bars or strip")
	cmd.Flags().BoolVar(&noAnimations, "no-animations", false, "disable entrance animations")
	cmd.Flags().BoolVar(&bytesFormat, "bytes", false, "show byte sizes instead of percentages")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (default $GITHUB_TOKEN)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the fetch cache")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick layout and theme interactively")

	return cmd
}

// displayLayout names the layout in output, defaulting like the renderer.
func displayLayout(layout string) string {
	if layout == "" {
		return string(langs.LayoutNormal)
	}
	return layout
}
