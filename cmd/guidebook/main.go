package main

import (
	"context"
	"fmt"
	"os"

	"guidebook/internal/catalog"
	"guidebook/internal/issue"
	"guidebook/internal/render"
	"guidebook/internal/ui"

	"github.com/fatih/color"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "guidebook",
		Usage:       "Best-practice guides for agent-assisted development",
		Description: "Run 'guidebook list' to see available guides, then 'guidebook show <slug>' to read one.",
		Commands: []*cli.Command{
			listCmd(),
			showCmd(),
			browseCmd(),
			openIssueCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List every guide with a short description",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Print(render.List(catalog.All(), render.TerminalWidth()))
			return nil
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print one or more guides",
		ArgsUsage: "<slug> [<slug> ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Usage: "Show every published guide"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var docs []catalog.Doc
			if cmd.Bool("all") {
				if cmd.Args().Len() > 0 {
					return fmt.Errorf("--all cannot be combined with slug arguments")
				}
				docs = catalog.Published()
			} else {
				var err error
				docs, err = catalog.Resolve(cmd.Args().Slice())
				if err != nil {
					return err
				}
			}
			fmt.Print(render.Show(docs))
			return nil
		},
	}
}

func browseCmd() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse guides interactively",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return ui.Run(catalog.All())
		},
	}
}

func openIssueCmd() *cli.Command {
	return &cli.Command{
		Name:  "open-issue",
		Usage: "Open a prefilled guide-feedback issue in your browser",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "Issue category: guide, cli, or site"},
			&cli.StringFlag{Name: "title", Usage: "Issue title"},
			&cli.StringFlag{Name: "description", Usage: "What is wrong or missing"},
			&cli.StringFlag{Name: "strategy", Usage: "Suggested approach for the fix"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			u, err := issue.URL(issue.Params{
				Category:    cmd.String("category"),
				Title:       cmd.String("title"),
				Description: cmd.String("description"),
				Strategy:    cmd.String("strategy"),
			})
			if err != nil {
				return err
			}
			fmt.Println(u)
			return issue.Open(u)
		},
	}
}
