package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var catalogFile string

// Execute runs the requested catalog command.
func Execute(app *App) error {
	return NewRootCommand(app).Execute()
}

// NewRootCommand builds the command tree of the thin catalog CLI.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookcatalog",
		Short:         "Fixed-capacity book catalog over a flat text file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if catalogFile != "" {
				app.config.Catalog.FilePath = catalogFile
			}
		},
	}

	root.PersistentFlags().StringVar(&catalogFile, "file", "", "catalog file path (overrides configuration)")

	root.AddCommand(
		loadCmd(app),
		showCmd(app),
		addCmd(app),
		findCmd(app),
		atCmd(app),
		mergeCmd(app),
		versionCmd(app),
	)
	return root
}

// loadCatalog fills the service list from the catalog file, treating a
// missing file as an empty catalog and an over-full file as loaded up to
// capacity. Both keep the session usable.
func loadCatalog(cmd *cobra.Command, app *App) error {
	n, err := app.catalog.Load(cmd.Context())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case errors.Is(err, ErrCapacityReached):
		fmt.Fprintf(cmd.OutOrStdout(), "catalog file holds more than %d records, extra ones ignored\n", n)
		return nil
	}
	return err
}

// bookFromArgs builds a record from the isbn/title/author/price arguments.
func bookFromArgs(args []string) (Book, error) {
	price, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return Book{}, fmt.Errorf("invalid price %q: %v", args[3], err)
	}
	return NewBook(args[0], args[1], args[2], price), nil
}

func loadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the catalog file and report how many records fit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(cmd, app); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d records (capacity %d)\n", app.catalog.Size(), app.catalog.Capacity())
			return nil
		},
	}
}

func showCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the catalog with zero-based positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(cmd, app); err != nil {
				return err
			}
			if err := app.catalog.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func addCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <isbn> <title> <author> <price>",
		Short: "Add one record to the catalog and save it",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := bookFromArgs(args)
			if err != nil {
				return err
			}
			if err := loadCatalog(cmd, app); err != nil {
				return err
			}
			if err := app.catalog.Add(cmd.Context(), book); err != nil {
				if errors.Is(err, ErrCapacityReached) {
					return fmt.Errorf("catalog is full (%d records)", app.catalog.Capacity())
				}
				return err
			}
			if err := app.catalog.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added at position %d\n", app.catalog.Size()-1)
			return nil
		},
	}
}

func findCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "find <isbn> <title> <author> <price>",
		Short: "Locate a record and print its zero-based position",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := bookFromArgs(args)
			if err != nil {
				return err
			}
			if err := loadCatalog(cmd, app); err != nil {
				return err
			}
			index, found := app.catalog.Find(cmd.Context(), book)
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "not found (sentinel position %d)\n", index)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "found at position %d\n", index)
			return nil
		},
	}
}

func atCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "at <position>",
		Short: "Print the record at a zero-based position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q: %v", args[0], err)
			}
			if err := loadCatalog(cmd, app); err != nil {
				return err
			}
			book, err := app.catalog.At(cmd.Context(), index)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), book.String())
			return nil
		},
	}
}

func mergeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <path>",
		Short: "Append the records of another catalog file, up to capacity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(cmd, app); err != nil {
				return err
			}
			appended, err := app.catalog.Merge(cmd.Context(), args[0])
			if err != nil && !errors.Is(err, ErrCapacityReached) {
				return err
			}
			if serr := app.catalog.Save(cmd.Context()); serr != nil {
				return serr
			}
			if errors.Is(err, ErrCapacityReached) {
				fmt.Fprintf(cmd.OutOrStdout(), "appended %d records, the rest did not fit (capacity %d)\n", appended, app.catalog.Capacity())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "appended %d records\n", appended)
			return nil
		},
	}
}

func versionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "bookcatalog %s (commit %s, built %s)\n",
				app.config.GitTag, app.config.GitCommit, app.config.BuildTime)
		},
	}
}
