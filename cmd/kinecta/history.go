package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage saved ancestor conversations",
	}

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryDeleteCommand())
	cmd.AddCommand(newHistoryBookmarkCommand())
	cmd.AddCommand(newHistoryShareCommand())
	cmd.AddCommand(newHistoryExportCommand())

	return cmd
}

func newHistoryListCommand() *cobra.Command {
	var bookmarkedOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			records := app.history.Load()
			if len(records) == 0 {
				fmt.Println("No saved conversations yet.")
				return nil
			}

			for _, rec := range records {
				if bookmarkedOnly && !rec.Bookmarked {
					continue
				}
				marker := " "
				if rec.Bookmarked {
					marker = "*"
				}
				fmt.Printf("%s %s  %s (%s)  %d messages  %s\n", marker, rec.ID, rec.AncestorName, rec.Heritage, rec.MessageCount, rec.Date)
				if rec.Preview != "" {
					fmt.Printf("    %s\n", rec.Preview)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bookmarkedOnly, "bookmarked", false, "only show bookmarked conversations")
	return cmd
}

func newHistoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved conversation permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.controller.DeleteRecord(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted conversation %s\n", args[0])
			return nil
		},
	}
}

func newHistoryBookmarkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmark <id>",
		Short: "Toggle the bookmark on a saved conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.history.Bookmark(args[0]); err != nil {
				return err
			}
			return nil
		},
	}
}

func newHistoryShareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Print the shareable summary of a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			text, err := app.history.ShareText(args[0])
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}

func newHistoryExportCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a conversation transcript to a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			text, err := app.history.ExportText(args[0])
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, app.history.ExportFilename(args[0]))
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "directory to write the export into")
	return cmd
}
