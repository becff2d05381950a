// cmd/claimnorm/cmd_ids.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/claim-normalizer/pkg/wikibase"
)

var imageWidth int

// checkIDCmd classifies identifiers
var checkIDCmd = &cobra.Command{
	Use:   "check-id [ids...]",
	Short: "Classify entity ids, statement GUIDs, page titles and revision ids",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, id := range args {
			kind := wikibase.Classify(id)
			line := fmt.Sprintf("%s\t%s", id, kind)

			if n, err := wikibase.GetNumericID(id); err == nil {
				line += "\tnumeric=" + n
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	},
}

// imageURLCmd prints the Commons file-path URL of a commonsMedia value
var imageURLCmd = &cobra.Command{
	Use:   "image-url [filename]",
	Short: "Print the Wikimedia Commons URL of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), wikibase.ImageURL(args[0], imageWidth))
		return err
	},
}

func init() {
	imageURLCmd.Flags().IntVar(&imageWidth, "width", 0, "Thumbnail width in pixels")
}
