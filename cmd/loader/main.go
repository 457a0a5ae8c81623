package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const loaderLongDesc string = `Load reviews from a JSON array file into the review index.

Every review goes through the same validation and sentiment enrichment as
POST /api/v1/reviews/bulk. Failed items are reported and do not stop the load.

Examples:
  loader --file reviews.json
  loader --file reviews.json --chunk 200 --bootstrap`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmder := &loaderCommander{}

	cmd := &cobra.Command{
		Use:          "loader",
		Short:        "Bulk load reviews",
		Long:         loaderLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&cmder.file, "file", "f", "", "Path to a JSON array of reviews")
	cmd.Flags().IntVarP(&cmder.chunk, "chunk", "c", defaultChunkSize, "Reviews per bulk call")
	cmd.Flags().BoolVarP(&cmder.bootstrap, "bootstrap", "b", false, "Create the index before loading")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
