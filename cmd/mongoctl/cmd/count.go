package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count documents in the configured collection",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger()
		ctx := context.Background()
		f, err := buildFacade(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("can not build facade")
		}
		defer f.Close(ctx)
		n, err := f.Count(ctx, nil, 0, 0)
		if err != nil {
			logrus.WithError(err).Fatal("can not count documents")
		}
		fmt.Println(n)
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
