package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// collectionsCmd represents the collections command
var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List collection names of the configured database",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger()
		ctx := context.Background()
		f, err := buildFacade(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("can not build facade")
		}
		defer f.Close(ctx)
		names, err := f.ListCollections(ctx, nil)
		if err != nil {
			logrus.WithError(err).Fatal("can not list collections")
		}
		for _, n := range names {
			fmt.Println(n)
		}
	},
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
}
