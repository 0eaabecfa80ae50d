package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// databasesCmd represents the databases command
var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List database names",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger()
		ctx := context.Background()
		f, err := buildFacade(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("can not build facade")
		}
		defer f.Close(ctx)
		names, err := f.ListDatabases(ctx, nil)
		if err != nil {
			logrus.WithError(err).Fatal("can not list databases")
		}
		for _, n := range names {
			fmt.Println(n)
		}
	},
}

func init() {
	rootCmd.AddCommand(databasesCmd)
}
