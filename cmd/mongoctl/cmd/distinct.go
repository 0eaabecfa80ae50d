package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// distinctCmd represents the distinct command
var distinctCmd = &cobra.Command{
	Use:   "distinct [field]",
	Short: "List distinct values of a field in the configured collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger()
		ctx := context.Background()
		f, err := buildFacade(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("can not build facade")
		}
		defer f.Close(ctx)
		values, err := f.Distinct(ctx, args[0], nil)
		if err != nil {
			logrus.WithError(err).Fatal("can not get distinct values")
		}
		for _, v := range values {
			fmt.Println(v)
		}
	},
}

func init() {
	rootCmd.AddCommand(distinctCmd)
}
