package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server and selection info",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger()
		ctx := context.Background()
		f, err := buildFacade(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("can not build facade")
		}
		defer f.Close(ctx)
		info, err := f.Info(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("can not get info")
		}
		fmt.Printf("%+v\n", info)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
