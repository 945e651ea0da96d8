package cmd

import (
	"context"
	"fmt"

	"github.com/alist-org/biliqr/cmd/flags"
	"github.com/alist-org/biliqr/drivers/bilibili"
	"github.com/spf13/cobra"
)

var PollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Check the scan status of a qrcode key once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := Init()
		s := newSession(cfg)
		status, err := bilibili.Poll(context.Background(), s.Client(), flags.Key)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, status.State)
		if status.State == bilibili.StateSuccess {
			fmt.Fprintf(out, "timestamp: %d\ncsrf: %s\n", status.Timestamp, status.CSRF)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(PollCmd)
	PollCmd.Flags().StringVar(&flags.Key, "key", "", "qrcode key returned by generate")
	_ = PollCmd.MarkFlagRequired("key")
}
