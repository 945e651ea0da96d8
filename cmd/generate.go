package cmd

import (
	"context"
	"fmt"

	"github.com/alist-org/biliqr/drivers/bilibili"
	"github.com/spf13/cobra"
)

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Request a login qrcode and print its url and key",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := Init()
		s := newSession(cfg)
		qr, err := bilibili.Generate(context.Background(), s.Client())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "url: %s\nkey: %s\n", qr.URL, qr.QrcodeKey)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(GenerateCmd)
}
