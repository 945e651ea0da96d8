package cmd

import (
	"fmt"
	"os"

	"github.com/alist-org/biliqr/cmd/flags"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "biliqr",
	Short: "Log in to bilibili by scanning a qrcode.",
	Long: `Log in to bilibili by scanning a qrcode with the mobile app.
Settings can also be given as BILIQR_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "enable debug logging")
	RootCmd.PersistentFlags().StringVar(&flags.BaseURL, "base-url", "", "passport base url (default from BILIQR_BASE_URL or https://passport.bilibili.com)")
	RootCmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", 0, "per request timeout")
}
