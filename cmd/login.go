package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/alist-org/biliqr/cmd/flags"
	"github.com/alist-org/biliqr/drivers/bilibili"
	"github.com/alist-org/biliqr/internal/op"
	"github.com/alist-org/biliqr/pkg/utils"
	"github.com/spf13/cobra"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Run the whole qrcode login and print the captured cookies",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := Init()
		s := newSession(cfg)
		out := cmd.OutOrStdout()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.WaitTimeout)
		defer cancel()

		last := bilibili.ScanState(-1)
		status, err := op.Login(ctx, s.Client(), cfg.PollInterval,
			func(qr *bilibili.QrGenResponse) {
				fmt.Fprintf(out, "open or scan this url with the bilibili app:\n%s\n", qr.URL)
			},
			func(st *bilibili.ScanStatus) {
				if st.State != last {
					utils.Log.Infof("qrcode status: %s", st.State)
					last = st.State
				}
			},
		)
		if err != nil {
			return err
		}

		cookies := s.Cookies()
		names := make([]string, 0, len(cookies))
		for name := range cookies {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(out, "login succeeded at %d\ncsrf: %s\ncookies: %v\n", status.Timestamp, status.CSRF, names)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(LoginCmd)
	LoginCmd.Flags().DurationVar(&flags.Interval, "interval", 0, "poll interval")
	LoginCmd.Flags().DurationVar(&flags.Wait, "wait", 0, "give up after this long")
}
