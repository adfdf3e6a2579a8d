package main

import (
	"github.com/spf13/cobra"

	"github.com/tokenize-x/vesting-escrow/cmd/vestingescrowd/session"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

func newQuoteCmd() *cobra.Command {
	var wallet string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the current vested/released/releasable figures for a wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			walletAddr, err := parseAddress(wallet)
			if err != nil {
				return err
			}
			path := statePath(cmd)
			snap, err := session.Load(path)
			if err != nil {
				return err
			}
			sess := session.Open(snap)
			if err := sess.Keeper.EmitVestingQuote(&types.MsgEmitVestingQuote{Wallet: walletAddr}); err != nil {
				return err
			}
			if err := session.Save(path, sess.Snapshot()); err != nil {
				return err
			}
			return printJSON(sess.Events.Events[len(sess.Events.Events)-1])
		},
	}
	cmd.Flags().StringVar(&wallet, "wallet", "", "recipient wallet address (hex)")
	return cmd
}
