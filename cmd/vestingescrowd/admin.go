package main

import (
	"github.com/spf13/cobra"

	"github.com/tokenize-x/vesting-escrow/cmd/vestingescrowd/session"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin-only escape hatches: withdraw and dust sweep",
	}
	cmd.AddCommand(newAdminWithdrawCmd(), newAdminSweepCmd())
	return cmd
}

func newAdminWithdrawCmd() *cobra.Command {
	var admin, destination, amount, queryID string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw funds from the vault outside the release path",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminAddr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			destAddr, err := parseAddress(destination)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}
			if queryID == "" {
				queryID = newQueryID()
			}
			return withSession(cmd, func(s *session.Session) error {
				msg := &types.MsgAdminWithdraw{
					Admin:              adminAddr,
					DestinationAccount: destAddr,
					Amount:             amt,
					QueryID:            queryID,
				}
				return s.Keeper.AdminWithdraw(msg)
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority address (hex)")
	cmd.Flags().StringVar(&destination, "destination", "", "withdrawal destination token account (hex)")
	cmd.Flags().StringVar(&amount, "amount", "", "withdrawal amount")
	cmd.Flags().StringVar(&queryID, "query-id", "", "opaque correlation token echoed in the event; a random one is minted if omitted")
	return cmd
}

func newAdminSweepCmd() *cobra.Command {
	var admin, destination string
	var advance int64

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep remaining vault dust once vesting has ended",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminAddr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			destAddr, err := parseAddress(destination)
			if err != nil {
				return err
			}
			return withSession(cmd, func(s *session.Session) error {
				s.Clock.Advance(advance)
				msg := &types.MsgSweepDustAfterEnd{Admin: adminAddr, DestinationAccount: destAddr}
				return s.Keeper.SweepDustAfterEnd(msg)
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority address (hex)")
	cmd.Flags().StringVar(&destination, "destination", "", "sweep destination token account (hex)")
	cmd.Flags().Int64Var(&advance, "advance", 0, "seconds to advance the session clock before sweeping")
	return cmd
}
