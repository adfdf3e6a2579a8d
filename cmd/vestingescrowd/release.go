package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokenize-x/vesting-escrow/cmd/vestingescrowd/session"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

func newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Release vested tokens to one or more recipients",
	}
	cmd.AddCommand(newReleaseToCmd(), newReleaseBatchCmd())
	return cmd
}

func newReleaseToCmd() *cobra.Command {
	var distributor, wallet, destination string
	var advance int64

	cmd := &cobra.Command{
		Use:   "to",
		Short: "Release to a single recipient",
		RunE: func(cmd *cobra.Command, args []string) error {
			distAddr, err := parseAddress(distributor)
			if err != nil {
				return err
			}
			walletAddr, err := parseAddress(wallet)
			if err != nil {
				return err
			}
			destAddr, err := parseAddress(destination)
			if err != nil {
				return err
			}
			return withSession(cmd, func(s *session.Session) error {
				s.Clock.Advance(advance)
				msg := &types.MsgReleaseToRecipient{
					Distributor:        distAddr,
					Wallet:             walletAddr,
					DestinationAccount: destAddr,
				}
				return s.Keeper.ReleaseToRecipient(msg)
			})
		},
	}
	cmd.Flags().StringVar(&distributor, "distributor", "", "distributor authority address (hex)")
	cmd.Flags().StringVar(&wallet, "wallet", "", "recipient wallet address (hex)")
	cmd.Flags().StringVar(&destination, "destination", "", "recipient's associated token account (hex)")
	cmd.Flags().Int64Var(&advance, "advance", 0, "seconds to advance the session clock before releasing")
	return cmd
}

func newReleaseBatchCmd() *cobra.Command {
	var distributor string
	var wallets, destinations []string
	var advance int64

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Release to up to 5 recipients in one call",
		RunE: func(cmd *cobra.Command, args []string) error {
			distAddr, err := parseAddress(distributor)
			if err != nil {
				return err
			}
			if len(wallets) != len(destinations) {
				return fmt.Errorf("--wallet and --destination must be supplied the same number of times")
			}
			walletAddrs := make([]types.Address, len(wallets))
			for i, w := range wallets {
				if walletAddrs[i], err = parseAddress(w); err != nil {
					return err
				}
			}
			destAddrs := make([]types.Address, len(destinations))
			for i, d := range destinations {
				if destAddrs[i], err = parseAddress(d); err != nil {
					return err
				}
			}
			return withSession(cmd, func(s *session.Session) error {
				s.Clock.Advance(advance)
				msg := &types.MsgBatchRelease{
					Distributor:         distAddr,
					Wallets:             walletAddrs,
					DestinationAccounts: destAddrs,
				}
				return s.Keeper.BatchRelease(msg)
			})
		},
	}
	cmd.Flags().StringVar(&distributor, "distributor", "", "distributor authority address (hex)")
	cmd.Flags().StringArrayVar(&wallets, "wallet", nil, "recipient wallet address (hex); repeatable, max 5")
	cmd.Flags().StringArrayVar(&destinations, "destination", nil, "recipient's associated token account (hex); repeatable, matched by position")
	cmd.Flags().Int64Var(&advance, "advance", 0, "seconds to advance the session clock before releasing")
	return cmd
}
