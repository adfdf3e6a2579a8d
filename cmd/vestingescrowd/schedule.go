package main

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/tokenize-x/vesting-escrow/cmd/vestingescrowd/session"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Configure and inspect the vesting schedule",
	}
	cmd.AddCommand(
		newScheduleInitCmd(),
		newScheduleAddRecipientsCmd(),
		newScheduleDepositCmd(),
		newScheduleSetDistributorCmd(),
		newSchedulePauseCmd(),
		newScheduleUnpauseCmd(),
		newScheduleRevokeCmd(),
		newScheduleShowCmd(),
	)
	return cmd
}

func withSession(cmd *cobra.Command, fn func(s *session.Session) error) error {
	path := statePath(cmd)
	snap, err := session.Load(path)
	if err != nil {
		return err
	}
	sess := session.Open(snap)
	if err := fn(sess); err != nil {
		return err
	}
	if err := session.Save(path, sess.Snapshot()); err != nil {
		return err
	}
	return printJSON(sess.Snapshot())
}

func newScheduleInitCmd() *cobra.Command {
	var admin, mint, distributor string
	var startTS int64
	var totalSupply string
	var now int64

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the singleton schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminAddr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			mintAddr, err := parseAddress(mint)
			if err != nil {
				return err
			}
			distAddr, err := parseAddress(distributor)
			if err != nil {
				return err
			}
			supply, err := parseAmount(totalSupply)
			if err != nil {
				return err
			}
			return withSession(cmd, func(s *session.Session) error {
				s.Clock.Set(now)
				msg := &types.MsgInitializeSchedule{
					Admin:       adminAddr,
					Mint:        mintAddr,
					Distributor: distAddr,
					StartTS:     startTS,
					TotalSupply: supply,
				}
				return s.Keeper.InitializeSchedule(msg)
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority address (hex)")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint address (hex)")
	cmd.Flags().StringVar(&distributor, "distributor", "", "distributor authority address (hex)")
	cmd.Flags().Int64Var(&startTS, "start-ts", 0, "schedule start timestamp (UTC epoch seconds)")
	cmd.Flags().StringVar(&totalSupply, "total-supply", "", "total token supply")
	cmd.Flags().Int64Var(&now, "now", 0, "wall clock time for this session (UTC epoch seconds)")
	for _, f := range []string{"admin", "mint", "distributor", "start-ts", "total-supply"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newScheduleAddRecipientsCmd() *cobra.Command {
	var admin string
	var wallets []string
	var amounts []string
	var seal bool

	cmd := &cobra.Command{
		Use:   "add-recipients",
		Short: "Append recipients to the bounded list",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminAddr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			if len(wallets) != len(amounts) {
				return fmt.Errorf("--wallet and --amount must be supplied the same number of times")
			}
			walletAddrs := make([]types.Address, len(wallets))
			for i, w := range wallets {
				walletAddrs[i], err = parseAddress(w)
				if err != nil {
					return err
				}
			}
			amountsInt, err := parseAmounts(amounts)
			if err != nil {
				return err
			}

			return withSession(cmd, func(s *session.Session) error {
				msg := &types.MsgAddRecipients{
					Admin:   adminAddr,
					Wallets: walletAddrs,
					Amounts: amountsInt,
					Seal:    seal,
				}
				return s.Keeper.AddRecipients(msg)
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority address (hex)")
	cmd.Flags().StringArrayVar(&wallets, "wallet", nil, "recipient wallet address (hex); repeatable")
	cmd.Flags().StringArrayVar(&amounts, "amount", nil, "recipient allocation amount; repeatable, matched by position to --wallet")
	cmd.Flags().BoolVar(&seal, "seal", false, "seal the recipient list after this append")
	_ = cmd.MarkFlagRequired("admin")
	return cmd
}

func newScheduleDepositCmd() *cobra.Command {
	var admin, source, amount string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Fund the vault before the schedule starts",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminAddr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			sourceAddr, err := parseAddress(source)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}
			return withSession(cmd, func(s *session.Session) error {
				msg := &types.MsgDepositTokens{Admin: adminAddr, SourceAccount: sourceAddr, Amount: amt}
				return s.Keeper.DepositTokens(msg)
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority address (hex)")
	cmd.Flags().StringVar(&source, "source", "", "admin's source token account (hex)")
	cmd.Flags().StringVar(&amount, "amount", "", "deposit amount")
	return cmd
}

func newScheduleSetDistributorCmd() *cobra.Command {
	var admin, newDistributor string
	cmd := &cobra.Command{
		Use:   "set-distributor",
		Short: "Rotate the distributor authority",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminAddr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			distAddr, err := parseAddress(newDistributor)
			if err != nil {
				return err
			}
			return withSession(cmd, func(s *session.Session) error {
				return s.Keeper.SetDistributor(&types.MsgSetDistributor{Admin: adminAddr, NewDistributor: distAddr})
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority address (hex)")
	cmd.Flags().StringVar(&newDistributor, "new-distributor", "", "new distributor address (hex)")
	return cmd
}

func newSchedulePauseCmd() *cobra.Command {
	var admin string
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause release operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminAddr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			return withSession(cmd, func(s *session.Session) error {
				return s.Keeper.Pause(&types.MsgPause{Admin: adminAddr})
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority address (hex)")
	return cmd
}

func newScheduleUnpauseCmd() *cobra.Command {
	var admin string
	cmd := &cobra.Command{
		Use:   "unpause",
		Short: "Resume release operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminAddr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			return withSession(cmd, func(s *session.Session) error {
				return s.Keeper.Unpause(&types.MsgUnpause{Admin: adminAddr})
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority address (hex)")
	return cmd
}

func newScheduleRevokeCmd() *cobra.Command {
	var admin, wallet string
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a recipient",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminAddr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			walletAddr, err := parseAddress(wallet)
			if err != nil {
				return err
			}
			return withSession(cmd, func(s *session.Session) error {
				return s.Keeper.RevokeRecipient(&types.MsgRevokeRecipient{Admin: adminAddr, Wallet: walletAddr})
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority address (hex)")
	cmd.Flags().StringVar(&wallet, "wallet", "", "recipient wallet address (hex)")
	return cmd
}

func newScheduleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current session snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := session.Load(statePath(cmd))
			if err != nil {
				return err
			}
			return printJSON(snap)
		},
	}
}

func parseAmounts(raw []string) ([]sdkmath.Int, error) {
	out := make([]sdkmath.Int, len(raw))
	for i, s := range raw {
		amt, err := parseAmount(s)
		if err != nil {
			return nil, err
		}
		out[i] = amt
	}
	return out, nil
}
