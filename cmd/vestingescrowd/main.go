// Command vestingescrowd is a cobra-based dispatch layer for the
// vesting-escrow core. Each invocation constructs a fresh in-process
// Keeper wired to the reference collaborators in testutil/vestingtest,
// applies the requested operation, and prints the result as JSON; an
// error is printed as plain text on stderr. Real persistence and signing are host-runtime
// responsibilities this tool does not attempt to replicate (see
// DESIGN.md).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the vestingescrowd command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vestingescrowd",
		Short: "Vesting-escrow reference dispatch CLI",
		Long: `vestingescrowd drives the vesting-escrow core's eleven operations
against an in-process Keeper and in-memory reference collaborators.
Session state (the schedule, recipients, and vault balances) lives in
a JSON snapshot file so that a sequence of invocations can build up a
schedule the way a real distributor would over many transactions.`,
	}

	cmd.PersistentFlags().String("state", "vestingescrow.state.json", "path to the session state snapshot")
	cmd.PersistentFlags().String("config", "", "config file path; accepted but not read")
	viperBindOrPanic(cmd)

	cmd.AddCommand(
		newScheduleCmd(),
		newReleaseCmd(),
		newQuoteCmd(),
		newAdminCmd(),
	)
	return cmd
}

func viperBindOrPanic(cmd *cobra.Command) {
	if err := viper.BindPFlag("state", cmd.PersistentFlags().Lookup("state")); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("VESTINGESCROWD")
	viper.AutomaticEnv()
}

func statePath(cmd *cobra.Command) string {
	if cmd.Flags().Changed("state") {
		p, _ := cmd.Flags().GetString("state")
		return p
	}
	return viper.GetString("state")
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newQueryID() string {
	return uuid.NewString()
}
