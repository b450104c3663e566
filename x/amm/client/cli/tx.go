package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdInitializePlatform(),
		CmdPausePlatform(),
		CmdResumePlatform(),
		CmdUpdateFeeRate(),
		CmdWithdrawProtocolFees(),
		CmdCreatePair(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
	)

	return ammTxCmd
}

// CmdInitializePlatform returns a CLI command handler for platform initialization
func CmdInitializePlatform() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-platform [base-denom] [protocol-fee-bps]",
		Short: "Initialize the AMM platform",
		Long: `Initialize the AMM platform with a base asset and protocol fee rate.
The signer becomes the platform admin.

Example:
  $ mojod tx amm init-platform umojo 100 --from admin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeBps, err := cast.ToUint32E(args[1])
			if err != nil {
				return fmt.Errorf("invalid protocol fee bps: %w", err)
			}

			msg := types.NewMsgInitializePlatform(clientCtx.GetFromAddress().String(), args[0], feeBps)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPausePlatform returns a CLI command handler for pausing the platform
func CmdPausePlatform() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause all trading and liquidity operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgPausePlatform(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResumePlatform returns a CLI command handler for resuming the platform
func CmdResumePlatform() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume trading after a pause",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgResumePlatform(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateFeeRate returns a CLI command handler for updating the protocol fee
func CmdUpdateFeeRate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-fee-rate [new-fee-bps]",
		Short: "Update the protocol fee rate in basis points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeBps, err := cast.ToUint32E(args[0])
			if err != nil {
				return fmt.Errorf("invalid fee bps: %w", err)
			}

			msg := types.NewMsgUpdateFeeRate(clientCtx.GetFromAddress().String(), feeBps)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawProtocolFees returns a CLI command handler for treasury withdrawals
func CmdWithdrawProtocolFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-fees [recipient] [denom] [amount]",
		Short: "Withdraw accrued protocol fees to a recipient",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[2])
			}

			msg := types.NewMsgWithdrawProtocolFees(clientCtx.GetFromAddress().String(), args[0], args[1], amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreatePair returns a CLI command handler for creating a trading pair
func CmdCreatePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pair [base-denom] [paired-denom] [fee-rate-bps]",
		Short: "Create a new trading pair against the platform base asset",
		Long: `Create a new trading pair. The base denom must equal the platform's
base asset; a fee rate of 0 uses the module default.

Example:
  $ mojod tx amm create-pair umojo uusdt 30 --from admin`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeBps, err := cast.ToUint32E(args[2])
			if err != nil {
				return fmt.Errorf("invalid fee rate bps: %w", err)
			}

			msg := types.NewMsgCreatePair(clientCtx.GetFromAddress().String(), args[0], args[1], feeBps)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for depositing into a pair
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pair-id] [base-amount] [paired-amount]",
		Short: "Add liquidity to an existing pair",
		Long: `Deposit both assets of a pair in exchange for LP tokens. Amounts
should match the current pool ratio; the excess side is donated to the pool.

Example:
  $ mojod tx amm add-liquidity 1 1000000 4000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}
			baseAmount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid base amount: %s (must be integer)", args[1])
			}
			pairedAmount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid paired amount: %s (must be integer)", args[2])
			}

			msg := types.NewMsgAddLiquidity(clientCtx.GetFromAddress().String(), pairID, baseAmount, pairedAmount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for withdrawing from a pair
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pair-id] [lp-amount] [min-base-out] [min-paired-out]",
		Short: "Burn LP tokens for a pro-rata share of the reserves",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}
			lpAmount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid lp amount: %s (must be integer)", args[1])
			}
			minBaseOut, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid min base out: %s (must be integer)", args[2])
			}
			minPairedOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min paired out: %s (must be integer)", args[3])
			}

			msg := types.NewMsgRemoveLiquidity(clientCtx.GetFromAddress().String(), pairID, lpAmount, minBaseOut, minPairedOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping against a pair
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pair-id] [denom-in] [amount-in] [min-amount-out]",
		Short: "Swap one side of a pair for the other",
		Long: `Swap denom-in for the other asset of the pair along the
constant-product curve.

Example:
  $ mojod tx amm swap 1 umojo 1000000 950000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}
			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount in: %s (must be integer)", args[2])
			}
			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min amount out: %s (must be integer)", args[3])
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), pairID, args[1], amountIn, minAmountOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
