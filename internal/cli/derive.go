package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	mochimo "github.com/adequatesystems/mochimo-wallet"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive accounts from a mnemonic",
	Long: `Derive Mochimo accounts from a BIP-39 mnemonic phrase.

Each account index yields a persistent account tag and a first-deposit
(implicit) ledger address. Spend keypairs are derived separately per
spend index via the "send" command, never reused across transactions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mnemonic, _ := cmd.Flags().GetString("mnemonic")
		count, _ := cmd.Flags().GetInt("count")
		start, _ := cmd.Flags().GetUint32("start")

		if mnemonic == "" {
			return fmt.Errorf("mnemonic phrase is required")
		}

		w, err := mochimo.NewFromMnemonic(mnemonic)
		if err != nil {
			return fmt.Errorf("failed to create wallet from mnemonic: %w", err)
		}

		fmt.Printf("Deriving %d account(s) starting at index %d:\n\n", count, start)

		for i := 0; i < count; i++ {
			idx := start + uint32(i)

			account, err := w.Derive(idx)
			if err != nil {
				return fmt.Errorf("failed to derive account %d: %w", idx, err)
			}

			tagStr, err := account.TagString()
			if err != nil {
				return fmt.Errorf("failed to encode account tag: %w", err)
			}

			fmt.Printf("Account %d:\n", idx)
			fmt.Printf("  Tag:             %s\n", tagStr)
			fmt.Printf("  Tag (hex):       %x\n", account.Tag)
			fmt.Printf("  Deposit address: %x\n", account.DepositAddress)
			fmt.Println()
		}

		return nil
	},
}

func init() {
	deriveCmd.Flags().StringP("mnemonic", "m", "", "Mnemonic phrase (required)")
	deriveCmd.Flags().IntP("count", "c", 1, "Number of accounts to derive")
	deriveCmd.Flags().Uint32P("start", "s", 0, "Starting account index")

	deriveCmd.MarkFlagRequired("mnemonic")
	rootCmd.AddCommand(deriveCmd)
}
