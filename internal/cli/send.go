package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mochimo "github.com/adequatesystems/mochimo-wallet"
	"github.com/adequatesystems/mochimo-wallet/internal/meshapi"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Build and sign a transaction",
	Long: `Build and sign a single-destination Mochimo transaction and print the
result as a Mesh API submit request.

This command only builds and signs; it never submits anything over the
network. Pipe its output to an HTTP client against the Mesh API's
/construction/submit endpoint once you have confirmed the transaction.

The spend index and change index must never have been used to sign a
previous transaction for this account: WOTS+ keypairs are strictly
single-use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mnemonic, _ := cmd.Flags().GetString("mnemonic")
		account, _ := cmd.Flags().GetUint32("account")
		spendIdx, _ := cmd.Flags().GetUint32("spend-index")
		changeIdx, _ := cmd.Flags().GetUint32("change-index")
		balance, _ := cmd.Flags().GetUint64("balance")
		amount, _ := cmd.Flags().GetUint64("amount")
		fee, _ := cmd.Flags().GetUint64("fee")
		dst, _ := cmd.Flags().GetString("dst")
		memo, _ := cmd.Flags().GetString("memo")

		if mnemonic == "" || dst == "" {
			return fmt.Errorf("--mnemonic and --dst are required")
		}

		dstTagBytes, err := hex.DecodeString(strings.TrimPrefix(dst, "0x"))
		if err != nil || len(dstTagBytes) != 20 {
			return fmt.Errorf("--dst must be a 20-byte hex account tag")
		}
		var dstTag [20]byte
		copy(dstTag[:], dstTagBytes)

		w, err := mochimo.NewFromMnemonic(mnemonic)
		if err != nil {
			return fmt.Errorf("failed to create wallet from mnemonic: %w", err)
		}

		txn, err := w.Send(mochimo.SendParams{
			AccountIndex:   account,
			SpendIndex:     spendIdx,
			ChangeIndex:    changeIdx,
			Balance:        balance,
			Amount:         amount,
			Fee:            fee,
			DestinationTag: dstTag,
			Memo:           memo,
		})
		if err != nil {
			return fmt.Errorf("failed to build transaction: %w", err)
		}

		req := meshapi.NewSubmitRequest(txn.Bytes[:])

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(req); err != nil {
			return fmt.Errorf("failed to encode submit request: %w", err)
		}

		fmt.Fprintf(os.Stderr, "\nChange total: %d nanoMCM\n", txn.ChangeAmount)
		return nil
	},
}

func init() {
	sendCmd.Flags().StringP("mnemonic", "m", "", "Mnemonic phrase (required)")
	sendCmd.Flags().Uint32("account", 0, "Source account index")
	sendCmd.Flags().Uint32("spend-index", 0, "Spend index to sign with (single-use)")
	sendCmd.Flags().Uint32("change-index", 1, "Spend index for the change keypair (single-use)")
	sendCmd.Flags().Uint64("balance", 0, "Current source account balance in nanoMCM")
	sendCmd.Flags().Uint64("amount", 0, "Amount to send in nanoMCM")
	sendCmd.Flags().String("dst", "", "Destination account tag, 20-byte hex (required)")
	sendCmd.Flags().String("memo", "", "Optional transaction memo")

	sendCmd.MarkFlagRequired("mnemonic")
	sendCmd.MarkFlagRequired("dst")
	rootCmd.AddCommand(sendCmd)
}
