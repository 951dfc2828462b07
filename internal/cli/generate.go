package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mochimo "github.com/adequatesystems/mochimo-wallet"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new mnemonic phrase",
	Long: `Generate a new cryptographically secure BIP-39 mnemonic phrase. The
mnemonic's seed is reduced to this wallet's 32-byte master seed, from
which every account and WOTS+ keypair is derived.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bits, _ := cmd.Flags().GetInt("bits")

		if bits != 128 && bits != 160 && bits != 192 && bits != 224 && bits != 256 {
			return fmt.Errorf("invalid entropy bits: %d (must be 128, 160, 192, 224, or 256)", bits)
		}

		mnemonic, err := mochimo.NewMnemonic(bits)
		if err != nil {
			return fmt.Errorf("failed to generate mnemonic: %w", err)
		}

		fmt.Printf("Generated mnemonic phrase:\n%s\n", mnemonic)
		fmt.Printf("\nEntropy: %d bits\n", bits)
		fmt.Printf("Words: %d\n", len(strings.Fields(mnemonic)))

		fmt.Printf("\nSECURITY WARNING:\n")
		fmt.Printf("Store this mnemonic phrase safely and securely.\n")
		fmt.Printf("Anyone with access to this phrase can control every account derived from it.\n")

		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("bits", "b", 256, "Entropy bits (128, 160, 192, 224, or 256)")
	rootCmd.AddCommand(generateCmd)
}
