package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adequatesystems/mochimo-wallet/internal/meshapi"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Format a tag_resolve Mesh API request",
	Long: `Format the /call request body that resolves a persistent 20-byte
account tag to its current 40-byte ledger address via the Mesh API's
tag_resolve method. Does not perform the HTTP call itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tagHex, _ := cmd.Flags().GetString("tag")
		if tagHex == "" {
			return fmt.Errorf("--tag is required")
		}

		raw, err := hex.DecodeString(strings.TrimPrefix(tagHex, "0x"))
		if err != nil || len(raw) != 20 {
			return fmt.Errorf("--tag must be a 20-byte hex account tag")
		}
		var tag [20]byte
		copy(tag[:], raw)

		req := meshapi.NewTagResolveRequest(tag)

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(req)
	},
}

func init() {
	resolveCmd.Flags().String("tag", "", "Account tag, 20-byte hex (required)")
	resolveCmd.MarkFlagRequired("tag")
	rootCmd.AddCommand(resolveCmd)
}
