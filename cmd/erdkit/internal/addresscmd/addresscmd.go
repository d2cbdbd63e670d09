// Package addresscmd converts account addresses between their bech32 and
// raw hex forms.
package addresscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erdkit/erdkit/core"
)

func GetCommand() *cobra.Command {
	addressCmd := &cobra.Command{
		Use:          "address",
		Short:        "Convert account addresses between representations",
		SilenceUsage: true,
	}

	toHexCmd := &cobra.Command{
		Use:          "to-hex [bech32]",
		Short:        "Print the raw hex form of a bech32 address",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := core.NewAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			fmt.Println(addr.Hex())
			return nil
		},
	}

	toBech32Cmd := &cobra.Command{
		Use:          "to-bech32 [hex]",
		Short:        "Print the bech32 form of a raw hex address",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := core.NewAddressFromHex(args[0])
			if err != nil {
				return err
			}
			fmt.Println(addr.Bech32())
			return nil
		},
	}

	addressCmd.AddCommand(toHexCmd)
	addressCmd.AddCommand(toBech32Cmd)

	return addressCmd
}
