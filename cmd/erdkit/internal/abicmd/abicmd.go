// Package abicmd exposes the argument codec on the command line: building
// call data from native arguments, decoding returned data against an
// endpoint's outputs and normalizing type expressions.
package abicmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erdkit/erdkit/abi"
	"github.com/erdkit/erdkit/common/check"
	"github.com/erdkit/erdkit/core"
)

const abiFlag = "abi"

func GetCommand() *cobra.Command {
	abiCmd := &cobra.Command{
		Use:          "abi",
		Short:        "Encode and decode contract call arguments",
		SilenceUsage: true,
	}

	var path string

	encodeCmd := &cobra.Command{
		Use:          "encode [endpoint] [args...]",
		Short:        "Build call data for an endpoint from native arguments",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, err := loadEndpoint(path, args[0])
			if err != nil {
				return err
			}

			native, err := nativeArgs(endpoint, args[1:])
			if err != nil {
				return err
			}

			typed, err := abi.NativeToTypedValues(native, endpoint)
			if err != nil {
				return err
			}

			data, err := abi.FunctionCallData(endpoint.Name, typed...)
			if err != nil {
				return err
			}

			fmt.Println(data)
			return nil
		},
	}

	decodeCmd := &cobra.Command{
		Use:          "decode [endpoint] [data]",
		Short:        "Decode returned data against an endpoint's outputs",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, err := loadEndpoint(path, args[0])
			if err != nil {
				return err
			}

			types, err := endpoint.OutputTypes()
			if err != nil {
				return err
			}

			var parts []string
			if args[1] != "" {
				parts = strings.Split(args[1], core.ArgsSeparator)
			}

			values, err := abi.StringsToValues(parts, types)
			if err != nil {
				return err
			}

			for _, value := range values {
				fmt.Printf("%s: %s\n", value.Type(), value)
			}
			return nil
		},
	}

	parseCmd := &cobra.Command{
		Use:          "parse [type-expression]",
		Short:        "Parse a type expression and print its canonical form",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := abi.MapExpression(args[0])
			if err != nil {
				return err
			}
			fmt.Println(t.Name())
			return nil
		},
	}

	// The parse subcommand works without a contract definition, so the flag
	// lives on the two commands that need it.
	for _, cmd := range []*cobra.Command{encodeCmd, decodeCmd} {
		cmd.Flags().StringVar(
			&path,
			abiFlag,
			"",
			"The path to the contract definition file",
		)
		check.PanicIfErr(cmd.MarkFlagRequired(abiFlag))
	}

	abiCmd.AddCommand(encodeCmd)
	abiCmd.AddCommand(decodeCmd)
	abiCmd.AddCommand(parseCmd)

	return abiCmd
}

func loadEndpoint(path, name string) (abi.EndpointDefinition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return abi.EndpointDefinition{}, err
	}

	definition, err := abi.LoadContractDefinition(content)
	if err != nil {
		return abi.EndpointDefinition{}, err
	}
	return definition.EndpointByName(name)
}

// nativeArgs turns command line strings into inference inputs. Numbers,
// addresses and text pass through as strings; booleans need parsing up front.
func nativeArgs(endpoint abi.EndpointDefinition, args []string) ([]any, error) {
	types, err := endpoint.InputTypes()
	if err != nil {
		return nil, err
	}

	native := make([]any, len(args))
	for i, arg := range args {
		native[i] = any(arg)
		if i < len(types) && types[i].Kind() == abi.KindBool {
			b, err := strconv.ParseBool(arg)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			native[i] = b
		}
	}
	return native, nil
}
