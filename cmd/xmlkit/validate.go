package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halden/xmlkit/xml"
)

func newValidateCmd() *cobra.Command {
	var required []string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check an XML document against a set of required query paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readAndParse(args[0])
			if err != nil {
				return err
			}

			var rules []xml.Rule
			for _, p := range required {
				rules = append(rules, xml.Rule{Path: p, Required: true})
			}

			violations := xml.Validate(doc.Root(), rules)
			if len(violations) == 0 {
				fmt.Println("OK")
				return nil
			}
			for _, v := range violations {
				fmt.Println(v)
			}
			return fmt.Errorf("xmlkit validate: %d violation(s)", len(violations))
		},
	}

	cmd.Flags().StringArrayVar(&required, "require", nil, "query path that must resolve to a node (repeatable)")
	return cmd
}
