package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halden/xmlkit/xml"
)

func newQueryCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "query <file> <path>",
		Short: "Run a query path against an XML document and print the matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readAndParse(args[0])
			if err != nil {
				return err
			}
			path := args[1]

			if !all {
				n, err := xml.Query(doc.Root(), path)
				if err != nil {
					return err
				}
				fmt.Println(n.String())
				return nil
			}

			matches, err := xml.QueryAll(doc.Root(), path)
			if err != nil {
				return err
			}
			for _, n := range matches {
				fmt.Println(n.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print every match instead of only the first")
	return cmd
}
