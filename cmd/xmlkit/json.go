package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halden/xmlkit/xml"
)

func newJSONCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "json <file>",
		Short: "Convert an XML document (or a query match within it) to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readAndParse(args[0])
			if err != nil {
				return err
			}

			n := doc.RootElement()
			if path != "" {
				n, err = xml.Query(doc.Root(), path)
				if err != nil {
					return err
				}
			}

			out, err := xml.ToJSON(n)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "query path selecting the node to convert (default: the document root)")
	return cmd
}
