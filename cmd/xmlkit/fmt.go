package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halden/xmlkit/xml"
)

func newFmtCmd() *cobra.Command {
	var (
		indentWidth int
		canonical   bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Pretty-print (or canonicalize) an XML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readAndParse(args[0])
			if err != nil {
				return err
			}

			var out []byte
			if canonical {
				out, err = xml.Canonicalize(doc)
				if err != nil {
					return err
				}
			} else {
				out = []byte(doc.String(xml.WithPrettyPrint(true), xml.WithIndentWidth(indentWidth)))
			}

			if output == "" {
				fmt.Println(string(out))
				return nil
			}
			return os.WriteFile(output, out, 0o644)
		},
	}

	cmd.Flags().IntVar(&indentWidth, "indent-width", 2, "spaces per indentation level")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "emit canonical form instead of pretty-printing")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
