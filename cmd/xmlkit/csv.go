package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halden/xmlkit/xml"
)

func newCSVCmd() *cobra.Command {
	var (
		path   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "csv <file> --path=<query>",
		Short: "Flatten a repeated XML element into CSV rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("xmlkit csv: --path is required, e.g. --path=//row")
			}
			doc, err := readAndParse(args[0])
			if err != nil {
				return err
			}

			rows, err := xml.QueryAll(doc.Root(), path)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("xmlkit csv: no nodes matched %q", path)
			}

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				return xml.ToCSV(f, rows)
			}
			return xml.ToCSV(w, rows)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "query path selecting the repeated row elements")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
