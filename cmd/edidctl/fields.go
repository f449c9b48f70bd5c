package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/edidkit/internal/format"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "fields",
		Short: "List the EDID fields edidctl reads and writes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields()
		},
	})
}

type fieldRow struct {
	Name        string `json:"name"`
	Offset      int    `json:"offset"`
	Size        int    `json:"size"`
	Mask        string `json:"mask"`
	Description string `json:"description"`
}

func runFields() error {
	rows := make([]fieldRow, len(format.Fields))
	for i, f := range format.Fields {
		rows[i] = fieldRow{
			Name:        f.Name,
			Offset:      f.Offset,
			Size:        f.Size,
			Mask:        "0x" + format.ByteHex(int(f.Mask)),
			Description: f.Description,
		}
	}
	if jsonOut {
		return printJSON(rows)
	}

	printInfo("%s\n", render(headerStyle, "OFFSET  SIZE  MASK  NAME                DESCRIPTION"))
	for _, r := range rows {
		printInfo("0x%02X    %4d  %s  %-18s  %s\n", r.Offset, r.Size, r.Mask, r.Name, r.Description)
	}
	return nil
}
