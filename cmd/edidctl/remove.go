package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var removeOutput outputFlags

func init() {
	cmd := newRemoveCmd()
	removeOutput.bind(cmd)
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <file.reg>",
		Short: "Write a .reg file that deletes the EDID_OVERRIDE",
		Long: `The remove command writes a .reg file that deletes the block 0
EDID_OVERRIDE value of the monitor found in the export, restoring the EDID
the monitor reports itself.

Example:
  edidctl remove monitor.reg
  edidctl remove monitor.reg --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removeOutput.capture(cmd)
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) error {
	if removeOutput.stdout && removeOutput.out != "" {
		return fmt.Errorf("cannot specify both --out and --stdout")
	}
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	doc, err := s.RemovalDocument(removeOutput.exportOptions())
	if err != nil {
		return fmt.Errorf("failed to render removal: %w", err)
	}
	outPath := removeOutput.path(s.RemovalFileName())
	if err := removeOutput.write(outPath, doc); err != nil {
		return err
	}
	if removeOutput.stdout {
		return nil
	}

	if jsonOut {
		return printJSON(map[string]any{
			"input":   args[0],
			"device":  s.DevicePath(),
			"output":  outPath,
			"success": true,
		})
	}
	printInfo("Wrote %s\n", outPath)
	return nil
}

// siblingPath returns name in the directory of path.
func siblingPath(path, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}
