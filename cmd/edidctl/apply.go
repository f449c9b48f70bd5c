package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/edidkit/internal/format"
)

var (
	applyEdit    editFlags
	applyOutput  outputFlags
	applyRemoval bool
)

func init() {
	cmd := newApplyCmd()
	applyEdit.bind(cmd)
	applyOutput.bind(cmd)
	cmd.Flags().BoolVar(&applyRemoval, "removal", false, "Also write the matching removal .reg file")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <file.reg>",
		Short: "Write an EDID_OVERRIDE .reg file with a new screen size",
		Long: `The apply command derives a new physical screen size from a diagonal
and the pixel aspect ratio, rewrites the EDID and writes a .reg file that
installs it as an EDID_OVERRIDE. Import the file and restart the display
driver (or reboot) for Windows to pick it up.

Example:
  edidctl apply monitor.reg --diagonal 21.5
  edidctl apply monitor.reg --diagonal 27 --hpixel 2560 --vpixel 1440 --ptm
  edidctl apply monitor.reg --diagonal 21.5 --removal
  edidctl apply monitor.reg --diagonal 21.5 --stdout --out-encoding UTF-16LE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyEdit.capture(cmd)
			applyOutput.capture(cmd)
			return runApply(args)
		},
	}
	return cmd
}

func runApply(args []string) error {
	if applyOutput.stdout && (applyOutput.out != "" || applyRemoval) {
		return fmt.Errorf("cannot combine --stdout with --out or --removal")
	}

	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	req := applyEdit.request(s)
	printVerbose("Diagonal: %g in, aspect %dx%d, PTM: %t\n", req.DiagonalInches, req.HPixel, req.VPixel, req.SetPreferredModeSize)
	b, err := s.Apply(req)
	if err != nil {
		return fmt.Errorf("failed to apply size: %w", err)
	}

	opts := applyOutput.exportOptions()
	doc, err := s.OverrideDocument(opts)
	if err != nil {
		return fmt.Errorf("failed to render override: %w", err)
	}
	outPath := applyOutput.path(s.OverrideFileName())
	if err := applyOutput.write(outPath, doc); err != nil {
		return err
	}

	var removalPath string
	if applyRemoval {
		removal, err := s.RemovalDocument(opts)
		if err != nil {
			return fmt.Errorf("failed to render removal: %w", err)
		}
		removalPath = applyOutput.path(s.RemovalFileName())
		if applyOutput.out != "" {
			removalPath = siblingPath(applyOutput.out, s.RemovalFileName())
		}
		if err := applyOutput.write(removalPath, removal); err != nil {
			return err
		}
	}

	if applyOutput.stdout {
		return nil
	}

	h, v := format.PhysicalSizeCm(b)
	if jsonOut {
		result := map[string]any{
			"input":       args[0],
			"device":      s.DevicePath(),
			"output":      outPath,
			"physicalHCm": h,
			"physicalVCm": v,
			"changed":     s.ChangedOffsets(),
			"success":     true,
		}
		if removalPath != "" {
			result["removal"] = removalPath
		}
		return printJSON(result)
	}

	printInfo("New physical size: %dx%d cm (%.1f in)\n", h, v, s.Info().DiagonalInches)
	printInfo("Wrote %s\n", outPath)
	if removalPath != "" {
		printInfo("Wrote %s\n", removalPath)
	}
	if s.OverridePresent() {
		printInfo("%s\n", render(warnStyle, "Note: an EDID_OVERRIDE is already installed; importing replaces it."))
	}
	return nil
}
