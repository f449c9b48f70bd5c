package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/edidkit/pkg/edid"
	"github.com/joshuapare/edidkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file.reg>",
		Short: "Show the EDID fields read from a registry export",
		Long: `The info command loads a monitor's EDID from a registry export and
displays its resolution, physical size and preferred mode image size. It
warns when the EDID checksum is wrong or an EDID_OVERRIDE is already set.

Example:
  edidctl info monitor.reg
  edidctl info monitor.reg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type infoResult struct {
	File             string                  `json:"file"`
	Info             edid.Info               `json:"info"`
	ChecksumMismatch bool                    `json:"checksumMismatch"`
	OverridePresent  bool                    `json:"overridePresent"`
	Diagnostics      *types.DiagnosticReport `json:"diagnostics"`
}

func runInfo(args []string) error {
	path := args[0]
	s, err := openSession(path)
	if err != nil {
		return err
	}
	info := s.Info()

	if jsonOut {
		return printJSON(infoResult{
			File:             path,
			Info:             info,
			ChecksumMismatch: s.ChecksumMismatch(),
			OverridePresent:  s.OverridePresent(),
			Diagnostics:      s.Diagnostics(),
		})
	}

	printInfo("\n%s\n", render(headerStyle, "EDID Information:"))
	printInfo("  File: %s\n", path)
	printInfo("  Device: %s\n", info.DevicePath)
	printInfo("  Version: %d.%d\n", info.Version, info.Revision)
	printInfo("  Resolution: %dx%d\n", info.PixelH, info.PixelV)
	if info.PhysicalHCm == 0 {
		printInfo("  Physical size: undefined\n")
	} else {
		printInfo("  Physical size: %dx%d cm (%.1f in)\n", info.PhysicalHCm, info.PhysicalVCm, info.DiagonalInches)
	}
	printInfo("  Preferred mode image size: %dx%d mm\n", info.ImageHMm, info.ImageVMm)
	if info.ChecksumValid {
		printInfo("  Checksum: %s\n", render(okStyle, "ok"))
	} else {
		printInfo("  Checksum: %s\n", render(warnStyle, "MISMATCH"))
	}

	if s.OverridePresent() {
		printInfo("\n%s\n", render(warnStyle, "An EDID_OVERRIDE is already installed for this monitor."))
	}
	if report := s.Diagnostics(); report.HasAnyIssues() {
		printInfo("\n%s\n", render(headerStyle, "Diagnostics:"))
		printInfo("%s", report.FormatTextCompact())
	}
	return nil
}
