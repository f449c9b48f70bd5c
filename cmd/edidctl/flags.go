package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/edidkit/internal/writer"
	"github.com/joshuapare/edidkit/pkg/edid"
)

// editFlags are the size flags shared by apply and hex.
type editFlags struct {
	diagonal   float64
	hPixel     int
	vPixel     int
	ptm        bool
	ptmChanged bool
}

func (f *editFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.diagonal, "diagonal", 0, "New screen diagonal in inches (default: current)")
	cmd.Flags().IntVar(&f.hPixel, "hpixel", 0, "Horizontal pixels used for the aspect ratio (default: preferred mode)")
	cmd.Flags().IntVar(&f.vPixel, "vpixel", 0, "Vertical pixels used for the aspect ratio (default: preferred mode)")
	cmd.Flags().BoolVar(&f.ptm, "ptm", false, "Also set the preferred timing mode image size")
}

// capture records which flags the user set explicitly.
func (f *editFlags) capture(cmd *cobra.Command) {
	f.ptmChanged = cmd.Flags().Changed("ptm")
}

// set reports whether any size flag was given.
func (f *editFlags) set() bool {
	return f.diagonal != 0 || f.hPixel != 0 || f.vPixel != 0 || f.ptmChanged
}

// request fills the session defaults with the flags that were given.
func (f *editFlags) request(s *edid.Session) edid.EditRequest {
	req := s.DefaultRequest()
	if f.diagonal != 0 {
		req.DiagonalInches = f.diagonal
	}
	if f.hPixel != 0 {
		req.HPixel = f.hPixel
	}
	if f.vPixel != 0 {
		req.VPixel = f.vPixel
	}
	req.SetPreferredModeSize = cfg.Defaults.SetPreferredModeSize
	if f.ptmChanged {
		req.SetPreferredModeSize = f.ptm
	}
	return req
}

func (f *editFlags) reset() { *f = editFlags{} }

// outputFlags select where and how .reg documents are written.
type outputFlags struct {
	out       string
	stdout    bool
	encoding  string
	withBOM   bool
	wrapLines bool

	withBOMChanged   bool
	wrapLinesChanged bool
}

func (o *outputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Output file (default: suggested name in the configured output directory)")
	cmd.Flags().BoolVar(&o.stdout, "stdout", false, "Write to stdout instead of file")
	cmd.Flags().StringVar(&o.encoding, "out-encoding", "", "Output encoding (UTF-8, UTF-16LE, Windows-1252)")
	cmd.Flags().BoolVar(&o.withBOM, "with-bom", false, "Include byte-order mark")
	cmd.Flags().BoolVar(&o.wrapLines, "wrap-lines", false, "Wrap long hex values at 80 characters with backslash continuation")
}

// capture records which flags the user set explicitly.
func (o *outputFlags) capture(cmd *cobra.Command) {
	o.withBOMChanged = cmd.Flags().Changed("with-bom")
	o.wrapLinesChanged = cmd.Flags().Changed("wrap-lines")
}

func (o *outputFlags) reset() { *o = outputFlags{} }

// exportOptions merges the flags over the config file.
func (o *outputFlags) exportOptions() edid.ExportOptions {
	enc := o.encoding
	if enc == "" {
		enc = cfg.Output.Encoding
	}
	opts := edid.ExportOptions{
		OutputEncoding: enc,
		WithBOM:        cfg.Output.WithBOM,
		WrapLines:      cfg.Output.WrapLines,
	}
	if o.withBOMChanged {
		opts.WithBOM = o.withBOM
	}
	if o.wrapLinesChanged {
		opts.WrapLines = o.wrapLines
	}
	return opts
}

// path returns the file to write, using suggested when --out is not set.
func (o *outputFlags) path(suggested string) string {
	if o.out != "" {
		return o.out
	}
	dir := cfg.Output.Directory
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, suggested)
}

// sink returns where a document for path goes.
func (o *outputFlags) sink(path string) writer.Sink {
	if o.stdout {
		return writer.StreamWriter{W: os.Stdout}
	}
	return &writer.FileWriter{Path: path}
}

// write sends doc to stdout or to path.
func (o *outputFlags) write(path string, doc []byte) error {
	if err := o.sink(path).WriteDocument(doc); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
