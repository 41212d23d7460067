// Command stlconv inspects and converts STL files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/smasonuk/stlmesh"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "stlconv",
		Short:        "Inspect and convert STL files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				stlmesh.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log what the codec does")

	root.AddCommand(newInfoCmd(), newConvertCmd(), newDumpCmd())
	return root
}

// readMesh reads the file named by args, or stdin when args is empty.
func readMesh(cmd *cobra.Command, args []string) (string, *stlmesh.Mesh, stlmesh.FileType, error) {
	if len(args) == 0 {
		m, ft, err := stlmesh.Decode(cmd.InOrStdin())
		if err != nil {
			return "", nil, 0, fmt.Errorf("failed to read STL from stdin: %w", err)
		}
		return "-", m, ft, nil
	}

	mio := stlmesh.NewMeshIO(args[0])
	if !mio.CanReadFile() {
		return "", nil, 0, fmt.Errorf("%s: not a readable STL file", args[0])
	}
	m, err := mio.ReadMesh()
	if err != nil {
		return "", nil, 0, err
	}
	return args[0], m, mio.GetFileType(), nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [FILE]",
		Short: "Print counts, bounds, area and volume of a mesh",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, m, ft, err := readMesh(cmd, args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "File: %s\n", name)
			fmt.Fprintf(w, "Type: %v\n", ft)
			if m.Name != "" {
				fmt.Fprintf(w, "Name: %s\n", m.Name)
			}
			fmt.Fprintf(w, "Points: %d\n", m.NumberOfPoints())
			fmt.Fprintf(w, "Triangles: %d\n", m.NumberOfCells())
			lo, hi := m.Bounds()
			fmt.Fprintf(w, "Bounding box: %v - %v\n", lo, hi)
			fmt.Fprintf(w, "Surface area: %g\n", m.SurfaceArea())
			fmt.Fprintf(w, "Volume: %g\n", m.Volume())
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	var (
		to      string
		outPath string
		header  string
	)

	cmd := &cobra.Command{
		Use:   "convert [FILE]",
		Short: "Rewrite a mesh as ASCII or binary STL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := stlmesh.ParseFileType(to)
			if err != nil {
				return err
			}
			_, m, _, err := readMesh(cmd, args)
			if err != nil {
				return err
			}

			if outPath == "" {
				return m.Encode(cmd.OutOrStdout(), ft, stlmesh.WithHeader(header))
			}

			mio := stlmesh.NewMeshIO(outPath)
			if !mio.CanWriteFile() {
				return fmt.Errorf("%s: output name must end in .stl", outPath)
			}
			mio.SetFileType(ft)
			mio.SetHeader(header)
			return mio.WriteMesh(m.PointBuffer(), m.CellBuffer())
		},
	}
	cmd.Flags().StringVar(&to, "to", "binary", "output type: ascii or binary")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&header, "header", "binary STL generated by stlconv", "binary header text")
	return cmd
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [FILE]",
		Short: "Print every triangle with its recomputed normal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, _, err := readMesh(cmd, args)
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), m)
		},
	}
}

func dump(w io.Writer, m *stlmesh.Mesh) error {
	for i, t := range m.Triangles {
		p := m.TrianglePoints(i)
		if _, err := fmt.Fprintf(w, "Triangle %d:\n  normal %v\n", i, m.TriangleNormal(i)); err != nil {
			return err
		}
		for k := range p {
			if _, err := fmt.Fprintf(w, "  %d %v\n", t[k], p[k]); err != nil {
				return err
			}
		}
	}
	return nil
}
