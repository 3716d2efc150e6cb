// Package main provides the cii.ubl command line tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// A local .env may provide defaults for the flags; a missing file is fine.
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	return root().cmd().ExecuteContext(context.Background())
}

type rootOpts struct{}

func root() *rootOpts {
	return new(rootOpts)
}

func (o *rootOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cii.ubl",
		Short:         "Convert Cross Industry Invoice (CII) documents into UBL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(convert(o).cmd())
	return cmd
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.Open(args[0])
	}
	return io.NopCloser(cmd.InOrStdin()), nil
}

func openOutput(cmd *cobra.Command, args []string) (io.WriteCloser, error) {
	if len(args) > 1 && args[1] != "-" {
		return os.Create(args[1])
	}
	return nopWriteCloser{cmd.OutOrStdout()}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
