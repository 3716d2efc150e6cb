package main

import (
	"fmt"
	"io"

	ciiubl "github.com/invopop/cii.ubl"
	"github.com/spf13/cobra"
)

type convertOpts struct {
	*rootOpts
	dateLayout string
	profileID  string
}

func convert(o *rootOpts) *convertOpts {
	return &convertOpts{rootOpts: o}
}

func (c *convertOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <infile> [outfile]",
		Short: "Convert a Cross Industry Invoice (CII) document into a UBL invoice",
		RunE:  c.runE,
	}

	flags := cmd.Flags()
	flags.StringVar(&c.dateLayout, "date-layout", "", "Override the compact date layout used for CII date strings (e.g. 20060102)")
	flags.StringVar(&c.profileID, "profile-id", "", "Override the UBL ProfileID stamped on the output document")

	return cmd
}

func (c *convertOpts) runE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("expected one or two arguments, the command usage is `cii.ubl convert <infile> [outfile]`")
	}

	input, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer input.Close() // nolint:errcheck

	out, err := openOutput(cmd, args)
	if err != nil {
		return err
	}
	defer out.Close() // nolint:errcheck

	inData, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	errs := new(ciiubl.ErrorList)
	doc := ciiubl.Convert(inData, errs, c.buildOptions()...)
	for _, d := range errs.Entries() {
		fmt.Fprintln(cmd.ErrOrStderr(), d.String())
	}
	if doc == nil {
		if errs.HasErrors() {
			return fmt.Errorf("conversion failed")
		}
		return fmt.Errorf("document not converted")
	}

	outputData, err := ciiubl.Bytes(doc)
	if err != nil {
		return fmt.Errorf("generating UBL xml: %w", err)
	}

	if _, err = out.Write(outputData); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func (c *convertOpts) buildOptions() []ciiubl.Option {
	var opts []ciiubl.Option
	if c.profileID != "" {
		ctx := ciiubl.ContextPeppol
		ctx.ProfileID = c.profileID
		opts = append(opts, ciiubl.WithContext(ctx))
	}
	if c.dateLayout != "" {
		opts = append(opts, ciiubl.WithDateLayout(c.dateLayout))
	}
	return opts
}
