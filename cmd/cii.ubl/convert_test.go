package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRunEErrors(t *testing.T) {
	t.Run("no args", func(t *testing.T) {
		cmd := root().cmd()
		cmd.SetArgs([]string{"convert"})
		err := cmd.Execute()
		require.EqualError(t, err, "expected one or two arguments, the command usage is `cii.ubl convert <infile> [outfile]`")
	})

	t.Run("too many args", func(t *testing.T) {
		cmd := root().cmd()
		cmd.SetArgs([]string{"convert", "a", "b", "c"})
		err := cmd.Execute()
		require.EqualError(t, err, "expected one or two arguments, the command usage is `cii.ubl convert <infile> [outfile]`")
	})

	t.Run("missing input file", func(t *testing.T) {
		cmd := root().cmd()
		cmd.SetArgs([]string{"convert", filepath.Join(t.TempDir(), "nope.xml")})
		err := cmd.Execute()
		require.Error(t, err)
	})

	t.Run("unknown xml document type", func(t *testing.T) {
		inPath := filepath.Join(t.TempDir(), "unknown.xml")
		require.NoError(t, os.WriteFile(inPath, []byte("<foo/>"), 0o644))
		outPath := filepath.Join(t.TempDir(), "out.xml")

		cmd := root().cmd()
		cmd.SetArgs([]string{"convert", inPath, outPath})
		err := cmd.Execute()
		require.EqualError(t, err, "conversion failed")
	})

	t.Run("credit note input", func(t *testing.T) {
		inPath := filepath.Join("..", "..", "test", "data", "creditnote-rejected.xml")
		outPath := filepath.Join(t.TempDir(), "out.xml")

		cmd := root().cmd()
		cmd.SetArgs([]string{"convert", inPath, outPath})
		err := cmd.Execute()
		require.EqualError(t, err, "document not converted")
	})
}

func TestConvertCIIToUBL(t *testing.T) {
	inPath := filepath.Join("..", "..", "test", "data", "invoice-minimal.xml")
	outPath := filepath.Join(t.TempDir(), "out.xml")

	cmd := root().cmd()
	cmd.SetArgs([]string{"convert", inPath, outPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	xml := string(data)
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "<cbc:ID>SAMPLE-001</cbc:ID>")
	assert.Contains(t, xml, "<cbc:IssueDate>2024-01-15</cbc:IssueDate>")
	assert.Contains(t, xml, "<cbc:DocumentCurrencyCode>EUR</cbc:DocumentCurrencyCode>")
	assert.Contains(t, xml, "<cbc:ProfileID>urn:fdc:peppol.eu:2017:poacc:billing:01:1.0</cbc:ProfileID>")
}

func TestConvertProfileOverride(t *testing.T) {
	inPath := filepath.Join("..", "..", "test", "data", "invoice-minimal.xml")
	outPath := filepath.Join(t.TempDir(), "out.xml")

	cmd := root().cmd()
	cmd.SetArgs([]string{"convert", "--profile-id", "custom-profile", inPath, outPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<cbc:ProfileID>custom-profile</cbc:ProfileID>")
}

func TestConvertDateLayoutOverride(t *testing.T) {
	in, err := os.ReadFile(filepath.Join("..", "..", "test", "data", "invoice-minimal.xml"))
	require.NoError(t, err)

	inPath := filepath.Join(t.TempDir(), "in.xml")
	longDates := []byte(strings.ReplaceAll(string(in), "240115", "20240115"))
	require.NoError(t, os.WriteFile(inPath, longDates, 0o644))
	outPath := filepath.Join(t.TempDir(), "out.xml")

	cmd := root().cmd()
	cmd.SetArgs([]string{"convert", "--date-layout", "20060102", inPath, outPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<cbc:IssueDate>2024-01-15</cbc:IssueDate>")
}
