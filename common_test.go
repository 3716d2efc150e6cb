package ciiubl

import (
	"testing"

	"github.com/invopop/gobl/cal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invopop/cii.ubl/cii"
)

func ciiDateTime(s string) *cii.DateTime {
	return &cii.DateTime{
		DateTimeString: &cii.FormattedValue{Value: s},
	}
}

func strptr(s string) *string {
	return &s
}

func TestCopyID(t *testing.T) {
	t.Run("copies every scheme facet", func(t *testing.T) {
		src := &cii.ID{
			Value:            "12345",
			SchemeID:         strptr("0088"),
			SchemeName:       strptr("GLN"),
			SchemeAgencyID:   strptr("9"),
			SchemeAgencyName: strptr("GS1"),
			SchemeVersionID:  strptr("1.0"),
			SchemeDataURI:    strptr("urn:data"),
			SchemeURI:        strptr("urn:scheme"),
		}

		out := copyID(src)
		require.NotNil(t, out)
		assert.Equal(t, "12345", out.Value)
		assert.Equal(t, "0088", *out.SchemeID)
		assert.Equal(t, "GLN", *out.SchemeName)
		assert.Equal(t, "9", *out.SchemeAgencyID)
		assert.Equal(t, "GS1", *out.SchemeAgencyName)
		assert.Equal(t, "1.0", *out.SchemeVersionID)
		assert.Equal(t, "urn:data", *out.SchemeDataURI)
		assert.Equal(t, "urn:scheme", *out.SchemeURI)
	})

	t.Run("absent in, absent out", func(t *testing.T) {
		assert.Nil(t, copyID(nil))
	})
}

func TestCopyName(t *testing.T) {
	t.Run("copies value and language qualifiers", func(t *testing.T) {
		out := copyName(&cii.Text{
			Value:            "Acme GmbH",
			LanguageID:       strptr("de"),
			LanguageLocaleID: strptr("DE"),
		})
		require.NotNil(t, out)
		assert.Equal(t, "Acme GmbH", out.Value)
		assert.Equal(t, "de", *out.LanguageID)
		assert.Equal(t, "DE", *out.LanguageLocaleID)
	})

	t.Run("absent in, absent out", func(t *testing.T) {
		assert.Nil(t, copyName(nil))
	})
}

func TestParseCompactDate(t *testing.T) {
	t.Run("six digit date", func(t *testing.T) {
		d := parseCompactDate("240115", DefaultDateLayout)
		require.NotNil(t, d)
		assert.Equal(t, cal.MakeDate(2024, 1, 15), *d)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := parseCompactDate("240115", DefaultDateLayout)
		second := parseCompactDate("240115", DefaultDateLayout)
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, *first, *second)
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Nil(t, parseCompactDate("", DefaultDateLayout))
	})

	t.Run("whitespace only", func(t *testing.T) {
		assert.Nil(t, parseCompactDate("   ", DefaultDateLayout))
	})

	t.Run("non numeric", func(t *testing.T) {
		assert.Nil(t, parseCompactDate("abcdef", DefaultDateLayout))
	})

	// An eight digit year-first date does not match the default two digit
	// year layout. Whether the source format intends two or four digit
	// years is ambiguous; the layout stays explicit so callers can choose.
	t.Run("eight digit date under default layout", func(t *testing.T) {
		assert.Nil(t, parseCompactDate("20240115", DefaultDateLayout))
	})

	t.Run("eight digit date with explicit layout", func(t *testing.T) {
		d := parseCompactDate("20240115", "20060102")
		require.NotNil(t, d)
		assert.Equal(t, cal.MakeDate(2024, 1, 15), *d)
	})
}

func TestFormatDate(t *testing.T) {
	d := cal.MakeDate(2024, 1, 15)
	assert.Equal(t, "2024-01-15", formatDate(&d))
	assert.Equal(t, "", formatDate(nil))
}
