package ciiubl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextIs(t *testing.T) {
	t.Run("same context matches", func(t *testing.T) {
		c := ContextPeppol
		assert.True(t, c.Is(ContextPeppol))
	})

	t.Run("different customization does not match", func(t *testing.T) {
		c := Context{
			CustomizationID: "urn:cen.eu:en16931:2017",
			ProfileID:       ContextPeppol.ProfileID,
		}
		assert.False(t, c.Is(ContextPeppol))
	})

	t.Run("different profile does not match", func(t *testing.T) {
		c := Context{
			CustomizationID: ContextPeppol.CustomizationID,
			ProfileID:       "custom-profile",
		}
		assert.False(t, c.Is(ContextPeppol))
	})
}

func TestContextPeppolIdentifiers(t *testing.T) {
	assert.Equal(t, "urn:cen.eu:en16931:2017:extended:urn:fdc:peppol.eu:2017:poacc:billing:3.0", ContextPeppol.CustomizationID)
	assert.Equal(t, "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0", ContextPeppol.ProfileID)
}

func TestBuildOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o := buildOptions(nil)
		assert.True(t, o.context.Is(ContextPeppol))
		assert.Equal(t, DefaultDateLayout, o.dateLayout)
	})

	t.Run("overrides", func(t *testing.T) {
		c := Context{CustomizationID: "urn:custom", ProfileID: "urn:profile"}
		o := buildOptions([]Option{WithContext(c), WithDateLayout("20060102")})
		assert.True(t, o.context.Is(c))
		assert.Equal(t, "20060102", o.dateLayout)
	})
}
