package ciiubl

// Context pins the protocol identifiers stamped onto every generated UBL
// document. They identify the target business interoperability profile and
// are never derived from the source document.
type Context struct {
	// CustomizationID identifies specific characteristics in the
	// document which need to be present for local differences.
	CustomizationID string
	// ProfileID determines the business process context or scenario
	// for the exchange of the document.
	ProfileID string
}

// Is checks if two contexts are the same.
func (c *Context) Is(c2 Context) bool {
	return c.CustomizationID == c2.CustomizationID && c.ProfileID == c2.ProfileID
}

// ContextPeppol is the default Peppol BIS Billing context.
var ContextPeppol = Context{
	CustomizationID: "urn:cen.eu:en16931:2017:extended:urn:fdc:peppol.eu:2017:poacc:billing:3.0",
	ProfileID:       "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0",
}

type options struct {
	context    Context
	dateLayout string
}

// Option is used to define configuration options to use during
// conversion processes.
type Option func(*options)

// WithContext sets the context to use for the configuration
// and business profile.
func WithContext(c Context) Option {
	return func(o *options) {
		o.context = c
	}
}

// WithDateLayout overrides the compact date layout used to interpret CII
// date strings, e.g. "20060102" for sources emitting format code 102
// dates with four digit years.
func WithDateLayout(layout string) Option {
	return func(o *options) {
		o.dateLayout = layout
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		context:    ContextPeppol,
		dateLayout: DefaultDateLayout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
