package union

const (
	// DefaultTagField is the tag field name used when Config.TagField is empty.
	DefaultTagField = "tag"

	// DefaultCase is the reserved case table key for the fallback handler.
	DefaultCase = "default"
)

// Config fixes the physical layout of variant instances.
type Config struct {
	// TagField names the field holding the variant name.
	TagField string
	// ValueField, when set, names the field holding the whole payload.
	// When empty, payload fields are merged next to the tag field.
	ValueField string
}

// DefaultConfig returns the merged layout with the "tag" tag field.
func DefaultConfig() Config {
	return Config{TagField: DefaultTagField}
}

// Merged reports whether payload fields live next to the tag field.
func (c Config) Merged() bool {
	return c.ValueField == ""
}

func (c Config) normalize() Config {
	if c.TagField == "" {
		c.TagField = DefaultTagField
	}

	return c
}
