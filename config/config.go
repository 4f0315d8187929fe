/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package config holds the small option structs threaded through parsing and
validation, (de)serializable via github.com/goccy/go-yaml so a host process
can load them from its own configuration file next to its other settings.
*/
package config

import "github.com/goccy/go-yaml"

/*
DefaultTokenLimit is the default ceiling on tokens consumed by a single
parse, chosen generously above any realistic hand-written document or
schema while still bounding pathological/adversarial input.
*/
const DefaultTokenLimit uint32 = 15000

/*
DefaultRecursionLimit is the default ceiling on grammar nesting depth
(selection sets, list/non-null type refs, list/object values, fragment
spread chains).
*/
const DefaultRecursionLimit uint32 = 500

/*
ParserOptions configures the recursive-descent parser's resource limits.
The zero value is not directly usable; callers should start from
DefaultParserOptions.
*/
type ParserOptions struct {
	TokenLimit     uint32 `yaml:"tokenLimit"`
	RecursionLimit uint32 `yaml:"recursionLimit"`
}

/*
DefaultParserOptions returns the documented default limits.
*/
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		TokenLimit:     DefaultTokenLimit,
		RecursionLimit: DefaultRecursionLimit,
	}
}

/*
MarshalYAML implements yaml.BytesMarshaler-compatible marshaling for
ParserOptions via goccy/go-yaml's struct tag conventions.
*/
func (p ParserOptions) MarshalYAML() (interface{}, error) {
	type alias ParserOptions
	return alias(p), nil
}

/*
UnmarshalYAML fills in documented defaults for any field left unset (zero)
after decoding, so a host config file only needs to mention the options it
wants to override.
*/
func (p *ParserOptions) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type alias ParserOptions
	a := alias(DefaultParserOptions())
	if err := unmarshal(&a); err != nil {
		return err
	}
	*p = ParserOptions(a)
	return nil
}

/*
ValidationOptions configures which optional validation checks run.
*/
type ValidationOptions struct {
	// IntrospectionDepthLimit enables the depth<=3 introspection-nesting
	// check (see package validate); on by default per spec.
	IntrospectionDepthLimit bool `yaml:"introspectionDepthLimit"`
}

/*
DefaultValidationOptions returns the documented defaults (every optional
check enabled).
*/
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{IntrospectionDepthLimit: true}
}

/*
MarshalYAML implements yaml.BytesMarshaler-compatible marshaling for
ValidationOptions.
*/
func (v ValidationOptions) MarshalYAML() (interface{}, error) {
	type alias ValidationOptions
	return alias(v), nil
}

/*
UnmarshalYAML decodes ValidationOptions, defaulting to
DefaultValidationOptions for anything the input does not mention.
*/
func (v *ValidationOptions) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type alias ValidationOptions
	a := alias(DefaultValidationOptions())
	if err := unmarshal(&a); err != nil {
		return err
	}
	*v = ValidationOptions(a)
	return nil
}

/*
Options bundles both option structs for a single config file section.
*/
type Options struct {
	Parser     ParserOptions     `yaml:"parser"`
	Validation ValidationOptions `yaml:"validation"`
}

/*
DefaultOptions returns both option structs at their documented defaults.
*/
func DefaultOptions() Options {
	return Options{Parser: DefaultParserOptions(), Validation: DefaultValidationOptions()}
}

/*
LoadOptions decodes Options from a YAML document, starting from
DefaultOptions so an empty or partial document still yields usable limits.
*/
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

/*
Dump serializes Options back to YAML, for a host process that wants to
write out the effective configuration it resolved.
*/
func (o Options) Dump() ([]byte, error) {
	return yaml.Marshal(o)
}
