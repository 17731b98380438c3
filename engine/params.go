// File: params.go
// Role: YAML-loadable (eps, eta) configuration, letting callers such as
//       cmd/dengraphctl configure clustering parameters from a config file
//       instead of code.
package engine

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Params holds the two clustering parameters an Engine is constructed with.
// The yaml struct tags map the fields to the lower-case keys, so a document
// of `eps: 0.5` / `eta: 4` decodes into it.
type Params struct {
	Eps float64 `yaml:"eps"`
	Eta int     `yaml:"eta"`
}

// Validate reports ErrInvalidArgument if eps is not positive or eta is less
// than 1 -- an eta of 0 would make every node core regardless of isolation.
func (p Params) Validate() error {
	if p.Eps <= 0 {
		return wrapf("Params.Validate", fmt.Errorf("eps must be positive: %w", ErrInvalidArgument))
	}
	if p.Eta < 1 {
		return wrapf("Params.Validate", fmt.Errorf("eta must be at least 1: %w", ErrInvalidArgument))
	}
	return nil
}

// ParamsFromYAML decodes a Params document from r and validates it.
func ParamsFromYAML(r io.Reader) (Params, error) {
	var p Params
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return Params{}, wrapf("ParamsFromYAML", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
