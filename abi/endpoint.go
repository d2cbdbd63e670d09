package abi

import (
	"encoding/json"
	"fmt"
)

// ParameterDefinition describes one input or output of an endpoint, as found
// in a contract interface description.
type ParameterDefinition struct {
	Name string `json:"name"`
	Type string `json:"type"`

	// MultiArg marks a parameter that expands into several raw arguments
	// (variadic or composite multi-value). Only valid on the last parameter.
	MultiArg bool `json:"multi_arg,omitempty"`
}

// EndpointDefinition is a read-only description of a callable endpoint:
// its name and its ordered input/output parameter types.
type EndpointDefinition struct {
	Name            string                `json:"name"`
	Mutability      string                `json:"mutability,omitempty"`
	OnlyOwner       bool                  `json:"onlyOwner,omitempty"`
	PayableInTokens []string              `json:"payableInTokens,omitempty"`
	Inputs          []ParameterDefinition `json:"inputs"`
	Outputs         []ParameterDefinition `json:"outputs"`
}

// InputTypes resolves the declared input parameter types through the mapper.
func (e EndpointDefinition) InputTypes() ([]*Type, error) {
	return resolveParameterTypes(e.Inputs)
}

// OutputTypes resolves the declared return types through the mapper.
func (e EndpointDefinition) OutputTypes() ([]*Type, error) {
	return resolveParameterTypes(e.Outputs)
}

func resolveParameterTypes(parameters []ParameterDefinition) ([]*Type, error) {
	types := make([]*Type, len(parameters))
	for i, parameter := range parameters {
		resolved, err := MapExpression(parameter.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", parameter.Name, err)
		}
		types[i] = resolved
	}
	return types, nil
}

// ContractDefinition is the parsed interface description of a contract:
// its constructor plus a set of endpoints addressable by name.
type ContractDefinition struct {
	Name        string               `json:"name"`
	Constructor EndpointDefinition   `json:"constructor"`
	Endpoints   []EndpointDefinition `json:"endpoints"`

	endpointsByName map[string]EndpointDefinition
}

// LoadContractDefinition parses a JSON interface description and builds the
// endpoint lookup table.
func LoadContractDefinition(data []byte) (*ContractDefinition, error) {
	var definition ContractDefinition
	if err := json.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("cannot parse contract definition: %w", err)
	}
	definition.buildIndex()
	return &definition, nil
}

func (d *ContractDefinition) buildIndex() {
	d.endpointsByName = make(map[string]EndpointDefinition, len(d.Endpoints))
	for _, endpoint := range d.Endpoints {
		d.endpointsByName[endpoint.Name] = endpoint
	}
}

// EndpointByName looks up an endpoint definition.
func (d *ContractDefinition) EndpointByName(name string) (EndpointDefinition, error) {
	if d.endpointsByName == nil {
		d.buildIndex()
	}
	endpoint, ok := d.endpointsByName[name]
	if !ok {
		return EndpointDefinition{}, fmt.Errorf("endpoint %q not found in contract %q", name, d.Name)
	}
	return endpoint, nil
}
