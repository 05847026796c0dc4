package celestial

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultReference is the home body of the built-in system.
const DefaultReference = "Kerbin"

// builtinBodies is the stock Kerbol system.
func builtinBodies() []Body {
	return []Body{
		{Name: "Kerbol", DisplayName: "Kerbol", GravParameter: 1.1723328e18, Radius: 261600000},
		{Name: "Moho", DisplayName: "Moho", GravParameter: 1.6860938e11, Radius: 250000},
		{Name: "Eve", DisplayName: "Eve", GravParameter: 8.1717302e12, Radius: 700000, Atmosphere: ExponentialProfile(6.24, 7200, 90000)},
		{Name: "Gilly", DisplayName: "Gilly", GravParameter: 8.289449e6, Radius: 13000},
		{Name: "Kerbin", DisplayName: "Kerbin", GravParameter: 3.5316e12, Radius: 600000, Atmosphere: ExponentialProfile(1.225, 5600, 70000)},
		{Name: "Mun", DisplayName: "The Mun", GravParameter: 6.5138398e10, Radius: 200000},
		{Name: "Minmus", DisplayName: "Minmus", GravParameter: 1.7658e9, Radius: 60000},
		{Name: "Duna", DisplayName: "Duna", GravParameter: 3.0136321e11, Radius: 320000, Atmosphere: ExponentialProfile(0.149, 5700, 50000)},
		{Name: "Ike", DisplayName: "Ike", GravParameter: 1.8568369e10, Radius: 130000},
		{Name: "Dres", DisplayName: "Dres", GravParameter: 2.1484489e10, Radius: 138000},
		{Name: "Jool", DisplayName: "Jool", GravParameter: 2.82528e14, Radius: 6000000, Atmosphere: ExponentialProfile(22.4, 30000, 200000)},
		{Name: "Laythe", DisplayName: "Laythe", GravParameter: 1.962e12, Radius: 500000, Atmosphere: ExponentialProfile(0.764, 8000, 50000)},
		{Name: "Vall", DisplayName: "Vall", GravParameter: 2.074815e11, Radius: 300000},
		{Name: "Tylo", DisplayName: "Tylo", GravParameter: 2.82528e12, Radius: 600000},
		{Name: "Bop", DisplayName: "Bop", GravParameter: 2.4868349e9, Radius: 65000},
		{Name: "Pol", DisplayName: "Pol", GravParameter: 7.2170208e8, Radius: 44000},
		{Name: "Eeloo", DisplayName: "Eeloo", GravParameter: 7.4410815e10, Radius: 210000},
	}
}

// Builtin provides the stock Kerbol system.
var Builtin Provider = ProviderFunc(func() ([]Body, error) {
	return builtinBodies(), nil
})

// Catalogue is the on-disk form of a body list.
type Catalogue struct {
	Bodies []CatalogueBody `yaml:"bodies"`
}

// CatalogueBody is one body in a catalogue file.
type CatalogueBody struct {
	Name          string         `yaml:"name"`
	DisplayName   string         `yaml:"displayName,omitempty"`
	GravParameter float64        `yaml:"gravParameter"`
	Radius        float64        `yaml:"radius"`
	Atmosphere    []ProfilePoint `yaml:"atmosphere,omitempty"`
}

// FileProvider reads bodies from a YAML catalogue.
type FileProvider struct {
	Path string
}

// Bodies implements Provider.
func (p FileProvider) Bodies() ([]Body, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, err
	}
	return ParseCatalogue(data)
}

// ParseCatalogue decodes a YAML catalogue.
func ParseCatalogue(data []byte) ([]Body, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing body catalogue: %w", err)
	}

	bodies := make([]Body, 0, len(cat.Bodies))
	for _, cb := range cat.Bodies {
		b := Body{
			Name:          cb.Name,
			DisplayName:   cb.DisplayName,
			GravParameter: cb.GravParameter,
			Radius:        cb.Radius,
		}
		if len(cb.Atmosphere) > 0 {
			profile, err := NewProfile(cb.Atmosphere)
			if err != nil {
				return nil, fmt.Errorf("body %s: %w", cb.Name, err)
			}
			b.Atmosphere = profile
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// MarshalCatalogue encodes bodies back into catalogue YAML.
func MarshalCatalogue(bodies []Body) ([]byte, error) {
	cat := Catalogue{Bodies: make([]CatalogueBody, 0, len(bodies))}
	for _, b := range bodies {
		cat.Bodies = append(cat.Bodies, CatalogueBody{
			Name:          b.Name,
			DisplayName:   b.DisplayName,
			GravParameter: b.GravParameter,
			Radius:        b.Radius,
			Atmosphere:    b.Atmosphere.Points(),
		})
	}
	return yaml.Marshal(&cat)
}
