package transit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// networkFile is the on-disk YAML shape of a network.
type networkFile struct {
	Stations []string `yaml:"stations"`
	Links    []struct {
		From    string `yaml:"from"`
		To      string `yaml:"to"`
		Minutes int64  `yaml:"minutes"`
	} `yaml:"links"`
}

// Parse builds a Network from YAML bytes. The document lists the
// stations and the directed links between them; see the package doc
// for the format.
func Parse(data []byte) (*Network, error) {
	var nf networkFile
	if err := yaml.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("transit: parsing network: %w", err)
	}

	n, err := NewNetwork(nf.Stations)
	if err != nil {
		return nil, err
	}
	for _, l := range nf.Links {
		if err := n.Connect(l.From, l.To, l.Minutes); err != nil {
			return nil, fmt.Errorf("transit: link %q→%q: %w", l.From, l.To, err)
		}
	}

	return n, nil
}

// LoadFile reads and parses a YAML network file.
func LoadFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("transit: reading %s: %w", path, err)
	}

	return Parse(data)
}
