package config

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

// NetworkTable maps a network type to its descriptor
type NetworkTable map[domain.NetworkType]domain.Network

// DefaultNetworks returns the public Lamden networks
func DefaultNetworks() NetworkTable {
	return NetworkTable{
		domain.NetworkTypeMainnet: {
			Name:  "Lamden Public Mainnet",
			Type:  domain.NetworkTypeMainnet,
			Hosts: []string{"https://masternode-01.lamden.io:443"},
		},
		domain.NetworkTypeTestnet: {
			Name:  "Lamden Public Testnet",
			Type:  domain.NetworkTypeTestnet,
			Hosts: []string{"https://testnet-master-1.lamden.io"},
		},
	}
}

// Select returns mainnet when flag is exactly "mainnet" and testnet for
// anything else, including an empty flag
func (t NetworkTable) Select(flag string) domain.Network {
	networkType := domain.NetworkTypeTestnet
	if flag == string(domain.NetworkTypeMainnet) {
		networkType = domain.NetworkTypeMainnet
	}

	n := t[networkType]
	n.Hosts = slices.Clone(n.Hosts)
	return n
}

// Types returns the configured network types in a stable order
func (t NetworkTable) Types() []domain.NetworkType {
	types := lo.Keys(t)
	slices.Sort(types)
	return types
}

// networksFile is the TOML layout of a networks override file:
//
//	[networks.mainnet]
//	name = "My Mainnet"
//	hosts = ["https://masternode-02.lamden.io"]
type networksFile struct {
	Networks map[string]struct {
		Name  string   `toml:"name"`
		Hosts []string `toml:"hosts"`
	} `toml:"networks"`
}

// LoadNetworks returns the default table with overrides from path applied.
// An empty path returns the defaults.
func LoadNetworks(path string) (NetworkTable, error) {
	table := DefaultNetworks()
	if path == "" {
		return table, nil
	}

	var raw networksFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse networks file %s: %w", path, err)
	}

	for name, entry := range raw.Networks {
		networkType := domain.NetworkType(name)
		base, ok := table[networkType]
		if !ok {
			return nil, fmt.Errorf("networks file %s: unknown network %q", path, name)
		}
		if entry.Name != "" {
			base.Name = entry.Name
		}
		if len(entry.Hosts) > 0 {
			base.Hosts = entry.Hosts
		}
		table[networkType] = base
	}

	return table, nil
}

// SuggestNetwork returns the network type a flag that selects nothing
// exactly most likely meant, e.g. "mainet" for mainnet
func (t NetworkTable) SuggestNetwork(flag string) (domain.NetworkType, bool) {
	if flag == "" {
		return "", false
	}
	if _, ok := t[domain.NetworkType(flag)]; ok {
		return "", false
	}

	names := lo.Map(t.Types(), func(nt domain.NetworkType, _ int) string { return string(nt) })
	matches := fuzzy.Find(flag, names)
	if len(matches) == 0 {
		return "", false
	}
	return domain.NetworkType(matches[0].Str), true
}
