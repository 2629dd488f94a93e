package domain

// NetworkType represents the kind of Lamden network
type NetworkType string

const (
	NetworkTypeMainnet NetworkType = "mainnet"
	NetworkTypeTestnet NetworkType = "testnet"
)

// Network describes the masternodes a transaction is sent to
type Network struct {
	Name  string      `json:"name" yaml:"name"`
	Type  NetworkType `json:"type" yaml:"type"`
	Hosts []string    `json:"hosts" yaml:"hosts"`
}

// IsMainnet reports whether the network moves real value
func (n Network) IsMainnet() bool {
	return n.Type == NetworkTypeMainnet
}
