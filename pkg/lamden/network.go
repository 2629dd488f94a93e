package lamden

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/samber/lo"
)

// ErrInvalidNetwork is returned when a NetworkInfo fails validation
var ErrInvalidNetwork = errors.New("invalid network info")

// Network types understood by masternodes
const (
	NetworkTypeMainnet   = "mainnet"
	NetworkTypeTestnet   = "testnet"
	NetworkTypeMockchain = "mockchain"
)

// NetworkInfo describes the network a transaction is sent to
type NetworkInfo struct {
	// Name of the network, informational only
	Name string `json:"name"`
	// Type is one of mainnet, testnet or mockchain
	Type string `json:"type"`
	// Hosts are masternode base URLs and must begin with http or https
	Hosts []string `json:"hosts"`
}

// Validate checks the network type and host list
func (n NetworkInfo) Validate() error {
	if !lo.Contains([]string{NetworkTypeMainnet, NetworkTypeTestnet, NetworkTypeMockchain}, n.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidNetwork, n.Type)
	}
	if len(n.Hosts) == 0 {
		return fmt.Errorf("%w: no hosts", ErrInvalidNetwork)
	}
	for _, host := range n.Hosts {
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			return fmt.Errorf("%w: host %q must begin with http or https", ErrInvalidNetwork, host)
		}
	}
	return nil
}

// pickHost returns a random masternode host
func (n NetworkInfo) pickHost() string {
	if len(n.Hosts) == 1 {
		return strings.TrimRight(n.Hosts[0], "/")
	}
	return strings.TrimRight(n.Hosts[rand.Intn(len(n.Hosts))], "/")
}
