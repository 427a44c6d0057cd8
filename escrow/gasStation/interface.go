package gas

import (
	"context"

	"github.com/multiversx/mx-sdk-go/data"
)

// NetworkConfigProvider defines the component able to provide the network configuration
type NetworkConfigProvider interface {
	GetNetworkConfig(ctx context.Context) (*data.NetworkConfig, error)
	IsInterfaceNil() bool
}
