package adapters

import (
	"github.com/google/wire"

	"github.com/gammaphi/lamden-deploy/internal/adapters/fs"
	"github.com/gammaphi/lamden-deploy/internal/adapters/interactive"
	"github.com/gammaphi/lamden-deploy/internal/adapters/lamden"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewContractSourceAdapter,
	wire.Bind(new(usecase.ContractSource), new(*fs.ContractSourceAdapter)),
)

// LamdenSet provides the masternode-backed transaction builder
var LamdenSet = wire.NewSet(
	lamden.NewBuilderFactoryAdapter,
	wire.Bind(new(usecase.TransactionBuilderFactory), new(*lamden.BuilderFactoryAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	LamdenSet,
	InteractiveSet,
)
