package usecase

import (
	"time"

	"github.com/paychain/paychain/services/escrow"
	"github.com/paychain/paychain/services/webhooks"
)

// DefaultCurrency is assumed when a stored record omits the currency
const DefaultCurrency = "KES"

// escrowUC implements the escrow lifecycle use cases
type escrowUC struct {
	repo       escrow.EscrowRepo
	simulator  escrow.PayoutSimulator
	gw         escrow.EscrowGW
	dispatcher webhooks.Dispatcher

	// now is swappable for deterministic expiries in tests
	now func() time.Time
}

// NewEscrowUC creates a new escrow usecase
func NewEscrowUC(
	repo escrow.EscrowRepo,
	simulator escrow.PayoutSimulator,
	gw escrow.EscrowGW,
	dispatcher webhooks.Dispatcher,
) escrow.EscrowUC {
	return &escrowUC{
		repo:       repo,
		simulator:  simulator,
		gw:         gw,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}
