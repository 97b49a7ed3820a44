package usecase

import (
	"time"

	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/services/payments"
	"github.com/paychain/paychain/services/webhooks"
)

// paymentUC implements the payment collection use cases
type paymentUC struct {
	cfg        *models.Config
	repo       payments.PaymentRepo
	stk        payments.StkGateway
	simulator  payments.ChargeSimulator
	gw         payments.PaymentGW
	dispatcher webhooks.Dispatcher

	// now is swappable for deterministic correlation ids in tests
	now func() time.Time
}

// NewPaymentUC creates a new payment usecase
func NewPaymentUC(
	cfg *models.Config,
	repo payments.PaymentRepo,
	stk payments.StkGateway,
	simulator payments.ChargeSimulator,
	gw payments.PaymentGW,
	dispatcher webhooks.Dispatcher,
) payments.PaymentUC {
	return &paymentUC{
		cfg:        cfg,
		repo:       repo,
		stk:        stk,
		simulator:  simulator,
		gw:         gw,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}
