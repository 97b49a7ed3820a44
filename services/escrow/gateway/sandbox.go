package gateway

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/paychain/paychain/internal/pkg/models"
)

// PayoutSimulator resolves sandbox payout legs in-process, mimicking the
// B2C gateway's asynchronous settlement. Successful legs get a simulated
// provider reference.
type PayoutSimulator struct {
	delay       time.Duration
	successRate float64

	// sleep, roll and now are swappable for deterministic tests
	sleep func(time.Duration)
	roll  func() float64
	now   func() time.Time
}

// NewPayoutSimulator creates a payout simulator from the sandbox config
func NewPayoutSimulator(cfg models.SandboxConfig) *PayoutSimulator {
	return &PayoutSimulator{
		delay:       time.Duration(cfg.PayoutDelayMs) * time.Millisecond,
		successRate: cfg.PayoutSuccessRate,
		sleep:       time.Sleep,
		roll:        rand.Float64,
		now:         time.Now,
	}
}

// SchedulePayoutOutcome fires the outcome callback after the configured
// delay. The caller's closure owns all persistence.
func (s *PayoutSimulator) SchedulePayoutOutcome(outcome func(success bool, providerRef string)) {
	go func() {
		s.sleep(s.delay)

		success := s.roll() < s.successRate
		providerRef := ""
		if success {
			providerRef = fmt.Sprintf("SANDBOX_B2C_%d", s.now().UnixMilli())
		}
		outcome(success, providerRef)
	}()
}
