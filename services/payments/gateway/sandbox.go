package gateway

import (
	"math/rand"
	"time"

	"github.com/paychain/paychain/internal/pkg/models"
)

// SandboxSimulator resolves sandbox charges in-process. It mimics the
// gateway's asynchronous confirmation by firing the outcome callback on a
// background goroutine after a configurable delay, succeeding at the
// configured rate.
type SandboxSimulator struct {
	delay       time.Duration
	successRate float64

	// sleep and roll are swappable for deterministic tests
	sleep func(time.Duration)
	roll  func() float64
}

// NewSandboxSimulator creates a charge simulator from the sandbox config
func NewSandboxSimulator(cfg models.SandboxConfig) *SandboxSimulator {
	return &SandboxSimulator{
		delay:       time.Duration(cfg.ChargeDelayMs) * time.Millisecond,
		successRate: cfg.ChargeSuccessRate,
		sleep:       time.Sleep,
		roll:        rand.Float64,
	}
}

// ScheduleChargeOutcome fires the outcome callback after the configured
// delay. The caller's closure owns all persistence and notification.
func (s *SandboxSimulator) ScheduleChargeOutcome(outcome func(success bool)) {
	go func() {
		s.sleep(s.delay)
		outcome(s.roll() < s.successRate)
	}()
}
