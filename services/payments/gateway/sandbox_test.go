package gateway

import (
	"testing"
	"time"

	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestScheduleChargeOutcome(t *testing.T) {
	sim := NewSandboxSimulator(models.SandboxConfig{
		ChargeDelayMs:     3000,
		ChargeSuccessRate: 0.8,
	})

	var slept time.Duration
	sim.sleep = func(d time.Duration) { slept = d }

	outcomes := make(chan bool, 2)

	sim.roll = func() float64 { return 0.5 }
	sim.ScheduleChargeOutcome(func(success bool) { outcomes <- success })
	assert.True(t, <-outcomes)
	assert.Equal(t, 3*time.Second, slept)

	sim.roll = func() float64 { return 0.9 }
	sim.ScheduleChargeOutcome(func(success bool) { outcomes <- success })
	assert.False(t, <-outcomes)
}
