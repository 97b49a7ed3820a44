package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFee(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   int64
	}{
		{
			name:   "minimum charge",
			amount: 100,
			want:   2003, // round(2.5) + 2000
		},
		{
			name:   "KSh 100",
			amount: 10000,
			want:   2250,
		},
		{
			name:   "KSh 10,000",
			amount: 1000000,
			want:   27000,
		},
		{
			name:   "odd amount rounds percentage",
			amount: 101,
			want:   2003, // round(2.525) + 2000
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateFee(tt.amount))
		})
	}
}
