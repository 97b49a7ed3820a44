package utils

import (
	"testing"

	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "canonical number unchanged",
			input: "254712345678",
			want:  "254712345678",
		},
		{
			name:  "leading zero replaced",
			input: "0712345678",
			want:  "254712345678",
		},
		{
			name:  "bare local number prefixed",
			input: "712345678",
			want:  "254712345678",
		},
		{
			name:  "formatting characters stripped",
			input: "+254 712-345-678",
			want:  "254712345678",
		},
		{
			name:  "airtel number with leading zero",
			input: "0789012345",
			want:  "254789012345",
		},
		{
			name:    "empty string rejected",
			input:   "",
			wantErr: models.ErrInvalidPhone,
		},
		{
			name:    "non-numeric rejected",
			input:   "not-a-phone",
			wantErr: models.ErrInvalidPhone,
		},
		{
			name:    "too short rejected",
			input:   "07123",
			wantErr: models.ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once, err := NormalizePhone("0712345678")
	assert.NoError(t, err)

	twice, err := NormalizePhone(once)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "safaricom 2547 prefix",
			input: "254712345678",
			want:  models.ProviderMpesa,
		},
		{
			name:  "safaricom 2541 prefix",
			input: "254110345678",
			want:  models.ProviderMpesa,
		},
		{
			name:  "safaricom local 07 prefix",
			input: "0712345678",
			want:  models.ProviderMpesa,
		},
		{
			name:  "airtel 2548 prefix",
			input: "254789012345",
			want:  models.ProviderAirtel,
		},
		{
			name:  "airtel local 08 prefix",
			input: "0789012345",
			want:  models.ProviderAirtel,
		},
		{
			name:  "unknown kenyan prefix falls back to mpesa",
			input: "254690000000",
			want:  models.ProviderMpesa,
		},
		{
			name:    "foreign number rejected",
			input:   "14155552671",
			wantErr: models.ErrUnsupportedPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectProvider(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
