package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDerived(t *testing.T) {
	tests := []struct {
		name       string
		totalFee   float64
		discount   float64
		wantDC     int64
		wantRemark string
	}{
		{"discounted", 1000, 100, 200, RemarkDiscounted},
		{"no discount", 1000, 0, 300, RemarkDefault},
		{"clamped to zero", 100, 100, 0, RemarkDiscounted},
		{"rounded", 105, 0, 32, RemarkDefault}, // 31.5 rounds up
		{"zero fee", 0, 0, 0, RemarkDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, remark := ComputeDerived(tt.totalFee, tt.discount, 0.3)
			assert.Equal(t, tt.wantDC, dc)
			assert.Equal(t, tt.wantRemark, remark)
		})
	}
}

func TestComputeDerivedCustomRate(t *testing.T) {
	dc, _ := ComputeDerived(1000, 0, 0.25)
	assert.Equal(t, int64(250), dc)
}
