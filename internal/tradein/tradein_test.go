package tradein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// VIN validation
// ============================================================================

func TestValidateVIN(t *testing.T) {
	tests := []struct {
		name    string
		vin     string
		wantErr bool
	}{
		{"valid", "1GCUYDED5KZ345678", false},
		{"valid lowercase", "1gcuyded5kz345678", false},
		{"valid with whitespace", "  1GCUYDED5KZ345678  ", false},
		{"too short", "1GCUYDED5KZ34567", true},
		{"too long", "1GCUYDED5KZ3456789", true},
		{"contains I", "IGCUYDED5KZ345678", true},
		{"contains O", "1GCUYDED5KZ34567O", true},
		{"contains Q", "1GCUYDEDQKZ345678", true},
		{"contains punctuation", "1GCUYDED5KZ34567-", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVIN(tt.vin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeVIN(t *testing.T) {
	assert.Equal(t, "1GCUYDED5KZ345678", NormalizeVIN(" 1gcuyded5kz345678 "))
}

// ============================================================================
// Trade data
// ============================================================================

func TestTradeData_AnswerPayoff(t *testing.T) {
	d := NewTradeData()
	assert.False(t, d.PayoffAnswered())
	assert.False(t, d.OwesOnVehicle())

	d.AnswerPayoff(true)
	d.PayoffAmount = 15000
	d.FinancedWith = "GM Financial"
	assert.True(t, d.PayoffAnswered())
	assert.True(t, d.OwesOnVehicle())

	// Flipping the answer to no discards the payoff detail.
	d.AnswerPayoff(false)
	assert.True(t, d.PayoffAnswered())
	assert.False(t, d.OwesOnVehicle())
	assert.Zero(t, d.PayoffAmount)
	assert.Empty(t, d.FinancedWith)
}

func TestTradeData_ApplyDecode(t *testing.T) {
	d := NewTradeData()
	d.Make = "Chevrolet"

	d.ApplyDecode(DecodedVehicle{Year: "2019", Make: "GMC", Model: "Equinox", Trim: "LT"})

	assert.Equal(t, "2019", d.Year)
	assert.Equal(t, "Chevrolet", d.Make, "decode must not overwrite typed fields")
	assert.Equal(t, "Equinox", d.Model)
	assert.Equal(t, "LT", d.Trim)
}

func TestTradeData_AddPhoto(t *testing.T) {
	d := NewTradeData()

	d.AddPhoto(Photo{Slot: SlotFront, Path: "/tmp/a.jpg"})
	d.AddPhoto(Photo{Slot: SlotFront, Path: "/tmp/b.jpg"})

	require.Len(t, d.Photos, 1)
	assert.Equal(t, "/tmp/b.jpg", d.Photos[SlotFront].Path)
}

func TestPhotoSlots(t *testing.T) {
	slots := PhotoSlots()
	require.Len(t, slots, 5)
	assert.Equal(t, SlotFront, slots[0])
	assert.Equal(t, SlotDamage, slots[4])
}
