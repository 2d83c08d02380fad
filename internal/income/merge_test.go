package income_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gigzen/internal/income"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMerge(t *testing.T) {
	type testCase struct {
		name     string
		existing income.Record
		incoming income.Record
		verify   func(t *testing.T, got income.Record)
	}

	tests := []testCase{
		{
			name:     "DoorDashAccumulates",
			existing: income.Record{DoorDash: d("20")},
			incoming: income.Record{DoorDash: d("10")},
			verify: func(t *testing.T, got income.Record) {
				assert.Equal(t, "30", got.DoorDash.String())
			},
		},
		{
			name:     "TipsAccumulate",
			existing: income.Record{Tips: d("4.5")},
			incoming: income.Record{Tips: d("3")},
			verify: func(t *testing.T, got income.Record) {
				assert.Equal(t, "7.5", got.Tips.String())
			},
		},
		{
			name:     "ZeroColesKeepsExisting",
			existing: income.Record{Coles: d("50")},
			incoming: income.Record{Coles: decimal.Zero},
			verify: func(t *testing.T, got income.Record) {
				assert.Equal(t, "50", got.Coles.String())
			},
		},
		{
			name:     "NonzeroColesOverwrites",
			existing: income.Record{Coles: d("50")},
			incoming: income.Record{Coles: d("80")},
			verify: func(t *testing.T, got income.Record) {
				assert.Equal(t, "80", got.Coles.String())
			},
		},
		{
			name:     "UberEatsAndDiDiOverwriteOnlyWhenNonzero",
			existing: income.Record{UberEats: d("40"), DiDi: d("15")},
			incoming: income.Record{UberEats: d("55")},
			verify: func(t *testing.T, got income.Record) {
				assert.Equal(t, "55", got.UberEats.String())
				assert.Equal(t, "15", got.DiDi.String())
			},
		},
		{
			name:     "ColesHoursFollowColes",
			existing: income.Record{ColesHours: new(d("4"))},
			incoming: income.Record{ColesHours: new(d("7.5"))},
			verify: func(t *testing.T, got income.Record) {
				require.NotNil(t, got.ColesHours)
				assert.Equal(t, "7.5", got.ColesHours.String())
			},
		},
		{
			name:     "NilColesHoursKeepsExisting",
			existing: income.Record{ColesHours: new(d("4"))},
			incoming: income.Record{},
			verify: func(t *testing.T, got income.Record) {
				require.NotNil(t, got.ColesHours)
				assert.Equal(t, "4", got.ColesHours.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, income.Merge(tt.existing, tt.incoming))
		})
	}
}

func TestMerge_DoesNotAliasColesHours(t *testing.T) {
	hours := d("6")
	got := income.Merge(income.Record{}, income.Record{ColesHours: &hours})

	hours = d("1")

	assert.Equal(t, "6", got.ColesHours.String())
}

func TestRecord_Totals(t *testing.T) {
	r := income.Record{DoorDash: d("10"), UberEats: d("20"), DiDi: d("5"), Coles: d("100"), Tips: d("2")}

	assert.Equal(t, "37", r.Gig().String())
	assert.Equal(t, "137", r.Total().String())
}
