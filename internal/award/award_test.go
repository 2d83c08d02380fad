package award_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gigzen/internal/award"
)

func TestRates_TableIsValid(t *testing.T) {
	for _, b := range award.Brackets() {
		t.Run(string(b), func(t *testing.T) {
			r, err := award.Rates(b)
			require.NoError(t, err)
			assert.NoError(t, r.Validate())
		})
	}
}

func TestRates_Over20(t *testing.T) {
	r, err := award.Rates(award.Over20)
	require.NoError(t, err)

	assert.Equal(t, "27.14", r.Base.StringFixed(2))
	assert.Equal(t, "33.92", r.Evening.StringFixed(2))
	assert.Equal(t, "33.92", r.Saturday.StringFixed(2))
	assert.Equal(t, "40.70", r.Sunday.StringFixed(2))
	assert.Equal(t, "61.05", r.PublicHoliday.StringFixed(2))
}

func TestRates_Unknown(t *testing.T) {
	_, err := award.Rates(award.AgeBracket("17"))
	assert.ErrorIs(t, err, award.ErrUnknownBracket)
}

func TestParseAgeBracket(t *testing.T) {
	tests := []struct {
		in      string
		want    award.AgeBracket
		wantErr bool
	}{
		{in: "20+", want: award.Over20},
		{in: " Adult ", want: award.Over20},
		{in: "", want: award.Over20},
		{in: "19", want: award.Age19},
		{in: "18", want: award.Age18},
		{in: "16", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := award.ParseAgeBracket(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, award.ErrUnknownBracket)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateSet_Validate(t *testing.T) {
	good, err := award.Rates(award.Age18)
	require.NoError(t, err)

	zeroBase := good
	zeroBase.Base = decimal.Zero
	assert.Error(t, zeroBase.Validate())

	lowHoliday := good
	lowHoliday.PublicHoliday = decimal.NewFromInt(20)
	assert.Error(t, lowHoliday.Validate())
}
