package personkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/personkit"
)

func TestMaritalStatusString(t *testing.T) {
	cases := []struct {
		status personkit.MaritalStatus
		want   string
	}{
		{personkit.Single, "single"},
		{personkit.Married, "married"},
		{personkit.JointFiling, "joint_filing"},
		{personkit.SeparateFiling, "separate_filing"},
		{personkit.HeadOfHousehold, "head_of_household"},
		{personkit.SurvivingSpouse, "surviving_spouse"},
		{personkit.MaritalStatus(42), "unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.status.String())
	}
}

func TestMaritalStatusValid(t *testing.T) {
	t.Run("named constants are valid", func(t *testing.T) {
		for s := personkit.Single; s <= personkit.SurvivingSpouse; s++ {
			assert.True(t, s.Valid(), s.String())
		}
	})

	t.Run("out of range values are not", func(t *testing.T) {
		assert.False(t, personkit.MaritalStatus(-1).Valid())
		assert.False(t, personkit.MaritalStatus(6).Valid())
	})
}

func TestParseMaritalStatus(t *testing.T) {
	t.Run("round-trips every status", func(t *testing.T) {
		for s := personkit.Single; s <= personkit.SurvivingSpouse; s++ {
			parsed, err := personkit.ParseMaritalStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := personkit.ParseMaritalStatus("divorced")
		require.Error(t, err)
		assert.ErrorIs(t, err, personkit.ErrUnknownMaritalStatus)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := personkit.ParseMaritalStatus("Married")
		assert.ErrorIs(t, err, personkit.ErrUnknownMaritalStatus)
	})
}

func TestMaritalStatusZeroValue(t *testing.T) {
	var s personkit.MaritalStatus
	assert.Equal(t, personkit.Single, s)
}
