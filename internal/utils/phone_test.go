package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/burnerlabs/gifbot-backend/internal/utils"
)

func TestFormatNationalNumber(t *testing.T) {
	t.Run("e164 number", func(t *testing.T) {
		require.Equal(t, "(555) 123-4567", utils.FormatNationalNumber("+15551234567"))
	})

	t.Run("bare national number", func(t *testing.T) {
		require.Equal(t, "(555) 987-6543", utils.FormatNationalNumber("5559876543"))
	})

	t.Run("unparseable input passes through", func(t *testing.T) {
		require.Equal(t, "not-a-number", utils.FormatNationalNumber("not-a-number"))
	})
}
