package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatter_InvalidLocale(t *testing.T) {
	_, err := NewFormatter("not a locale", 2)
	assert.Error(t, err)
}

func TestFormatter_Format_USD(t *testing.T) {
	f, err := NewFormatter("en-US", 2)
	require.NoError(t, err)

	assert.Equal(t, "USD", f.Unit())
	assert.Equal(t, "$1,234.50", f.Format(1234.5))
	assert.Equal(t, "$0.00", f.Format(0))
}

func TestFormatter_Format_ZeroDecimalCurrency(t *testing.T) {
	f, err := NewFormatter("ko-KR", 0)
	require.NoError(t, err)

	assert.Equal(t, "KRW", f.Unit())
	assert.Equal(t, "₩1,000", f.Format(1000))
}

func TestFormatter_Format_PadsFractionDigits(t *testing.T) {
	f, err := NewFormatter("en-US", 4)
	require.NoError(t, err)

	assert.Equal(t, "$10.0000", f.Format(10))
}
