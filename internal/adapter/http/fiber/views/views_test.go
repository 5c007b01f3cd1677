package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:       "R$ 0,00",
		250:     "R$ 250,00",
		199.9:   "R$ 199,90",
		1250:    "R$ 1.250,00",
		1234567: "R$ 1.234.567,00",
		-35.5:   "-R$ 35,50",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMoney(in))
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", FormatDate(time.Time{}))
	assert.Equal(t, "01/05/1990", FormatDate(time.Date(1990, time.May, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "10/12/2025 10:00", FormatDateTime(time.Date(2025, time.December, 10, 10, 0, 0, 0, time.Local)))
}

func TestNewEngine_LoadsTemplates(t *testing.T) {
	engine := NewEngine()

	require.NoError(t, engine.Load())
}
