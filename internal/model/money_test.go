package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyJSON(t *testing.T) {
	tests := map[string]string{
		"80":     `"80.00"`,
		"249.99": `"249.99"`,
		"0":      `"0.00"`,
		"10.005": `"10.01"`,
		"-0.004": `"0.00"`,
	}
	for in, want := range tests {
		b, err := json.Marshal(NewMoney(decimal.RequireFromString(in)))
		require.NoError(t, err)
		assert.Equal(t, want, string(b), in)
	}
}

func TestMoneyInStruct(t *testing.T) {
	e := Experience{ID: "e1", Price: MustMoney("129.99")}
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"price":"129.99"`)
	assert.NotContains(t, string(b), `"slots"`)
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan([]byte("189.99")))
	assert.Equal(t, "189.99", m.String())

	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "189.99", v)
}
