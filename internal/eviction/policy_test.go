package eviction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alesierraalta/lumocache/config"
)

func TestNewKnownStrategies(t *testing.T) {
	for _, strategy := range []config.Strategy{config.StrategyLRU, config.StrategyLFU, config.StrategyFIFO} {
		p, err := New(strategy)
		require.NoError(t, err)
		require.NotNil(t, p)
	}
}

func TestNewUnknownStrategy(t *testing.T) {
	_, err := New(config.Strategy("ttl"))
	require.Error(t, err)
}
