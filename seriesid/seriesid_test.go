package seriesid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromNameKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		id   uint64
	}{
		{"", 0xef46db3751d8e999},
		{"test", 0x4fdcca5ddb678139},
		{"this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		require.Equal(t, tt.id, FromName(tt.name))
	}
}

func TestFromNameIsDeterministic(t *testing.T) {
	require.Equal(t, FromName("cpu.usage"), FromName("cpu.usage"))
}

func TestFromNameDistinguishesNames(t *testing.T) {
	require.NotEqual(t, FromName("cpu.usage"), FromName("cpu.usage.idle"))
}
