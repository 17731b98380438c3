package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MaineKuehn/dengraph/engine"
)

func TestParamsFromYAML(t *testing.T) {
	p, err := engine.ParamsFromYAML(strings.NewReader("eps: 0.5\neta: 4\n"))
	require.NoError(t, err)
	require.Equal(t, 0.5, p.Eps)
	require.Equal(t, 4, p.Eta)
}

func TestParamsFromYAMLRejectsNonPositiveEps(t *testing.T) {
	_, err := engine.ParamsFromYAML(strings.NewReader("eps: 0\neta: 4\n"))
	require.Error(t, err)
}

func TestParamsFromYAMLRejectsZeroEta(t *testing.T) {
	_, err := engine.ParamsFromYAML(strings.NewReader("eps: 1\neta: 0\n"))
	require.Error(t, err)
}
