package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLevelAndOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	defer func() {
		SetOutput(os.Stderr)
		SetLevel("info")
	}()

	require.NoError(t, SetLevel("warn"))
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	WithField("network", "BTC").Error("failed")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown 2")
	require.Contains(t, out, "network=BTC")

	require.Error(t, SetLevel("loud"))
}
