package app

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("storage.path", "/tmp/store")
	viper.Set("graph.name", "current")
	viper.Set("server.listen", "127.0.0.1:0")

	a, err := NewApp()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/store", a.BasePath)
	assert.Equal(t, "current", a.GraphName)
	assert.Equal(t, "127.0.0.1:0", a.Listen)
}

func TestNewApp_MissingStoragePath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("graph.name", "current")

	_, err := NewApp()
	assert.ErrorContains(t, err, "storage path not set")
}
