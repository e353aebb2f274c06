package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swcatalog/starwars/internal/swapi"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := getRootCmd()

	for _, name := range []string{"serve", "import"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestParseResources(t *testing.T) {
	all, err := parseResources(nil)
	require.NoError(t, err)
	assert.Equal(t, swapi.Resources, all)

	picked, err := parseResources([]string{"Planets", "starships"})
	require.NoError(t, err)
	assert.Equal(t, []swapi.Resource{swapi.Planets, swapi.Starships}, picked)

	_, err = parseResources([]string{"droids"})
	assert.Error(t, err)
}
