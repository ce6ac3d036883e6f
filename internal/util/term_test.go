package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/zoteroxy/internal/util"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, util.IsTerminal(f))
}

func TestInitColor_Disabled(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	color.NoColor = false
	util.InitColor(true)
	assert.True(t, color.NoColor)
}
