package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/accordion/internal/accordion"
	"github.com/mmcdole/accordion/internal/adapter"
	"github.com/mmcdole/accordion/internal/domain"
	"github.com/mmcdole/accordion/internal/store"
	"github.com/mmcdole/accordion/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsOnlyOverridesSetFlags(t *testing.T) {
	f, args, err := parseFlags([]string{"-radio", "-active", "-1", "notes.md"})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.md"}, args)

	cfg := adapter.DefaultConfig()
	cfg.Accordion.Animate = true
	f.apply(cfg)

	assert.True(t, cfg.Accordion.Radio)
	assert.Equal(t, "-1", cfg.Accordion.ActiveIndex)
	assert.True(t, cfg.Accordion.Animate, "unset -animate keeps the config value")
	assert.True(t, cfg.Accordion.CloseAll)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, domain.At(-1), opts.ActiveIndex)
}

func TestParseFlagsBadActive(t *testing.T) {
	f, _, err := parseFlags([]string{"-active", "first", "notes.md"})
	require.NoError(t, err)

	cfg := adapter.DefaultConfig()
	f.apply(cfg)
	_, err = cfg.Options()
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPrintDocument(t *testing.T) {
	doc := &domain.Document{
		Title: "FAQ",
		Sections: []domain.Section{
			{Title: "Open", Body: "shown body"},
			{Title: "Closed", Body: "hidden body"},
		},
	}
	opts := domain.DefaultOptions()
	opts.ActiveIndex = domain.At(0)

	renderer := components.NewPanelRenderer(len(doc.Sections))
	coord, err := accordion.New(renderer, opts, adapter.NullLogger(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printDocument(&buf, doc, coord, renderer))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "▾ Open")
	assert.Contains(t, out, "shown body")
	assert.Contains(t, out, "▸ Closed")
	assert.NotContains(t, out, "hidden body")
}

func TestMaintainSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	f, args, err := parseFlags([]string{"-config", path, "-save-config", "-radio", "-close-all=false"})
	require.NoError(t, err)
	assert.Empty(t, args)

	cfg := adapter.DefaultConfig()
	f.apply(cfg)
	st, err := store.NewPanelStore("")
	require.NoError(t, err)
	require.NoError(t, maintain(f, cfg, st, adapter.NullLogger()))

	loaded, err := adapter.LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, loaded.Accordion.Radio)
	assert.False(t, loaded.Accordion.CloseAll)
}

func TestMaintainResetAll(t *testing.T) {
	st, err := store.NewPanelStore(t.TempDir())
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.Save("a.md", domain.PanelState{Expanded: []int{1}, Current: 1}))
	require.NoError(t, st.Save("b.md", domain.PanelState{Expanded: []int{0}, Current: 0}))

	f, _, err := parseFlags([]string{"-reset-all"})
	require.NoError(t, err)
	require.NoError(t, maintain(f, adapter.DefaultConfig(), st, adapter.NullLogger()))

	_, ok := st.Load("a.md")
	assert.False(t, ok)
	_, ok = st.Load("b.md")
	assert.False(t, ok)
}

func TestOutputWidth(t *testing.T) {
	assert.Equal(t, defaultPrintWidth, outputWidth(&bytes.Buffer{}))

	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, defaultPrintWidth, outputWidth(file), "regular files are not terminals")
}
