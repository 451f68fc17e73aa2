package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guideSource(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join("../../../cmd/game/configs/scripts", name))
}

func TestDialogue_GuideScript(t *testing.T) {
	d := NewDialogue(guideSource)

	tests := []struct {
		name     string
		input    Input
		contains string
		count    int
	}{
		{"first visit", Input{Character: "woman", Origin: "ChooseCharacter"}, "Welcome to town, woman!", 2},
		{"back from projects", Input{Character: "man", Origin: "ProjectsBuilding"}, "Back from the projects already, man?", 2},
		{"back from about", Input{Character: "man", Origin: "AboutBuilding"}, "Now you know who built this place.", 2},
		{"talked before", Input{Character: "man", Origin: "ProjectsBuilding", Talks: 1}, "Still here? The buildings will not bite.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := d.Lines("guide.tengo", tt.input)
			require.NoError(t, err)
			assert.Len(t, lines, tt.count)
			assert.Contains(t, lines, tt.contains)
		})
	}
}

func TestDialogue_CachesCompiledScript(t *testing.T) {
	loads := 0
	d := NewDialogue(func(string) ([]byte, error) {
		loads++
		return []byte(`lines := ["hi " + character]`), nil
	})

	_, err := d.Lines("a", Input{Character: "man"})
	require.NoError(t, err)
	lines, err := d.Lines("a", Input{Character: "woman"})
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
	assert.Equal(t, []string{"hi woman"}, lines)

	d.Forget("a")
	_, err = d.Lines("a", Input{})
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestDialogue_Errors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		d := NewDialogue(func(string) ([]byte, error) { return nil, errors.New("nope") })
		_, err := d.Lines("x.tengo", Input{})
		assert.ErrorContains(t, err, "failed to load script x.tengo")
	})

	t.Run("compile error", func(t *testing.T) {
		d := NewDialogue(func(string) ([]byte, error) { return []byte(`lines := [`), nil })
		_, err := d.Lines("x.tengo", Input{})
		assert.ErrorContains(t, err, "failed to compile script x.tengo")
	})

	t.Run("no lines", func(t *testing.T) {
		d := NewDialogue(func(string) ([]byte, error) { return []byte(`greeting := "hi"`), nil })
		_, err := d.Lines("x.tengo", Input{})
		assert.ErrorContains(t, err, "no lines defined")
	})
}
