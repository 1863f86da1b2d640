package namegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNames_PlainArray(t *testing.T) {
	req := require.New(t)
	names, err := parseNames(`["Red Pandas", "Blue Herons"]`, 2)
	req.NoError(err)
	req.Equal([]string{"Red Pandas", "Blue Herons"}, names)
}

func TestParseNames_FencedWithProse(t *testing.T) {
	req := require.New(t)
	text := "Here you go:\n```json\n[\"Otters\", \"Lynxes\", \"Corgis\"]\n```\n"
	names, err := parseNames(text, 3)
	req.NoError(err)
	req.Equal([]string{"Otters", "Lynxes", "Corgis"}, names)
}

func TestParseNames_WrongCount(t *testing.T) {
	req := require.New(t)
	_, err := parseNames(`["Otters"]`, 2)
	req.Error(err)
}

func TestParseNames_NoArray(t *testing.T) {
	req := require.New(t)
	_, err := parseNames("sorry, I cannot help with that", 2)
	req.Error(err)
}

func TestParseNames_EmptyName(t *testing.T) {
	req := require.New(t)
	_, err := parseNames(`["Otters", "  "]`, 2)
	req.Error(err)
}

func TestFallback(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"Group 1", "Group 2", "Group 3"}, Fallback(3))
}

func TestBuildPrompt_ListsEveryGroup(t *testing.T) {
	req := require.New(t)
	prompt := buildPrompt([][]string{{"Ada", "Ben"}, {"Cleo"}})
	req.Contains(prompt, "Group 1: Ada, Ben")
	req.Contains(prompt, "Group 2: Cleo")
	req.Contains(prompt, "JSON array")
}
