package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinecta/kinecta/pkg/conversation"
	"github.com/kinecta/kinecta/pkg/heritage"
	"github.com/kinecta/kinecta/pkg/profile"
)

func hakkaSelection() heritage.Selection {
	return heritage.Selection{
		Ethnicity:    "hakka",
		Region:       "Meizhou",
		TimePeriod:   "1890s-1910s",
		Relationship: "grandfather",
		Occupation:   "Rice Farmer",
		Traits:       "patient and wise",
	}
}

func TestBuildSystemContextMentionsAllSelectionFields(t *testing.T) {
	sel := hakkaSelection()
	persona := heritage.NewPersona(sel)

	systemContext, turns, err := Build(sel, persona, nil, nil, "Hello")
	require.NoError(t, err)

	assert.Contains(t, systemContext, "You are Your grandfather, a hakka ancestor from Meizhou during the 1890s-1910s.")
	assert.Contains(t, systemContext, "You worked as a Rice Farmer.")
	assert.Contains(t, systemContext, "Your personality traits: patient and wise")
	assert.Contains(t, systemContext, `"my child", "little one", or "dear one"`)

	require.Len(t, turns, 2)
	assert.Equal(t, RoleContext, turns[0].Role)
	assert.Equal(t, systemContext, turns[0].Content)
	assert.Equal(t, RoleRequester, turns[1].Role)
	assert.Equal(t, "Hello", turns[1].Content)
}

func TestBuildIsDeterministic(t *testing.T) {
	sel := hakkaSelection()
	persona := heritage.NewPersona(sel)
	userProfile := &profile.Profile{
		Name:      "Mei",
		Age:       30,
		Location:  "Singapore",
		Languages: []string{"English", "Hakka"},
	}
	history := conversation.Conversation{
		conversation.NewMessage(conversation.SenderUser, "Hello"),
		conversation.NewMessage(conversation.SenderAncestor, "my child"),
	}

	first, firstTurns, err := Build(sel, persona, userProfile, history, "Tell me more")
	require.NoError(t, err)
	second, secondTurns, err := Build(sel, persona, userProfile, history, "Tell me more")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTurns, secondTurns)
}

func TestBuildOrdersHistoryAndAppendsUserText(t *testing.T) {
	sel := hakkaSelection()
	persona := heritage.NewPersona(sel)
	history := conversation.Conversation{
		conversation.NewMessage(conversation.SenderUser, "one"),
		conversation.NewMessage(conversation.SenderAncestor, "two"),
		conversation.NewMessage(conversation.SenderUser, "three"),
		conversation.NewMessage(conversation.SenderAncestor, "four"),
	}

	_, turns, err := Build(sel, persona, nil, history, "five")
	require.NoError(t, err)

	require.Len(t, turns, 6)
	assert.Equal(t, RoleContext, turns[0].Role)

	expected := []struct {
		role    Role
		content string
	}{
		{RoleRequester, "one"},
		{RoleResponder, "two"},
		{RoleRequester, "three"},
		{RoleResponder, "four"},
		{RoleRequester, "five"},
	}
	for i, want := range expected {
		assert.Equal(t, want.role, turns[i+1].Role)
		assert.Equal(t, want.content, turns[i+1].Content)
	}
}

func TestDescendantContextOmittedWithoutProfile(t *testing.T) {
	sel := hakkaSelection()
	persona := heritage.NewPersona(sel)

	systemContext, _, err := Build(sel, persona, nil, nil, "Hello")
	require.NoError(t, err)
	assert.NotContains(t, systemContext, "Know about your descendant")

	// an empty profile behaves the same as no profile
	systemContext, _, err = Build(sel, persona, &profile.Profile{}, nil, "Hello")
	require.NoError(t, err)
	assert.NotContains(t, systemContext, "Know about your descendant")
}

func TestDescendantContextIncludesOnlyPresentFields(t *testing.T) {
	sel := hakkaSelection()
	persona := heritage.NewPersona(sel)
	userProfile := &profile.Profile{
		Name:      "Mei",
		Location:  "Singapore",
		Languages: []string{"English", "Hakka"},
	}

	systemContext, _, err := Build(sel, persona, userProfile, nil, "Hello")
	require.NoError(t, err)

	assert.Contains(t, systemContext, "Know about your descendant:")
	assert.Contains(t, systemContext, "Your descendant's name is Mei")
	assert.Contains(t, systemContext, "They currently live in Singapore")
	assert.Contains(t, systemContext, "They speak: English, Hakka")

	// absent fields leave no trace, not even an empty line
	assert.NotContains(t, systemContext, "years old")
	assert.NotContains(t, systemContext, "They work as")
	assert.NotContains(t, systemContext, "About them")
	assert.NotContains(t, systemContext, "family background")
	assert.False(t, strings.Contains(systemContext, "\n\n\n"))
}
