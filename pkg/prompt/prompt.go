package prompt

import (
	"fmt"
	"strings"

	"github.com/go-go-golems/glazed/pkg/helpers/templating"
	pkgerrors "github.com/pkg/errors"

	"github.com/kinecta/kinecta/pkg/conversation"
	"github.com/kinecta/kinecta/pkg/heritage"
	"github.com/kinecta/kinecta/pkg/profile"
)

// Role tags one entry of a generation request.
type Role string

const (
	// RoleContext carries the system-context string and is always the first
	// entry of a request.
	RoleContext   Role = "context"
	RoleRequester Role = "requester"
	RoleResponder Role = "responder"
)

// Turn is one role-tagged entry of a generation request.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

const systemContextTemplate = `You are {{ .PersonaName }}, a {{ .Ethnicity }} ancestor from {{ .Region }} during the {{ .TimePeriod }}. You worked as a {{ .Occupation }}.

Your personality traits: {{ .Traits }}

You are speaking with your descendant across generations. Respond authentically as this ancestor would, incorporating:
- Cultural wisdom and sayings from {{ .Ethnicity }} heritage
- Historical context from {{ .TimePeriod }}
- Life experiences as a {{ .Occupation }}
- Traditional values and family-centered worldview
- Occasional use of Chinese phrases with translations when appropriate

Keep responses warm, wise, and culturally authentic. Address your descendant with terms of endearment like "my child", "little one", or "dear one".{{ .DescendantContext }}`

// Build produces the system-context string and the ordered request turns for
// one generation call. The first turn always carries the system context; prior
// messages follow in order, and userText is appended as the final requester
// turn.
//
// Build is pure and deterministic: identical inputs always yield identical
// output, so it can be tested without a network.
func Build(
	sel heritage.Selection,
	persona heritage.Persona,
	userProfile *profile.Profile,
	history conversation.Conversation,
	userText string,
) (string, []Turn, error) {
	systemContext, err := buildSystemContext(sel, persona, userProfile)
	if err != nil {
		return "", nil, err
	}

	turns := make([]Turn, 0, len(history)+2)
	turns = append(turns, Turn{Role: RoleContext, Content: systemContext})
	for _, msg := range history {
		role := RoleRequester
		if msg.Sender == conversation.SenderAncestor {
			role = RoleResponder
		}
		turns = append(turns, Turn{Role: role, Content: msg.Content})
	}
	turns = append(turns, Turn{Role: RoleRequester, Content: userText})

	return systemContext, turns, nil
}

func buildSystemContext(sel heritage.Selection, persona heritage.Persona, userProfile *profile.Profile) (string, error) {
	tmpl, err := templating.CreateTemplate("system-context").Parse(systemContextTemplate)
	if err != nil {
		return "", pkgerrors.Wrap(err, "parse system context template")
	}

	data := map[string]interface{}{
		"PersonaName":       persona.Name,
		"Ethnicity":         sel.Ethnicity,
		"Region":            sel.Region,
		"TimePeriod":        sel.TimePeriod,
		"Occupation":        sel.Occupation,
		"Traits":            sel.Traits,
		"DescendantContext": buildDescendantContext(userProfile),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", pkgerrors.Wrap(err, "render system context template")
	}
	return sb.String(), nil
}

// buildDescendantContext renders the optional descendant block from the
// profile fields that are actually present. Absent fields are omitted
// entirely, the block never mentions what is missing.
func buildDescendantContext(p *profile.Profile) string {
	if p == nil {
		return ""
	}

	parts := []string{}
	if p.Name != "" {
		parts = append(parts, fmt.Sprintf("Your descendant's name is %s", p.Name))
	}
	if p.Age > 0 {
		parts = append(parts, fmt.Sprintf("They are %d years old", p.Age))
	}
	if p.Location != "" {
		parts = append(parts, fmt.Sprintf("They currently live in %s", p.Location))
	}
	if p.Occupation != "" {
		parts = append(parts, fmt.Sprintf("They work as a %s", p.Occupation))
	}
	if p.PersonalBackground != "" {
		parts = append(parts, fmt.Sprintf("About them: %s", p.PersonalBackground))
	}
	if p.FamilyBackground != "" {
		parts = append(parts, fmt.Sprintf("Their family background: %s", p.FamilyBackground))
	}
	if p.CulturalBackground != "" {
		parts = append(parts, fmt.Sprintf("Their cultural background: %s", p.CulturalBackground))
	}
	if len(p.Languages) > 0 {
		parts = append(parts, fmt.Sprintf("They speak: %s", strings.Join(p.Languages, ", ")))
	}

	if len(parts) == 0 {
		return ""
	}

	return "\n\nKnow about your descendant:\n" + strings.Join(parts, "\n") +
		"\n\nUse this information naturally in conversation to be more personal and relatable. " +
		"You might reference their life, ask about their work, mention shared cultural elements, " +
		"or draw connections between your time and theirs."
}
