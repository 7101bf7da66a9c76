package hubspot

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/lead"
)

// noteToContactAssociation is HubSpot's built-in note → contact
// association type.
const noteToContactAssociation = 202

type objectInput struct {
	Properties map[string]string `json:"properties"`
}

type objectResponse struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type searchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type filterGroup struct {
	Filters []searchFilter `json:"filters"`
}

type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties"`
	Limit        int           `json:"limit"`
}

type searchResponse struct {
	Total   int              `json:"total"`
	Results []objectResponse `json:"results"`
}

type associationType struct {
	Category string `json:"associationCategory"`
	TypeID   int    `json:"associationTypeId"`
}

type associationTarget struct {
	ID string `json:"id"`
}

type association struct {
	To    associationTarget `json:"to"`
	Types []associationType `json:"types"`
}

type noteInput struct {
	Properties   map[string]string `json:"properties"`
	Associations []association     `json:"associations"`
}

type pageResponse struct {
	Results []objectResponse `json:"results"`
}

func toObjectInput(props lead.Properties) objectInput {
	return objectInput{Properties: map[string]string(props)}
}

func toEmailSearch(email string) searchRequest {
	return searchRequest{
		FilterGroups: []filterGroup{{
			Filters: []searchFilter{{PropertyName: lead.PropEmail, Operator: "EQ", Value: email}},
		}},
		Properties: []string{lead.PropEmail},
		Limit:      1,
	}
}

// toNoteInput renders the note as HTML. Every line is stripped of markup by
// policy before line breaks are added, so submitter text cannot inject HTML
// into the CRM timeline.
func toNoteInput(contactID string, note lead.Note, policy *bluemonday.Policy) noteInput {
	lines := strings.Split(note.Body, "\n")
	for i, line := range lines {
		lines[i] = policy.Sanitize(line)
	}

	return noteInput{
		Properties: map[string]string{
			"hs_note_body": strings.Join(lines, "<br>"),
			"hs_timestamp": lead.FormatTimestamp(note.Timestamp),
		},
		Associations: []association{{
			To:    associationTarget{ID: contactID},
			Types: []associationType{{Category: "HUBSPOT_DEFINED", TypeID: noteToContactAssociation}},
		}},
	}
}
