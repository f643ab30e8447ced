package templates

import "github.com/chordsign/contractgen/pkg/model"

// ArtistCollaboration returns the artist collaboration agreement archetype:
// two artists sharing revenue on a joint project, with optional exclusivity,
// credit, and termination provisions.
func ArtistCollaboration() model.TemplateDefinition {
	return model.TemplateDefinition{
		ID:          "artist-collaboration",
		Name:        "Artist Collaboration Agreement",
		Description: "Joint project agreement between two artists covering scope, revenue split, and ownership.",
		Category:    "collaboration",
		Version:     2,
		SortOrder:   10,
		IsActive:    true,
		Fields: []model.TemplateField{
			{ID: "party_a_name", Label: "Party A name", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "party_a_role", Label: "Party A role", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "party_b_name", Label: "Party B name", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "party_b_role", Label: "Party B role", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "project_title", Label: "Project title", Type: model.FieldTypeText, Required: true, Group: "project",
				Validation: &model.FieldValidation{MaxLength: intp(120)}},
			{ID: "project_description", Label: "Project description", Type: model.FieldTypeTextarea, Required: true, Group: "project",
				Validation: &model.FieldValidation{MinLength: intp(10)}},
			{ID: "start_date", Label: "Start date", Type: model.FieldTypeDate, Required: true, Group: "project"},
			{ID: "party_a_split", Label: "Party A revenue share", Type: model.FieldTypeNumber, Required: true, Group: "revenue",
				Validation: &model.FieldValidation{Min: floatp(0), Max: floatp(100)}},
			{ID: "party_b_split", Label: "Party B revenue share", Type: model.FieldTypeNumber, Required: true, Group: "revenue",
				Validation: &model.FieldValidation{Min: floatp(0), Max: floatp(100)}},
			{ID: "governing_law", Label: "Governing law", Type: model.FieldTypeText, Required: true, Group: "legal",
				DefaultValue: "England and Wales"},
		},
		OptionalClauses: []model.OptionalClause{
			{
				ID:          "exclusivity",
				Name:        "Exclusivity",
				Description: "Both parties work exclusively with each other on material in the agreed scope for a fixed term.",
				Fields: []model.TemplateField{
					{ID: "exclusivity_months", Label: "Exclusivity term (months)", Type: model.FieldTypeNumber, Required: true,
						Validation: &model.FieldValidation{Min: floatp(1)}},
					{ID: "exclusivity_scope", Label: "Exclusivity scope", Type: model.FieldTypeTextarea, Required: true},
				},
			},
			{
				ID:             "credit_requirements",
				Name:           "Credit requirements",
				Description:    "How each party must be credited on releases and promotional material.",
				DefaultEnabled: true,
				Fields: []model.TemplateField{
					{ID: "credit_text", Label: "Credit text", Type: model.FieldTypeText, Required: true,
						Validation: &model.FieldValidation{MaxLength: intp(200)}},
				},
			},
			{
				ID:             "termination",
				Name:           "Termination",
				Description:    "Either party may terminate with written notice.",
				DefaultEnabled: true,
				Fields: []model.TemplateField{
					{ID: "termination_notice_days", Label: "Termination notice (days)", Type: model.FieldTypeNumber, Required: true,
						DefaultValue: 30, Validation: &model.FieldValidation{Min: floatp(7)}},
				},
			},
		},
		Content: model.TemplateContent{
			Title: "Artist Collaboration Agreement: {{project_title}}",
			Sections: []model.TemplateSection{
				{
					ID:      "parties",
					Heading: "1. PARTIES",
					Content: "This Artist Collaboration Agreement is entered into on {{start_date}} between:\n\n" +
						"Party A: {{party_a_name}}, acting as {{party_a_role}}; and\n" +
						"Party B: {{party_b_name}}, acting as {{party_b_role}}.\n\n" +
						"Each party warrants that it is free to enter into this Agreement and that doing so breaches no existing obligation.",
				},
				{
					ID:      "scope",
					Heading: "2. PROJECT SCOPE",
					Content: "The parties will collaborate on the project titled \"{{project_title}}\".\n\n" +
						"{{project_description}}\n\n" +
						"Any material change to the scope above requires the written agreement of both parties.",
				},
				{
					ID:      "revenue",
					Heading: "3. REVENUE SHARING",
					Content: "Net revenue arising from the project shall be divided as follows:\n\n" +
						"Party A: {{party_a_split}}% of net revenue\n" +
						"Party B: {{party_b_split}}% of net revenue\n\n" +
						"Net revenue means gross receipts less documented third-party costs incurred with the approval of both parties. " +
						"Statements shall be issued quarterly, with payment due within 30 days of each statement.",
				},
				{
					ID:      "ip",
					Heading: "4. INTELLECTUAL PROPERTY",
					Content: "Copyright in works created jointly under this Agreement vests in the parties in the same proportions as the revenue " +
						"split in clause 3, unless a work is registered otherwise by mutual written agreement. Neither party may license, assign, " +
						"or otherwise encumber a jointly owned work without the consent of the other, such consent not to be unreasonably withheld.",
				},
				{
					ID:         "exclusivity",
					Heading:    "5. EXCLUSIVITY",
					IsOptional: true,
					ClauseID:   "exclusivity",
					Content: "For a period of {{exclusivity_months}} months from the start date, each party shall work exclusively with the other " +
						"within the following scope:\n\n{{exclusivity_scope}}\n\n" +
						"Work outside that scope remains unrestricted.",
				},
				{
					ID:         "credit",
					Heading:    "6. CREDIT REQUIREMENTS",
					IsOptional: true,
					ClauseID:   "credit_requirements",
					Content: "All releases, artwork, and promotional material relating to the project shall carry the following credit:\n\n" +
						"{{credit_text}}\n\n" +
						"Inadvertent failure to credit is not a breach where it is corrected promptly on notice.",
				},
				{
					ID:         "termination",
					Heading:    "7. TERMINATION",
					IsOptional: true,
					ClauseID:   "termination",
					Content: "Either party may terminate this Agreement by giving {{termination_notice_days}} days' written notice. " +
						"Termination does not affect either party's share of revenue from works completed before the notice expires.",
				},
				{
					ID:      "general",
					Heading: "8. GENERAL PROVISIONS",
					Content: "This Agreement is the entire agreement between the parties on its subject matter and is governed by the laws of " +
						"{{governing_law}}. Amendments are valid only in writing signed by both parties. If any provision is held unenforceable, " +
						"the remainder continues in force.",
				},
				{
					ID:      "signatures",
					Heading: "9. SIGNATURES",
					Content: "Signed by the parties on the dates written below.\n\n" +
						"Party A: {{party_a_name}}\n\nSignature: ____________________  Date: ____________\n\n" +
						"Party B: {{party_b_name}}\n\nSignature: ____________________  Date: ____________",
				},
			},
		},
	}
}
