package templates

import "github.com/chordsign/contractgen/pkg/model"

// WorkForHire returns the work-for-hire archetype: a commissioned piece whose
// rights transfer to the commissioner on payment.
func WorkForHire() model.TemplateDefinition {
	return model.TemplateDefinition{
		ID:          "work-for-hire",
		Name:        "Work-for-Hire Agreement",
		Description: "Commissioned work (production, session playing, artwork) with full rights transfer on payment.",
		Category:    "commission",
		Version:     1,
		SortOrder:   50,
		IsActive:    true,
		Fields: []model.TemplateField{
			{ID: "commissioner_name", Label: "Commissioner name", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "creator_name", Label: "Creator name", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "work_description", Label: "Description of the work", Type: model.FieldTypeTextarea, Required: true, Group: "work",
				Validation: &model.FieldValidation{MinLength: intp(10)}},
			{ID: "delivery_date", Label: "Delivery date", Type: model.FieldTypeDate, Required: true, Group: "work"},
			{ID: "total_fee", Label: "Total fee", Type: model.FieldTypeCurrency, Required: true, Group: "fees",
				Validation: &model.FieldValidation{Min: floatp(0)}},
			{ID: "payment_schedule", Label: "Payment schedule", Type: model.FieldTypeSelect, Required: true, Group: "fees",
				Options: []model.SelectOption{
					{Value: "in full on delivery", Label: "In full on delivery"},
					{Value: "half on signature, half on delivery", Label: "50% upfront, 50% on delivery"},
					{Value: "in agreed milestones", Label: "Agreed milestones"},
				}},
			{ID: "revisions_included", Label: "Revisions included", Type: model.FieldTypeNumber, Required: true, Group: "work",
				DefaultValue: 2, Validation: &model.FieldValidation{Min: floatp(0)}},
		},
		OptionalClauses: []model.OptionalClause{
			{
				ID:          "kill_fee",
				Name:        "Kill fee",
				Description: "A fee payable if the commission is cancelled after work begins.",
				Fields: []model.TemplateField{
					{ID: "kill_fee_amount", Label: "Kill fee", Type: model.FieldTypeCurrency, Required: true,
						Validation: &model.FieldValidation{Min: floatp(0)}},
				},
			},
			{
				ID:          "confidentiality",
				Name:        "Confidentiality",
				Description: "Both parties keep the commission and unreleased material confidential.",
				Fields: []model.TemplateField{
					{ID: "confidentiality_term_months", Label: "Confidentiality term (months)", Type: model.FieldTypeNumber, Required: true,
						DefaultValue: 24, Validation: &model.FieldValidation{Min: floatp(1)}},
				},
			},
		},
		Content: model.TemplateContent{
			Title: "Work-for-Hire Agreement: {{creator_name}} for {{commissioner_name}}",
			Sections: []model.TemplateSection{
				{
					ID:      "engagement",
					Heading: "1. ENGAGEMENT",
					Content: "{{commissioner_name}} (the \"Commissioner\") engages {{creator_name}} (the \"Creator\") to produce the work " +
						"described in clause 2 as a commissioned work. The Creator shall perform the engagement personally and to a " +
						"professional standard.",
				},
				{
					ID:      "deliverables",
					Heading: "2. DELIVERABLES",
					Content: "The commissioned work is described as follows:\n\n{{work_description}}\n\n" +
						"The Creator shall deliver the completed work no later than {{delivery_date}} in the format reasonably requested " +
						"by the Commissioner.",
				},
				{
					ID:      "compensation",
					Heading: "3. COMPENSATION",
					Content: "The Commissioner shall pay the Creator a total fee of {{total_fee}}, payable {{payment_schedule}}. " +
						"Late payment accrues interest at 4% above the base rate.",
				},
				{
					ID:      "ownership",
					Heading: "4. OWNERSHIP OF WORK",
					Content: "On receipt of payment in full, all rights in the commissioned work, including copyright, vest in the " +
						"Commissioner absolutely. Until then, the work remains the property of the Creator. The Creator waives moral rights " +
						"to the extent permitted by law, save for the right to be identified where credits are customary.",
				},
				{
					ID:      "revisions",
					Heading: "5. REVISIONS",
					Content: "The fee includes up to {{revisions_included}} rounds of reasonable revisions requested within 30 days of " +
						"delivery. Further revisions are chargeable at the Creator's standard rate, agreed in advance.",
				},
				{
					ID:         "killfee",
					Heading:    "6. KILL FEE",
					IsOptional: true,
					ClauseID:   "kill_fee",
					Content: "If the Commissioner cancels the engagement after work has begun but before delivery, the Commissioner shall " +
						"pay a kill fee of {{kill_fee_amount}} in full settlement, and the Creator retains all rights in material created.",
				},
				{
					ID:         "confidentiality",
					Heading:    "7. CONFIDENTIALITY",
					IsOptional: true,
					ClauseID:   "confidentiality",
					Content: "Each party shall keep the terms of this engagement and any unreleased material confidential for " +
						"{{confidentiality_term_months}} months from delivery, except where disclosure is required by law or agreed in " +
						"writing.",
				},
				{
					ID:      "signatures",
					Heading: "8. SIGNATURES",
					Content: "Signed by the parties on the dates written below.\n\n" +
						"Commissioner: {{commissioner_name}}\n\nSignature: ____________________  Date: ____________\n\n" +
						"Creator: {{creator_name}}\n\nSignature: ____________________  Date: ____________",
				},
			},
		},
	}
}
