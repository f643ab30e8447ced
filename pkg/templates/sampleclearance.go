package templates

import "github.com/chordsign/contractgen/pkg/model"

// SampleClearance returns the sample clearance archetype: permission to use a
// portion of an existing work in a new one.
func SampleClearance() model.TemplateDefinition {
	return model.TemplateDefinition{
		ID:          "sample-clearance",
		Name:        "Sample Clearance Agreement",
		Description: "Clearance of a sample from an existing recording for use in a new work.",
		Category:    "licensing",
		Version:     1,
		SortOrder:   40,
		IsActive:    true,
		Fields: []model.TemplateField{
			{ID: "requesting_artist", Label: "Requesting artist", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "rights_holder", Label: "Rights holder", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "original_work", Label: "Original work", Type: model.FieldTypeText, Required: true, Group: "material"},
			{ID: "sampled_portion", Label: "Sampled portion", Type: model.FieldTypeTextarea, Required: true, Group: "material",
				Validation: &model.FieldValidation{MinLength: intp(10)}},
			{ID: "new_work_title", Label: "New work title", Type: model.FieldTypeText, Required: true, Group: "material"},
			{ID: "clearance_fee", Label: "Clearance fee", Type: model.FieldTypeCurrency, Required: true, Group: "fees",
				Validation: &model.FieldValidation{Min: floatp(0)}},
			{ID: "royalty_percentage", Label: "Royalty percentage", Type: model.FieldTypeNumber, Required: true, Group: "fees",
				Validation: &model.FieldValidation{Min: floatp(0), Max: floatp(100)}},
			{ID: "credit_line", Label: "Credit line", Type: model.FieldTypeText, Required: true, Group: "credit"},
		},
		OptionalClauses: []model.OptionalClause{
			{
				ID:          "advance_payment",
				Name:        "Advance payment",
				Description: "An advance against royalties payable on signature.",
				Fields: []model.TemplateField{
					{ID: "advance_amount", Label: "Advance amount", Type: model.FieldTypeCurrency, Required: true,
						Validation: &model.FieldValidation{Min: floatp(0)}},
				},
			},
			{
				ID:          "usage_limitation",
				Name:        "Usage limitation",
				Description: "Limits on the media or formats in which the new work may exploit the sample.",
				Fields: []model.TemplateField{
					{ID: "usage_scope", Label: "Permitted usage", Type: model.FieldTypeTextarea, Required: true},
				},
			},
		},
		Content: model.TemplateContent{
			Title: "Sample Clearance Agreement: {{new_work_title}}",
			Sections: []model.TemplateSection{
				{
					ID:      "parties",
					Heading: "1. PARTIES",
					Content: "This Sample Clearance Agreement is made between {{rights_holder}} (the \"Rights Holder\") and " +
						"{{requesting_artist}} (the \"Artist\"). The Rights Holder warrants that it controls the rights in the " +
						"original work sufficient to grant the clearance below.",
				},
				{
					ID:      "material",
					Heading: "2. SAMPLED MATERIAL",
					Content: "The cleared material is a portion of \"{{original_work}}\", described as follows:\n\n{{sampled_portion}}\n\n" +
						"The material will be embodied in the new work provisionally titled \"{{new_work_title}}\".",
				},
				{
					ID:      "grant",
					Heading: "3. GRANT OF CLEARANCE",
					Content: "The Rights Holder grants the Artist a non-exclusive, worldwide license to reproduce and exploit the cleared " +
						"material as embodied in the new work. The clearance does not extend to use of the material outside the new work.",
				},
				{
					ID:      "fees",
					Heading: "4. FEES",
					Content: "The Artist shall pay a clearance fee of {{clearance_fee}} within 14 days of signature, plus an ongoing royalty " +
						"of {{royalty_percentage}}% of net receipts from the new work, accounted semi-annually.",
				},
				{
					ID:         "advance",
					Heading:    "5. ADVANCE",
					IsOptional: true,
					ClauseID:   "advance_payment",
					Content: "The Artist shall pay the Rights Holder an advance of {{advance_amount}} on signature, recoupable against the " +
						"royalty in clause 4 but not refundable.",
				},
				{
					ID:         "usage",
					Heading:    "6. USAGE LIMITATIONS",
					IsOptional: true,
					ClauseID:   "usage_limitation",
					Content: "Exploitation of the new work embodying the cleared material is limited to:\n\n{{usage_scope}}\n\n" +
						"Any other exploitation requires further written consent of the Rights Holder.",
				},
				{
					ID:      "credit",
					Heading: "7. CREDIT",
					Content: "All releases of the new work shall credit the original work as follows:\n\n{{credit_line}}",
				},
				{
					ID:      "signatures",
					Heading: "8. SIGNATURES",
					Content: "Signed by the parties on the dates written below.\n\n" +
						"Rights Holder: {{rights_holder}}\n\nSignature: ____________________  Date: ____________\n\n" +
						"Artist: {{requesting_artist}}\n\nSignature: ____________________  Date: ____________",
				},
			},
		},
	}
}
