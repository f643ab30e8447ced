package templates

import "github.com/chordsign/contractgen/pkg/model"

// MusicLicensing returns the music licensing agreement archetype: a rights
// holder licensing a recording or composition for a fee plus royalties.
func MusicLicensing() model.TemplateDefinition {
	return model.TemplateDefinition{
		ID:          "music-licensing",
		Name:        "Music Licensing Agreement",
		Description: "License of a recording or composition for an agreed use, territory, and term.",
		Category:    "licensing",
		Version:     2,
		SortOrder:   20,
		IsActive:    true,
		Fields: []model.TemplateField{
			{ID: "licensor_name", Label: "Licensor name", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "licensee_name", Label: "Licensee name", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "licensee_email", Label: "Licensee email", Type: model.FieldTypeEmail, Required: true, Group: "parties",
				Validation: &model.FieldValidation{
					Pattern:        `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
					PatternMessage: "Licensee email must be a valid email address",
				}},
			{ID: "track_title", Label: "Track title", Type: model.FieldTypeText, Required: true, Group: "work"},
			{ID: "license_type", Label: "License type", Type: model.FieldTypeSelect, Required: true, Group: "grant",
				Options: []model.SelectOption{
					{Value: "synchronisation", Label: "Synchronisation"},
					{Value: "mechanical", Label: "Mechanical"},
					{Value: "master use", Label: "Master use"},
					{Value: "public performance", Label: "Public performance"},
				}},
			{ID: "territory", Label: "Territory", Type: model.FieldTypeText, Required: true, Group: "grant",
				DefaultValue: "Worldwide"},
			{ID: "license_fee", Label: "License fee", Type: model.FieldTypeCurrency, Required: true, Group: "fees",
				Validation: &model.FieldValidation{Min: floatp(0)}},
			{ID: "royalty_rate", Label: "Royalty rate", Type: model.FieldTypeNumber, Required: true, Group: "fees",
				Validation: &model.FieldValidation{Min: floatp(0), Max: floatp(100)}},
			{ID: "term_months", Label: "Term (months)", Type: model.FieldTypeNumber, Required: true, Group: "grant",
				Validation: &model.FieldValidation{Min: floatp(1)}},
			{ID: "start_date", Label: "Start date", Type: model.FieldTypeDate, Required: true, Group: "grant"},
		},
		OptionalClauses: []model.OptionalClause{
			{
				ID:          "renewal_option",
				Name:        "Renewal option",
				Description: "The licensee may renew on the same terms by giving notice before expiry.",
				Fields: []model.TemplateField{
					{ID: "renewal_notice_days", Label: "Renewal notice (days)", Type: model.FieldTypeNumber, Required: true,
						DefaultValue: 60, Validation: &model.FieldValidation{Min: floatp(14)}},
				},
			},
			{
				ID:          "content_restrictions",
				Name:        "Content restrictions",
				Description: "Uses of the licensed work that remain prohibited.",
				Fields: []model.TemplateField{
					{ID: "restricted_uses", Label: "Restricted uses", Type: model.FieldTypeTextarea, Required: true},
				},
			},
		},
		Content: model.TemplateContent{
			Title: "Music Licensing Agreement: {{track_title}}",
			Sections: []model.TemplateSection{
				{
					ID:      "grant",
					Heading: "1. GRANT OF LICENSE",
					Content: "{{licensor_name}} (the \"Licensor\") grants {{licensee_name}} (the \"Licensee\", {{licensee_email}}) a " +
						"non-exclusive {{license_type}} license in the work identified in clause 2, for the territory of {{territory}}, " +
						"commencing on {{start_date}} and continuing for {{term_months}} months unless terminated earlier in accordance " +
						"with this Agreement.",
				},
				{
					ID:      "work",
					Heading: "2. LICENSED WORK",
					Content: "The licensed work is the recording and/or composition titled \"{{track_title}}\", including any edits or " +
						"versions delivered by the Licensor for the permitted use. The Licensor retains all rights not expressly granted.",
				},
				{
					ID:      "fees",
					Heading: "3. FEES AND ROYALTIES",
					Content: "The Licensee shall pay the Licensor a one-time license fee of {{license_fee}}, due within 14 days of signature.\n\n" +
						"In addition, the Licensee shall pay a royalty of {{royalty_rate}}% of net receipts attributable to the licensed use, " +
						"accounted quarterly with statements and payment within 30 days of each quarter end.",
				},
				{
					ID:      "term",
					Heading: "4. TERM AND TERRITORY",
					Content: "This license is limited to the territory of {{territory}} and to the term stated in clause 1. " +
						"Use outside the licensed territory or after expiry of the term requires a separate written license.",
				},
				{
					ID:         "renewal",
					Heading:    "5. RENEWAL",
					IsOptional: true,
					ClauseID:   "renewal_option",
					Content: "The Licensee may renew this license for one further term of equal length, on the same terms, by giving written " +
						"notice at least {{renewal_notice_days}} days before expiry of the current term.",
				},
				{
					ID:         "restrictions",
					Heading:    "6. CONTENT RESTRICTIONS",
					IsOptional: true,
					ClauseID:   "content_restrictions",
					Content: "Notwithstanding the grant in clause 1, the following uses remain prohibited without further written consent:\n\n" +
						"{{restricted_uses}}",
				},
				{
					ID:      "warranties",
					Heading: "7. WARRANTIES",
					Content: "The Licensor warrants that it controls the rights granted and that the licensed use will not infringe the rights " +
						"of any third party. Each party shall indemnify the other against losses arising from breach of its warranties.",
				},
				{
					ID:      "signatures",
					Heading: "8. SIGNATURES",
					Content: "Signed by the parties on the dates written below.\n\n" +
						"Licensor: {{licensor_name}}\n\nSignature: ____________________  Date: ____________\n\n" +
						"Licensee: {{licensee_name}}\n\nSignature: ____________________  Date: ____________",
				},
			},
		},
	}
}
