package templates

import "github.com/chordsign/contractgen/pkg/model"

// Touring returns the touring agreement archetype: an artist engaged by a
// promoter for a run of shows.
func Touring() model.TemplateDefinition {
	return model.TemplateDefinition{
		ID:          "touring",
		Name:        "Touring Agreement",
		Description: "Engagement of an artist by a promoter for a tour: schedule, fees, deposit, and logistics.",
		Category:    "live",
		Version:     1,
		SortOrder:   30,
		IsActive:    true,
		Fields: []model.TemplateField{
			{ID: "artist_name", Label: "Artist name", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "promoter_name", Label: "Promoter name", Type: model.FieldTypeText, Required: true, Group: "parties"},
			{ID: "tour_name", Label: "Tour name", Type: model.FieldTypeText, Required: true, Group: "tour"},
			{ID: "number_of_shows", Label: "Number of shows", Type: model.FieldTypeNumber, Required: true, Group: "tour",
				Validation: &model.FieldValidation{Min: floatp(1)}},
			{ID: "first_show_date", Label: "First show date", Type: model.FieldTypeDate, Required: true, Group: "tour"},
			{ID: "final_show_date", Label: "Final show date", Type: model.FieldTypeDate, Required: true, Group: "tour"},
			{ID: "performance_fee", Label: "Performance fee per show", Type: model.FieldTypeCurrency, Required: true, Group: "fees",
				Validation: &model.FieldValidation{Min: floatp(0)}},
			{ID: "deposit_amount", Label: "Deposit", Type: model.FieldTypeCurrency, Required: true, Group: "fees",
				Validation: &model.FieldValidation{Min: floatp(0)}},
			{ID: "rider_notes", Label: "Rider notes", Type: model.FieldTypeTextarea, Required: false, Group: "logistics"},
		},
		OptionalClauses: []model.OptionalClause{
			{
				ID:          "merchandising",
				Name:        "Merchandising",
				Description: "The artist sells merchandise at shows with an agreed revenue split.",
				Fields: []model.TemplateField{
					{ID: "merch_split", Label: "Artist merchandising share", Type: model.FieldTypeNumber, Required: true,
						DefaultValue: 80, Validation: &model.FieldValidation{Min: floatp(0), Max: floatp(100)}},
				},
			},
			{
				ID:          "accommodation",
				Name:        "Accommodation and travel",
				Description: "The promoter provides accommodation and ground travel.",
				Fields: []model.TemplateField{
					{ID: "accommodation_details", Label: "Accommodation details", Type: model.FieldTypeTextarea, Required: true},
				},
			},
			{
				ID:             "cancellation",
				Name:           "Cancellation",
				Description:    "Notice and consequences when a show is cancelled.",
				DefaultEnabled: true,
				Fields: []model.TemplateField{
					{ID: "cancellation_notice_days", Label: "Cancellation notice (days)", Type: model.FieldTypeNumber, Required: true,
						DefaultValue: 14, Validation: &model.FieldValidation{Min: floatp(1)}},
				},
			},
		},
		Content: model.TemplateContent{
			Title: "Touring Agreement: {{tour_name}}",
			Sections: []model.TemplateSection{
				{
					ID:      "engagement",
					Heading: "1. ENGAGEMENT",
					Content: "{{promoter_name}} (the \"Promoter\") engages {{artist_name}} (the \"Artist\") to perform on the tour known as " +
						"\"{{tour_name}}\", comprising {{number_of_shows}} shows. The Artist shall perform to a professional standard and the " +
						"Promoter shall provide a stage, sound, and lighting suitable for each venue.",
				},
				{
					ID:      "schedule",
					Heading: "2. SCHEDULE",
					Content: "The tour runs from {{first_show_date}} to {{final_show_date}}. The confirmed itinerary is attached as Schedule A " +
						"and forms part of this Agreement.\n\nRider: {{rider_notes}}",
				},
				{
					ID:      "fees",
					Heading: "3. FEES AND DEPOSIT",
					Content: "The Promoter shall pay the Artist a fee of {{performance_fee}} per show. A deposit of {{deposit_amount}} is payable " +
						"on signature and is non-refundable except where a show is cancelled by the Promoter. The balance for each show is due " +
						"no later than the day of that show.",
				},
				{
					ID:         "merch",
					Heading:    "4. MERCHANDISING",
					IsOptional: true,
					ClauseID:   "merchandising",
					Content: "The Artist may sell merchandise at each venue. Merchandise revenue is split {{merch_split}}% to the Artist with " +
						"the remainder to the venue or Promoter as applicable, settled on the night of each show.",
				},
				{
					ID:         "accommodation",
					Heading:    "5. ACCOMMODATION AND TRAVEL",
					IsOptional: true,
					ClauseID:   "accommodation",
					Content: "The Promoter shall provide accommodation and ground travel for the Artist and touring party as follows:\n\n" +
						"{{accommodation_details}}",
				},
				{
					ID:         "cancellation",
					Heading:    "6. CANCELLATION",
					IsOptional: true,
					ClauseID:   "cancellation",
					Content: "Either party may cancel an individual show on at least {{cancellation_notice_days}} days' written notice. " +
						"Where the Promoter cancels on shorter notice, the full fee for that show remains payable. Where cancellation results " +
						"from an event outside both parties' control, the parties shall use reasonable efforts to reschedule.",
				},
				{
					ID:      "general",
					Heading: "7. GENERAL PROVISIONS",
					Content: "The Artist is an independent contractor and nothing in this Agreement creates employment, partnership, or agency. " +
						"This Agreement is the entire agreement between the parties on its subject matter.",
				},
				{
					ID:      "signatures",
					Heading: "8. SIGNATURES",
					Content: "Signed by the parties on the dates written below.\n\n" +
						"Artist: {{artist_name}}\n\nSignature: ____________________  Date: ____________\n\n" +
						"Promoter: {{promoter_name}}\n\nSignature: ____________________  Date: ____________",
				},
			},
		},
	}
}
