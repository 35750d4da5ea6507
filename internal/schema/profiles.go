package schema

// The two extraction schemas the dashboard relies on. Both are process-wide
// constants: built once, never mutated.

// ResumeProfileSchema describes the resume-to-profile extraction target.
func ResumeProfileSchema() RecordSchema {
	return RecordSchema{
		Name: "ResumeProfile",
		Description: "You are an expert career data analyst. Extract all relevant " +
			"professional information from the user's resume text and structure it " +
			"according to the provided JSON schema.",
		Fields: []FieldSpec{
			{
				Name:        "name",
				Type:        TypeText,
				Instruction: "The user's full name.",
				Required:    true,
			},
			{
				Name:        "email",
				Type:        TypeText,
				Instruction: "The user's professional email address.",
				Required:    true,
			},
			{
				Name:        "summary",
				Type:        TypeText,
				Instruction: "A concise, professional 3-sentence summary of the user's career goals and experience.",
				Required:    true,
			},
			{
				Name:        "skills",
				Type:        TypeTextList,
				Instruction: "A list of key hard skills (e.g., Python, SQL, React).",
				Required:    true,
				MinItems:    8,
				MaxItems:    12,
			},
			{
				Name:        "experience",
				Type:        TypeRecordList,
				Instruction: "A list of all work experiences.",
				Required:    true,
				Fields: []FieldSpec{
					{
						Name:        "title",
						Type:        TypeText,
						Instruction: "The user's job title at this company.",
						Required:    true,
					},
					{
						Name:        "company",
						Type:        TypeText,
						Instruction: "The name of the company.",
						Required:    true,
					},
					{
						Name:        "years",
						Type:        TypeText,
						Instruction: "The start and end date/year range (e.g., '2020 - 2023').",
						Required:    true,
					},
					{
						Name:        "summary",
						Type:        TypeText,
						Instruction: "A 2-3 sentence summary of responsibilities and achievements.",
						Required:    true,
					},
				},
			},
		},
	}
}

// OptimizationReportSchema describes the profile-vs-job-description analysis
// target produced by the optimizer.
func OptimizationReportSchema() RecordSchema {
	return RecordSchema{
		Name: "OptimizationReport",
		Description: "You are an expert Applicant Tracking System (ATS) analyst. Compare the " +
			"candidate profile against the target job description and report the match " +
			"quality, missing keywords, and concrete improvements.",
		Fields: []FieldSpec{
			{
				Name:        "match_score",
				Type:        TypeInteger,
				Instruction: "A confidence score for how well the profile matches the job description.",
				Required:    true,
				Min:         0,
				Max:         100,
			},
			{
				Name:        "keyword_gaps",
				Type:        TypeTextList,
				Instruction: "Critical skills or keywords from the job description that are missing or underrepresented in the profile.",
				Required:    true,
				MinItems:    3,
				MaxItems:    5,
			},
			{
				Name:        "suggestions",
				Type:        TypeTextList,
				Instruction: "Actionable, specific suggestions to improve the profile for this job.",
				Required:    true,
				MinItems:    3,
				MaxItems:    3,
			},
		},
	}
}
