package analysis

// Fixture returns the canned Moreh Bypass analysis result. The extraction
// pipeline is simulated: Produce stamps this result with the uploaded
// report's metadata instead of running real document extraction.
func Fixture() *Analysis {
	return &Analysis{
		FileName:    "Vol-1 Revised DPR Moreh Bypass.pdf",
		HealthScore: 88,
		Summary: ProjectSummary{
			ProjectTitle:       "Consultancy Services for Feasibility Study and Preparation of Detailed Project Report of Moreh Bypass",
			TotalCost:          "Rs. 250.78 Cr.",
			Region:             "Manipur",
			Category:           "Infrastructure Projects - Road Construction",
			Duration:           "36 months",
			ImplementingAgency: "National Highways & Infrastructure Development Corporation Limited",
			ProjectLength:      "13.650 km",
			Carriageway:        "7.0 m",
		},
		Completeness: []CompletenessItem{
			{Item: "Project Title", Status: StatusFound},
			{Item: "Financial Summary", Status: StatusFound},
			{Item: "Project Duration", Status: StatusFound},
			{Item: "Technical Specifications", Status: StatusFound},
			{Item: "Compliance Statement", Status: StatusNotFound},
			{Item: "Environmental Impact Assessment", Status: StatusFound},
			{Item: "Risk Management Plan", Status: StatusFound},
			{Item: "Stakeholder Analysis", Status: StatusNotFound},
		},
		RiskPrediction: RiskAssessment{
			CostOverrun:   RiskPrediction{Probability: 22, Level: LevelLow},
			ScheduleDelay: RiskPrediction{Probability: 35, Level: LevelMedium},
		},
		Inconsistencies: []InconsistencyCheck{
			{
				Check:           "Sum of Civil vs. Stated Civil Cost",
				StatedValue:     "Rs. 180.45 Cr.",
				CalculatedValue: "Rs. 180.45 Cr.",
				Status:          StatusMatch,
			},
			{
				Check:           "Total Project Cost vs. Sum of Components",
				StatedValue:     "Rs. 250.78 Cr.",
				CalculatedValue: "Rs. 250.78 Cr.",
				Status:          StatusMatch,
			},
			{
				Check:           "Contingency Calculation (10% of Civil Cost)",
				StatedValue:     "Rs. 18.04 Cr.",
				CalculatedValue: "Rs. 18.04 Cr.",
				Status:          StatusMatch,
			},
		},
		ExtractedEntities: []ExtractedEntity{
			{
				DataPoint: "Project Title",
				Value:     "Consultancy Services for Feasibility Study and Preparation of Detailed Project Report of Moreh Bypass including two laning with paved shoulders...",
				Source: EntitySource{
					PageImage:    "/placeholder-pdf-page.png",
					HighlightBox: HighlightBox{Top: "50.1%", Left: "16.8%", Width: "66.3%", Height: "14.3%"},
				},
			},
			{
				DataPoint: "Total Project Cost",
				Value:     "Rs. 250.78 Cr.",
				Source: EntitySource{
					PageImage:    "/placeholder-pdf-page.png",
					HighlightBox: HighlightBox{Top: "34.1%", Left: "65.5%", Width: "11.1%", Height: "1.7%"},
				},
			},
			{
				DataPoint: "Project Length",
				Value:     "13.650 km",
				Source: EntitySource{
					PageImage:    "/placeholder-pdf-page.png",
					HighlightBox: HighlightBox{Top: "43.2%", Left: "38.5%", Width: "11.1%", Height: "1.7%"},
				},
			},
			{
				DataPoint: "Carriageway Width",
				Value:     "7.0 m",
				Source: EntitySource{
					PageImage:    "/placeholder-pdf-page.png",
					HighlightBox: HighlightBox{Top: "45.1%", Left: "38.5%", Width: "11.1%", Height: "1.7%"},
				},
			},
			{
				DataPoint: "Implementing Agency",
				Value:     "National Highways & Infrastructure Development Corporation Limited",
				Source: EntitySource{
					PageImage:    "/placeholder-pdf-page.png",
					HighlightBox: HighlightBox{Top: "81.2%", Left: "16.8%", Width: "66.3%", Height: "4.1%"},
				},
			},
			{
				DataPoint: "Civil Construction Cost",
				Value:     "Rs. 180.45 Cr.",
				Source: EntitySource{
					PageImage:    "/placeholder-pdf-page.png",
					HighlightBox: HighlightBox{Top: "40.5%", Left: "65.5%", Width: "11.1%", Height: "1.7%"},
				},
			},
		},
		Benchmarks: []Benchmark{
			{
				Metric:       "Project Cost",
				ProjectValue: 250.78,
				AverageValue: 235.50,
				Unit:         "Crores",
				Status:       BenchmarkAboveAverage,
			},
			{
				Metric:       "Project Duration",
				ProjectValue: 36,
				AverageValue: 42,
				Unit:         "Months",
				Status:       BenchmarkBelowAverage,
			},
		},
		RiskFactors: []RiskFactor{
			{
				Factor:      "Project Location",
				Description: "Identified as a landslide-prone zone with seasonal accessibility challenges",
				Impact:      LevelHigh,
			},
			{
				Factor:      "Environmental Clearance",
				Description: "DPR text mentions dependency on timely forest clearance approvals",
				Impact:      LevelMedium,
			},
			{
				Factor:      "Timeline Anomaly",
				Description: "Project duration is 30% shorter than average for similar projects in the region",
				Impact:      LevelMedium,
			},
		},
		Location: &Location{
			Lat:          24.3356,
			Lng:          94.0287,
			LocationName: "Moreh, Manipur",
		},
	}
}
