package examcfg

var categories = []Category{
	{ID: "SSC", Label: "SSC Exams"},
	{ID: "RAILWAY", Label: "Railway Exams"},
	{ID: "IB", Label: "Intelligence Bureau"},
	{ID: "BANK", Label: "Bank Exams"},
	{ID: "POLICE", Label: "Police Exams"},
}

// Section sequences follow the official notifications for each exam.
var layouts = []Layout{
	{
		ID: "SSC_CGL_PRE", Name: "SSC CGL/CHSL Tier-I (Prelims)", Category: "SSC", TotalQuestions: 100, MaxMarks: 200,
		Subjects: []Subject{
			{Name: "General Intelligence and Reasoning", Part: "A", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "General Awareness", Part: "B", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "Quantitative Aptitude", Part: "C", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "English Comprehension", Part: "D", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
		},
	},
	{
		ID: "SSC_CGL_MAINS", Name: "SSC CGL Tier-II", Category: "SSC", TotalQuestions: 150, MaxMarks: 390,
		Subjects: []Subject{
			{Name: "Mathematical Abilities", Part: "A", TotalQuestions: 30, MaxMarks: 90, CorrectMarks: 3, NegativeMarks: 1},
			{Name: "Reasoning & General Intelligence", Part: "B", TotalQuestions: 30, MaxMarks: 90, CorrectMarks: 3, NegativeMarks: 1},
			{Name: "English Language & Comprehension", Part: "C", TotalQuestions: 45, MaxMarks: 135, CorrectMarks: 3, NegativeMarks: 1},
			{Name: "General Awareness", Part: "D", TotalQuestions: 25, MaxMarks: 75, CorrectMarks: 3, NegativeMarks: 1},
			{Name: "Computer Knowledge", Part: "E", TotalQuestions: 20, MaxMarks: 60, CorrectMarks: 3, NegativeMarks: 1, Qualifying: true},
		},
	},
	{
		ID: "SSC_CHSL_PRE", Name: "SSC CHSL Tier-I", Category: "SSC", TotalQuestions: 100, MaxMarks: 200,
		Subjects: []Subject{
			{Name: "General Intelligence", Part: "A", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "General Awareness", Part: "B", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "Quantitative Aptitude", Part: "C", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "English Language", Part: "D", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
		},
	},
	{
		ID: "SSC_CHSL_MAINS", Name: "SSC CHSL Tier-II", Category: "SSC", TotalQuestions: 135, MaxMarks: 405,
		Subjects: []Subject{
			{Name: "Mathematical Abilities", Part: "A", TotalQuestions: 30, MaxMarks: 90, CorrectMarks: 3, NegativeMarks: 1},
			{Name: "Reasoning & General Intelligence", Part: "B", TotalQuestions: 30, MaxMarks: 90, CorrectMarks: 3, NegativeMarks: 1},
			{Name: "English Language & Comprehension", Part: "C", TotalQuestions: 45, MaxMarks: 135, CorrectMarks: 3, NegativeMarks: 1},
			{Name: "General Awareness", Part: "D", TotalQuestions: 30, MaxMarks: 90, CorrectMarks: 3, NegativeMarks: 1},
		},
	},
	{
		ID: "SSC_CPO_PRE", Name: "SSC CPO (Police Sub-Inspector)", Category: "SSC", TotalQuestions: 200, MaxMarks: 200,
		Subjects: []Subject{
			{Name: "General Intelligence and Reasoning", Part: "1", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "General Knowledge and General Awareness", Part: "2", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Quantitative Aptitude", Part: "3", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "English Comprehension", Part: "4", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "SSC_CPO_MAINS", Name: "SSC CPO Paper-II", Category: "SSC", TotalQuestions: 200, MaxMarks: 200,
		Subjects: []Subject{
			{Name: "English Language & Comprehension", Part: "A", TotalQuestions: 200, MaxMarks: 200, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "SSC_MTS", Name: "SSC MTS & Havaldar (Session 1 + 2)", Category: "SSC", TotalQuestions: 90, MaxMarks: 270,
		Subjects: []Subject{
			{Name: "Numerical and Mathematical Ability (Session 1)", Part: "A", TotalQuestions: 20, MaxMarks: 60, CorrectMarks: 3, NegativeMarks: 0, Qualifying: true},
			{Name: "Reasoning Ability and Problem Solving (Session 1)", Part: "B", TotalQuestions: 20, MaxMarks: 60, CorrectMarks: 3, NegativeMarks: 0, Qualifying: true},
			{Name: "General Awareness (Session 2)", Part: "C", TotalQuestions: 25, MaxMarks: 75, CorrectMarks: 3, NegativeMarks: 1},
			{Name: "English Language and Comprehension (Session 2)", Part: "D", TotalQuestions: 25, MaxMarks: 75, CorrectMarks: 3, NegativeMarks: 1},
		},
	},
	{
		ID: "SSC_GD_CONSTABLE", Name: "SSC GD Constable", Category: "SSC", TotalQuestions: 80, MaxMarks: 160,
		Subjects: []Subject{
			{Name: "General Intelligence and Reasoning", Part: "A", TotalQuestions: 20, MaxMarks: 40, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "General Knowledge and General Awareness", Part: "B", TotalQuestions: 20, MaxMarks: 40, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "Elementary Mathematics", Part: "C", TotalQuestions: 20, MaxMarks: 40, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "English/Hindi", Part: "D", TotalQuestions: 20, MaxMarks: 40, CorrectMarks: 2, NegativeMarks: 0.5},
		},
	},
	{
		ID: "SSC_SELECTION_POST", Name: "SSC Selection Post (Phase 13)", Category: "SSC", TotalQuestions: 100, MaxMarks: 200,
		Subjects: []Subject{
			{Name: "General Intelligence", Part: "A", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "General Awareness", Part: "B", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "Quantitative Aptitude (Basic Arithmetic)", Part: "C", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
			{Name: "English Language (Basic Knowledge)", Part: "D", TotalQuestions: 25, MaxMarks: 50, CorrectMarks: 2, NegativeMarks: 0.5},
		},
	},
	{
		ID: "SSC_STENO", Name: "SSC Stenographer (Grade C & D)", Category: "SSC", TotalQuestions: 200, MaxMarks: 200,
		Subjects: []Subject{
			{Name: "General Intelligence & Reasoning", Part: "I", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "General Awareness", Part: "II", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "English Language and Comprehension", Part: "III", TotalQuestions: 100, MaxMarks: 100, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "SSC_JE_PAPER1", Name: "SSC Junior Engineer (JE - Paper 1)", Category: "SSC", TotalQuestions: 200, MaxMarks: 200,
		Subjects: []Subject{
			{Name: "General Intelligence and Reasoning", Part: "I", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "General Awareness", Part: "II", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Civil/Electrical/Mechanical Engineering", Part: "III", TotalQuestions: 100, MaxMarks: 100, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "RRB_NTPC_CBT1", Name: "RRB NTPC (CBT 1)", Category: "RAILWAY", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "General Awareness", Part: "1", TotalQuestions: 40, MaxMarks: 40, CorrectMarks: 1, NegativeMarks: 0.33},
			{Name: "Mathematics", Part: "2", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.33},
			{Name: "General Intelligence and Reasoning", Part: "3", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.33},
		},
	},
	{
		ID: "RRB_NTPC_CBT2", Name: "RRB NTPC CBT-2", Category: "RAILWAY", TotalQuestions: 120, MaxMarks: 120,
		Subjects: []Subject{
			{Name: "Mathematics", Part: "A", TotalQuestions: 35, MaxMarks: 35, CorrectMarks: 1, NegativeMarks: 0.333},
			{Name: "General Intelligence & Reasoning", Part: "B", TotalQuestions: 35, MaxMarks: 35, CorrectMarks: 1, NegativeMarks: 0.333},
			{Name: "General Awareness", Part: "C", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.333},
		},
	},
	{
		ID: "RRB_GROUP_D", Name: "RRB Group D", Category: "RAILWAY", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "General Science", Part: "A", TotalQuestions: 25, MaxMarks: 25, CorrectMarks: 1, NegativeMarks: 0.33},
			{Name: "Mathematics", Part: "B", TotalQuestions: 25, MaxMarks: 25, CorrectMarks: 1, NegativeMarks: 0.33},
			{Name: "General Intelligence and Reasoning", Part: "C", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.33},
			{Name: "General Awareness and Current Affairs", Part: "D", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.33},
		},
	},
	{
		ID: "RRB_JE_CBT1", Name: "RRB JE CBT-1", Category: "RAILWAY", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "Mathematics", Part: "A", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.333},
			{Name: "General Intelligence & Reasoning", Part: "B", TotalQuestions: 25, MaxMarks: 25, CorrectMarks: 1, NegativeMarks: 0.333},
			{Name: "General Awareness", Part: "C", TotalQuestions: 15, MaxMarks: 15, CorrectMarks: 1, NegativeMarks: 0.333},
			{Name: "General Science", Part: "D", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.333},
		},
	},
	{
		ID: "RRB_ALP_CBT1", Name: "RRB ALP & Technician (Stage 1)", Category: "RAILWAY", TotalQuestions: 75, MaxMarks: 75,
		Subjects: []Subject{
			{Name: "Mathematics", Part: "1", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.33},
			{Name: "General Intelligence and Reasoning", Part: "2", TotalQuestions: 25, MaxMarks: 25, CorrectMarks: 1, NegativeMarks: 0.33},
			{Name: "General Science", Part: "3", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.33},
			{Name: "General Awareness (Current Affairs)", Part: "4", TotalQuestions: 10, MaxMarks: 10, CorrectMarks: 1, NegativeMarks: 0.33},
		},
	},
	{
		ID: "IB_ACIO", Name: "IB ACIO Grade-II/Executive (Tier-1)", Category: "IB", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "Current Affairs", Part: "1", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "General Studies", Part: "2", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Quantitative Aptitude (Mathematics)", Part: "3", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Numerical Analytical/Logical Ability & Reasoning", Part: "4", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "English Language", Part: "5", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "IB_SA", Name: "IB Security Assistant (SA) & MTS", Category: "IB", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "General Awareness", Part: "1", TotalQuestions: 40, MaxMarks: 40, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Quantitative Aptitude", Part: "2", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Numerical/Analytical/Logical Ability & Reasoning", Part: "3", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "English Language", Part: "4", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "IBPS_CLERK_PRE", Name: "IBPS / SBI Clerk (Prelims)", Category: "BANK", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "English Language", Part: "1", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Numerical Ability", Part: "2", TotalQuestions: 35, MaxMarks: 35, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Reasoning Ability", Part: "3", TotalQuestions: 35, MaxMarks: 35, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "IBPS_PO_PRE", Name: "IBPS / SBI PO (Prelims)", Category: "BANK", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "English Language", Part: "1", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Quantitative Aptitude", Part: "2", TotalQuestions: 35, MaxMarks: 35, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Reasoning Ability", Part: "3", TotalQuestions: 35, MaxMarks: 35, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "RBI_GRADE_B_PHASE1", Name: "RBI Grade B (Phase 1)", Category: "BANK", TotalQuestions: 200, MaxMarks: 200,
		Subjects: []Subject{
			{Name: "General Awareness", Part: "1", TotalQuestions: 80, MaxMarks: 80, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "English Language", Part: "2", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Quantitative Aptitude", Part: "3", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Reasoning Ability", Part: "4", TotalQuestions: 60, MaxMarks: 60, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "LIC_AAO_PRE", Name: "LIC AAO (Prelims)", Category: "BANK", TotalQuestions: 100, MaxMarks: 70,
		Subjects: []Subject{
			{Name: "Reasoning Ability", Part: "1", TotalQuestions: 35, MaxMarks: 35, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Quantitative Aptitude", Part: "2", TotalQuestions: 35, MaxMarks: 35, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "English Language*", Part: "3", TotalQuestions: 30, MaxMarks: 30, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "IBPS_PO_MAINS", Name: "IBPS PO Mains", Category: "BANK", TotalQuestions: 155, MaxMarks: 200,
		Subjects: []Subject{
			{Name: "Reasoning & Computer Aptitude", Part: "A", TotalQuestions: 45, MaxMarks: 60, CorrectMarks: 1.33, NegativeMarks: 0.25},
			{Name: "English Language", Part: "B", TotalQuestions: 35, MaxMarks: 40, CorrectMarks: 1.14, NegativeMarks: 0.25},
			{Name: "Data Analysis & Interpretation", Part: "C", TotalQuestions: 35, MaxMarks: 60, CorrectMarks: 1.71, NegativeMarks: 0.25},
			{Name: "General/Economy/Banking Awareness", Part: "D", TotalQuestions: 40, MaxMarks: 40, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "DELHI_POLICE_CONSTABLE", Name: "Delhi Police Constable (Executive)", Category: "POLICE", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "GK / Current Affairs", Part: "1", TotalQuestions: 50, MaxMarks: 50, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Reasoning Ability", Part: "2", TotalQuestions: 25, MaxMarks: 25, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Numerical Ability", Part: "3", TotalQuestions: 15, MaxMarks: 15, CorrectMarks: 1, NegativeMarks: 0.25},
			{Name: "Computer Fundamentals", Part: "4", TotalQuestions: 10, MaxMarks: 10, CorrectMarks: 1, NegativeMarks: 0.25},
		},
	},
	{
		ID: "DELHI_POLICE_HEAD_CONSTABLE", Name: "Delhi Police Head Constable (Ministerial)", Category: "POLICE", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "General Awareness", Part: "1", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.5},
			{Name: "Quantitative Aptitude", Part: "2", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0.5},
			{Name: "General Intelligence", Part: "3", TotalQuestions: 25, MaxMarks: 25, CorrectMarks: 1, NegativeMarks: 0.5},
			{Name: "English Language", Part: "4", TotalQuestions: 25, MaxMarks: 25, CorrectMarks: 1, NegativeMarks: 0.5},
			{Name: "Computer Fundamentals", Part: "5", TotalQuestions: 10, MaxMarks: 10, CorrectMarks: 1, NegativeMarks: 0.5},
		},
	},
	{
		ID: "DELHI_POLICE_HC_AWO_TPO", Name: "Delhi Police HC (AWO/TPO)", Category: "POLICE", TotalQuestions: 100, MaxMarks: 100,
		Subjects: []Subject{
			{Name: "General Awareness", Part: "1", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0},
			{Name: "General Science", Part: "2", TotalQuestions: 25, MaxMarks: 25, CorrectMarks: 1, NegativeMarks: 0},
			{Name: "Mathematics", Part: "3", TotalQuestions: 25, MaxMarks: 25, CorrectMarks: 1, NegativeMarks: 0},
			{Name: "Reasoning", Part: "4", TotalQuestions: 20, MaxMarks: 20, CorrectMarks: 1, NegativeMarks: 0},
			{Name: "Computer Fundamentals", Part: "5", TotalQuestions: 10, MaxMarks: 10, CorrectMarks: 1, NegativeMarks: 0},
		},
	},
}
