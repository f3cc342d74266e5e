package catalog

import "github.com/peacematcher/assistant-api/catalog/entities"

// seedMedicines is the built-in catalog. It stands in for an external drug
// reference feed; the loader treats it exactly like remote data, including
// validation, so swapping in a real source later only changes this file.
var seedMedicines = []entities.Medicine{
	{
		Name:              "Dolo 650mg",
		Description:       "Paracetamol 650mg - Pain reliever and fever reducer (Indian brand)",
		Symptoms:          []string{"fever", "headache", "muscle aches", "pain", "body ache", "toothache"},
		SideEffects:       []string{"liver damage (at high doses)", "mild nausea", "allergic reactions (rare)"},
		Contraindications: []string{"liver disease", "alcohol abuse", "hepatitis"},
		DosageForm:        "tablet",
	},
	{
		Name:              "Ibuprofen",
		Description:       "NSAID pain reliever, fever reducer, and anti-inflammatory",
		Symptoms:          []string{"pain", "fever", "inflammation", "headache", "arthritis", "menstrual cramps", "toothache"},
		SideEffects:       []string{"stomach upset", "heartburn", "dizziness", "nausea"},
		Contraindications: []string{"stomach ulcers", "bleeding disorders", "kidney disease", "heart disease"},
		DosageForm:        "tablet, capsule, liquid",
	},
	{
		Name:              "Diphenhydramine",
		Description:       "Antihistamine for allergy relief and sleep aid",
		Symptoms:          []string{"allergies", "hay fever", "common cold", "insomnia", "itching", "runny nose", "sneezing"},
		SideEffects:       []string{"drowsiness", "dry mouth", "blurred vision", "constipation"},
		Contraindications: []string{"glaucoma", "enlarged prostate", "asthma", "urinary retention"},
		DosageForm:        "tablet, liquid, capsule",
	},
	{
		Name:              "Cetirizine",
		Description:       "Second-generation antihistamine for allergy relief (non-drowsy)",
		Symptoms:          []string{"allergies", "hay fever", "hives", "itching", "runny nose", "watery eyes"},
		SideEffects:       []string{"mild drowsiness", "dry mouth", "headache"},
		Contraindications: []string{"kidney disease", "liver disease"},
		DosageForm:        "tablet, liquid",
	},
	{
		Name:              "Omeprazole",
		Description:       "Proton pump inhibitor for acid reflux and stomach ulcers",
		Symptoms:          []string{"acidity", "heartburn", "acid reflux", "stomach ulcer", "gerd", "indigestion"},
		SideEffects:       []string{"headache", "diarrhea", "nausea", "vitamin B12 deficiency (long-term)"},
		Contraindications: []string{"liver disease", "osteoporosis risk"},
		DosageForm:        "capsule",
	},
	{
		Name:              "Amoxicillin",
		Description:       "Broad-spectrum antibiotic for bacterial infections",
		Symptoms:          []string{"bacterial infection", "ear infection", "sore throat", "urinary infection", "skin infection", "sinusitis"},
		SideEffects:       []string{"diarrhea", "nausea", "rash", "vomiting"},
		Contraindications: []string{"penicillin allergy", "mononucleosis", "liver disease"},
		DosageForm:        "capsule, liquid",
	},
	{
		Name:              "Azithromycin",
		Description:       "Macrolide antibiotic for respiratory and skin infections",
		Symptoms:          []string{"bacterial infection", "pneumonia", "bronchitis", "ear infection", "sinusitis", "skin infection"},
		SideEffects:       []string{"nausea", "diarrhea", "abdominal pain", "headache"},
		Contraindications: []string{"liver disease", "heart rhythm disorders", "myasthenia gravis"},
		DosageForm:        "tablet, liquid",
	},
	{
		Name:              "Metformin",
		Description:       "First-line medication for type 2 diabetes",
		Symptoms:          []string{"diabetes", "high blood sugar", "insulin resistance", "pcos"},
		SideEffects:       []string{"nausea", "diarrhea", "abdominal pain", "metallic taste", "vitamin B12 deficiency"},
		Contraindications: []string{"kidney disease", "liver disease", "heart failure", "alcohol abuse"},
		DosageForm:        "tablet",
	},
	{
		Name:              "Losartan",
		Description:       "ARB medication for high blood pressure and kidney protection",
		Symptoms:          []string{"high blood pressure", "hypertension", "diabetic kidney disease", "heart failure"},
		SideEffects:       []string{"dizziness", "fatigue", "low blood pressure", "high potassium"},
		Contraindications: []string{"pregnancy", "bilateral renal artery stenosis", "hyperkalemia"},
		DosageForm:        "tablet",
	},
	{
		Name:              "Amlodipine",
		Description:       "Calcium channel blocker for high blood pressure and angina",
		Symptoms:          []string{"high blood pressure", "hypertension", "chest pain", "angina"},
		SideEffects:       []string{"swelling in ankles", "dizziness", "flushing", "headache"},
		Contraindications: []string{"severe heart failure", "aortic stenosis", "low blood pressure"},
		DosageForm:        "tablet",
	},
	{
		Name:              "ORS (Oral Rehydration Salts)",
		Description:       "Electrolyte solution for dehydration management",
		Symptoms:          []string{"dehydration", "diarrhea", "vomiting", "heat exhaustion", "loose motions"},
		SideEffects:       []string{"nausea (if taken too fast)", "vomiting (if hypertonic)"},
		Contraindications: []string{"severe vomiting (IV fluids needed)", "bowel obstruction"},
		DosageForm:        "powder for solution",
	},
	{
		Name:              "Loperamide",
		Description:       "Anti-diarrheal medication",
		Symptoms:          []string{"diarrhea", "loose motions", "traveler's diarrhea"},
		SideEffects:       []string{"constipation", "abdominal cramps", "dizziness"},
		Contraindications: []string{"bloody diarrhea", "bacterial infection", "children under 2"},
		DosageForm:        "tablet, liquid",
	},
	{
		Name:              "Salbutamol Inhaler",
		Description:       "Bronchodilator for asthma and breathing difficulties",
		Symptoms:          []string{"asthma", "wheezing", "shortness of breath", "breathing difficulty", "bronchospasm"},
		SideEffects:       []string{"tremor", "headache", "rapid heartbeat", "muscle cramps"},
		Contraindications: []string{"heart rhythm disorders", "hyperthyroidism"},
		DosageForm:        "inhaler",
	},
	{
		Name:              "Diclofenac",
		Description:       "NSAID for pain and inflammation relief",
		Symptoms:          []string{"back pain", "joint pain", "arthritis", "sports injury", "muscle pain", "inflammation"},
		SideEffects:       []string{"stomach pain", "heartburn", "diarrhea", "headache"},
		Contraindications: []string{"stomach ulcers", "heart disease", "kidney disease", "asthma triggered by NSAIDs"},
		DosageForm:        "tablet, gel, injection",
	},
	{
		Name:              "Ondansetron",
		Description:       "Anti-nausea medication (anti-emetic)",
		Symptoms:          []string{"nausea", "vomiting", "motion sickness"},
		SideEffects:       []string{"headache", "constipation", "dizziness"},
		Contraindications: []string{"heart rhythm disorders", "liver disease"},
		DosageForm:        "tablet, injection, liquid",
	},
}

// seedDosages is the age-specific dosing table. At most one entry per
// (medicine, age group); the loader rejects duplicates.
var seedDosages = []entities.AgeDosage{
	// Dolo 650
	{Medicine: "Dolo 650mg", AgeGroup: "adult", Dosage: "1 tablet (650mg)", Frequency: "Every 6-8 hours as needed", SpecialInstructions: "Do not exceed 4 tablets in 24 hours. Take with water after meals"},
	{Medicine: "Dolo 650mg", AgeGroup: "senior", Dosage: "1 tablet (650mg)", Frequency: "Every 8 hours as needed", SpecialInstructions: "Do not exceed 3 tablets in 24 hours. Monitor liver function"},
	{Medicine: "Dolo 650mg", AgeGroup: "teen", Dosage: "1 tablet (650mg)", Frequency: "Every 6-8 hours as needed", SpecialInstructions: "Do not exceed 3 tablets in 24 hours"},
	{Medicine: "Dolo 650mg", AgeGroup: "child", Dosage: "Half tablet (325mg)", Frequency: "Every 6-8 hours as needed", SpecialInstructions: "Do not exceed 3 doses in 24 hours. Crush and mix with water if needed"},
	// Ibuprofen
	{Medicine: "Ibuprofen", AgeGroup: "adult", Dosage: "200-400mg", Frequency: "Every 4-6 hours", SpecialInstructions: "Take with food. Max 1200mg/day without prescription"},
	{Medicine: "Ibuprofen", AgeGroup: "teen", Dosage: "200mg", Frequency: "Every 6-8 hours", SpecialInstructions: "Take with food. Max 800mg/day"},
	{Medicine: "Ibuprofen", AgeGroup: "child", Dosage: "5-10 mg/kg", Frequency: "Every 6-8 hours", SpecialInstructions: "Take with food. Max 4 doses per day. Use liquid form for young children"},
	// Cetirizine
	{Medicine: "Cetirizine", AgeGroup: "adult", Dosage: "10mg", Frequency: "Once daily", SpecialInstructions: "Can be taken with or without food"},
	{Medicine: "Cetirizine", AgeGroup: "child", Dosage: "5mg", Frequency: "Once daily", SpecialInstructions: "Use liquid form for children under 6"},
	// Amoxicillin
	{Medicine: "Amoxicillin", AgeGroup: "adult", Dosage: "250-500mg", Frequency: "Every 8 hours", SpecialInstructions: "Complete full course. Take with or without food"},
	{Medicine: "Amoxicillin", AgeGroup: "child", Dosage: "25-50mg/kg/day", Frequency: "Divided into 3 doses", SpecialInstructions: "Complete full course. Shake liquid form well before use"},
	// ORS
	{Medicine: "ORS (Oral Rehydration Salts)", AgeGroup: "adult", Dosage: "1 sachet in 1 liter water", Frequency: "Sip frequently throughout the day", SpecialInstructions: "Do not add sugar. Use boiled cooled water"},
	{Medicine: "ORS (Oral Rehydration Salts)", AgeGroup: "child", Dosage: "1 sachet in 1 liter water", Frequency: "Small sips every few minutes", SpecialInstructions: "Give 50-100ml after each loose stool"},
	// Omeprazole
	{Medicine: "Omeprazole", AgeGroup: "adult", Dosage: "20mg", Frequency: "Once daily before breakfast", SpecialInstructions: "Take 30 minutes before meals. Swallow whole, do not crush"},
	// Salbutamol
	{Medicine: "Salbutamol Inhaler", AgeGroup: "adult", Dosage: "1-2 puffs (100-200mcg)", Frequency: "Every 4-6 hours as needed", SpecialInstructions: "Shake before use. Rinse mouth after use"},
	{Medicine: "Salbutamol Inhaler", AgeGroup: "child", Dosage: "1 puff (100mcg)", Frequency: "Every 4-6 hours as needed", SpecialInstructions: "Use spacer device for children. Rinse mouth after use"},
}
