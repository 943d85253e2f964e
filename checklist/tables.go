package checklist

// Static reference tables for checklist assembly. Initialized once, never
// mutated; shared safely across concurrent requests.

type countryDocs struct {
	Mandatory []string
	Optional  []string
}

var countryDocuments = map[string]countryDocs{
	"Malaysia": {
		Mandatory: []string{"Identity Card (MyKad)", "Birth Certificate"},
		Optional:  []string{},
	},
	"International": {
		Mandatory: []string{
			"Valid Passport (minimum 18 months validity from program start date) - MANDATORY FOR ALL INTERNATIONAL STUDENTS",
			"Student Visa / EMGS Approval Letter (Education Malaysia Global Services) - MANDATORY FOR ALL INTERNATIONAL STUDENTS",
			"Medical Examination Report (from recognized clinic/hospital approved by EMGS) - MANDATORY FOR ALL INTERNATIONAL STUDENTS",
			"English Proficiency Test Results (IELTS/TOEFL/MUET) - Original certificate - MANDATORY",
			"Financial Proof / Bank Statement (showing minimum RM 30,000 or equivalent for living expenses) - MANDATORY",
			"Academic Transcripts with Certified English Translation (if original is not in English) - MANDATORY",
			"Academic Certificates with Certified English Translation (if original is not in English) - MANDATORY",
			"Passport-sized Photographs (4 copies, white background, 35mm x 50mm) - MANDATORY",
			"EMGS Application Form (completed and signed) - MANDATORY FOR VISA PROCESSING",
		},
		Optional: []string{
			"Police Clearance Certificate (from home country) - Required for some countries",
			"No-Objection Certificate (NOC) - if required by home country",
			"Sponsorship Letter (if sponsored by government or organization)",
			"Health Insurance Certificate (recommended)",
			"Character Reference Letter (from previous institution)",
		},
	},
}

type nationalityDocs struct {
	Identity   string
	Additional []string
}

// nationalityDocuments keys are matched exactly against the supplied country.
var nationalityDocuments = map[string]nationalityDocs{
	"Indonesia": {
		Identity:   "KTP (Kartu Tanda Penduduk) or Passport",
		Additional: []string{"Academic transcripts with certified English translation"},
	},
	"China": {
		Identity:   "Chinese ID Card or Passport",
		Additional: []string{"Notarized academic certificates", "HSK certificate (if applicable)"},
	},
	"India": {
		Identity:   "Aadhaar Card or Passport",
		Additional: []string{"Academic transcripts with certified English translation"},
	},
	"Bangladesh": {
		Identity:   "National ID Card or Passport",
		Additional: []string{"Academic transcripts with certified English translation"},
	},
	"Thailand": {
		Identity:   "Thai National ID Card or Passport",
		Additional: []string{"Academic transcripts with certified English translation"},
	},
	"Vietnam": {
		Identity:   "Vietnamese ID Card or Passport",
		Additional: []string{"Academic transcripts with certified English translation"},
	},
	"Philippines": {
		Identity:   "Philippine National ID or Passport",
		Additional: []string{"Academic transcripts with certified English translation"},
	},
	"Pakistan": {
		Identity:   "CNIC (Computerized National Identity Card) or Passport",
		Additional: []string{"Academic transcripts with certified English translation"},
	},
	"Nepal": {
		Identity:   "Nepali Citizenship Certificate or Passport",
		Additional: []string{"Academic transcripts with certified English translation"},
	},
	"Sri Lanka": {
		Identity:   "National Identity Card or Passport",
		Additional: []string{"Academic transcripts with certified English translation"},
	},
}

// programSpecificDocuments is an ordered rule table matched by substring
// against the program and faculty names. Order is fixed so repeated runs
// append matches in the same sequence.
var programSpecificDocuments = []struct {
	Category  string
	Documents []string
}{
	{"Engineering", []string{"Engineering Drawing Portfolio (if applicable)"}},
	{"Arts", []string{"Portfolio of Creative Work"}},
	{"Medicine", []string{"Medical Fitness Certificate", "Criminal Record Check"}},
	{"Business", []string{"Business Plan (for Entrepreneurship programs)"}},
}
