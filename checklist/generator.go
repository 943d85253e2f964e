package checklist

import (
	"admission/models"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Item is one document in a generated checklist.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Source      string `json:"source"`
	Mandatory   bool   `json:"mandatory"`
	Link        string `json:"link,omitempty"`
}

// Summary carries the checklist totals and echo of the request.
type Summary struct {
	TotalMandatory int    `json:"total_mandatory"`
	TotalOptional  int    `json:"total_optional"`
	TotalDocuments int    `json:"total_documents"`
	Country        string `json:"country"`
	ProgramID      uint   `json:"program_id"`
	GeneratedAt    string `json:"generated_at"`
}

// Checklist is the four-bucket document checklist. When Error is set, all
// buckets are empty and the caller must not assume well-formed output.
type Checklist struct {
	Mandatory       []Item   `json:"mandatory"`
	Optional        []Item   `json:"optional"`
	CountrySpecific []Item   `json:"country_specific"`
	ProgramSpecific []Item   `json:"program_specific"`
	Summary         *Summary `json:"summary,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// IsInternational reports whether the country is treated as international.
func IsInternational(country string) bool {
	switch strings.ToLower(country) {
	case "malaysia", "malaysian":
		return false
	}
	return true
}

func errorChecklist(err error) Checklist {
	return Checklist{
		Mandatory:       []Item{},
		Optional:        []Item{},
		CountrySpecific: []Item{},
		ProgramSpecific: []Item{},
		Error:           err.Error(),
	}
}

// Build assembles a checklist from the program's base rows and the static
// reference tables. It is the pure core of GenerateChecklist.
//
// The base checklist is presumed Malaysia-oriented: for international
// applicants the mandatory bucket is replaced wholesale by the international
// document set, while for domestic applicants the Malaysia-specific items are
// appended into country_specific instead. The asymmetry is deliberate.
func Build(baseDocuments []models.DocumentChecklistEntry, programName, facultyName, country, eligibilityStatus string, programID uint) Checklist {
	cl := Checklist{
		Mandatory:       []Item{},
		Optional:        []Item{},
		CountrySpecific: []Item{},
		ProgramSpecific: []Item{},
	}

	// Seed mandatory/optional from the program's stored rows
	for _, doc := range baseDocuments {
		item := Item{
			Name:        doc.DocumentName,
			Description: doc.Description,
			Status:      "pending",
			Source:      "program_requirement",
			Mandatory:   doc.IsMandatory,
		}
		if doc.IsMandatory {
			cl.Mandatory = append(cl.Mandatory, item)
		} else {
			cl.Optional = append(cl.Optional, item)
		}
	}

	international := IsInternational(country)
	countryKey := "Malaysia"
	if international {
		countryKey = "International"
	}

	docs := countryDocuments[countryKey]
	if international {
		// Replace the Malaysia-oriented mandatory documents entirely
		cl.Mandatory = []Item{}
		for _, name := range docs.Mandatory {
			cl.Mandatory = append(cl.Mandatory, Item{
				Name:        name,
				Description: "MANDATORY for international students - Required for visa processing",
				Status:      "pending",
				Source:      "international_requirement",
				Mandatory:   true,
			})
		}
	} else {
		for _, name := range docs.Mandatory {
			cl.CountrySpecific = append(cl.CountrySpecific, Item{
				Name:        name,
				Description: fmt.Sprintf("Required for %s applicants", countryKey),
				Status:      "pending",
				Source:      "country_requirement",
				Mandatory:   true,
			})
		}
	}

	for _, name := range docs.Optional {
		cl.CountrySpecific = append(cl.CountrySpecific, Item{
			Name:        name,
			Description: fmt.Sprintf("Recommended for %s applicants", countryKey),
			Status:      "pending",
			Source:      "country_requirement",
			Mandatory:   false,
		})
	}

	// Nationality-specific identity documents for international applicants
	if international {
		nationality := strings.TrimSpace(country)
		if natDocs, ok := nationalityDocuments[nationality]; ok {
			cl.CountrySpecific = append(cl.CountrySpecific, Item{
				Name:        fmt.Sprintf("National ID Document (%s)", natDocs.Identity),
				Description: fmt.Sprintf("Required identity document for %s nationals", nationality),
				Status:      "pending",
				Source:      "nationality_requirement",
				Mandatory:   true,
			})
			for _, name := range natDocs.Additional {
				cl.CountrySpecific = append(cl.CountrySpecific, Item{
					Name:        name,
					Description: fmt.Sprintf("Additional requirement for %s applicants", nationality),
					Status:      "pending",
					Source:      "nationality_requirement",
					Mandatory:   true,
				})
			}
		} else {
			cl.CountrySpecific = append(cl.CountrySpecific, Item{
				Name:        "National ID Document or Passport",
				Description: "Valid national identity document from your country",
				Status:      "pending",
				Source:      "nationality_requirement",
				Mandatory:   true,
			})
		}
	}

	// Program-category documents matched against program and faculty names
	programLower := strings.ToLower(programName)
	facultyLower := strings.ToLower(facultyName)
	for _, entry := range programSpecificDocuments {
		category := strings.ToLower(entry.Category)
		if strings.Contains(programLower, category) || strings.Contains(facultyLower, category) {
			for _, name := range entry.Documents {
				cl.ProgramSpecific = append(cl.ProgramSpecific, Item{
					Name:        name,
					Description: fmt.Sprintf("Required for %s programs", entry.Category),
					Status:      "pending",
					Source:      "program_specific",
					Mandatory:   true,
				})
			}
		}
	}

	if international {
		cl.CountrySpecific = append(cl.CountrySpecific, Item{
			Name:        "EMGS Application Form",
			Description: "Education Malaysia Global Services application for student visa",
			Status:      "pending",
			Source:      "emgs_requirement",
			Mandatory:   true,
			Link:        "https://educationmalaysia.gov.my/",
		})
	}

	if !international && strings.Contains(programName, "Bachelor") {
		cl.Optional = append(cl.Optional, Item{
			Name:        "UPU Application Reference Number",
			Description: "If applying through UPU system",
			Status:      "pending",
			Source:      "upu_requirement",
			Mandatory:   false,
		})
	}

	if eligibilityStatus == "conditional" {
		cl.Optional = append(cl.Optional, Item{
			Name:        "Additional Supporting Documents",
			Description: "Documents to strengthen your application (recommendation letters, certificates, etc.)",
			Status:      "pending",
			Source:      "eligibility_recommendation",
			Mandatory:   false,
		})
	}

	totalMandatory := len(cl.Mandatory) + len(cl.ProgramSpecific)
	totalOptional := len(cl.Optional)
	for _, item := range cl.CountrySpecific {
		if item.Mandatory {
			totalMandatory++
		} else {
			totalOptional++
		}
	}

	cl.Summary = &Summary{
		TotalMandatory: totalMandatory,
		TotalOptional:  totalOptional,
		TotalDocuments: totalMandatory + totalOptional,
		Country:        country,
		ProgramID:      programID,
		GeneratedAt:    time.Now().Format(time.RFC3339),
	}

	return cl
}

// Generator assembles document checklists from stored program rows.
type Generator struct {
	db *gorm.DB
}

// NewGenerator returns a Generator reading from the given database handle.
func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{db: db}
}

// ProgramInfo returns the program with its faculty, or nil when not found.
func (g *Generator) ProgramInfo(programID uint) *models.Program {
	var program models.Program
	if err := g.db.Preload("Faculty").Where("id = ?", programID).First(&program).Error; err != nil {
		return nil
	}
	return &program
}

// GenerateChecklist builds the customized checklist for a program, country
// and eligibility status. Data-access failures yield a checklist with the
// error field set and all buckets empty.
func (g *Generator) GenerateChecklist(programID uint, country, eligibilityStatus string) Checklist {
	var baseDocuments []models.DocumentChecklistEntry
	err := g.db.Where("program_id = ?", programID).
		Order("is_mandatory DESC, document_name").
		Find(&baseDocuments).Error
	if err != nil {
		return errorChecklist(err)
	}

	programName := ""
	facultyName := ""
	if program := g.ProgramInfo(programID); program != nil {
		programName = program.ProgramName
		facultyName = program.Faculty.FacultyName
	}

	return Build(baseDocuments, programName, facultyName, country, eligibilityStatus, programID)
}
