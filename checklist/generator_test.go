package checklist

import (
	"admission/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseDocs() []models.DocumentChecklistEntry {
	return []models.DocumentChecklistEntry{
		{DocumentName: "Academic Transcript", IsMandatory: true, Description: "Certified copy"},
		{DocumentName: "SPM Certificate", IsMandatory: true, Description: "Certified copy"},
		{DocumentName: "Co-curricular Certificates", IsMandatory: false, Description: "If available"},
	}
}

func itemNames(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func countBySource(items []Item, source string) int {
	n := 0
	for _, item := range items {
		if item.Source == source {
			n++
		}
	}
	return n
}

func TestIsInternational(t *testing.T) {
	assert.False(t, IsInternational("Malaysia"))
	assert.False(t, IsInternational("malaysian"))
	assert.False(t, IsInternational("MALAYSIA"))
	assert.True(t, IsInternational("Indonesia"))
	assert.True(t, IsInternational("Germany"))
}

func TestBuild_MalaysianApplicant(t *testing.T) {
	cl := Build(baseDocs(), "Bachelor of Computer Science", "Faculty of Computing", "Malaysia", "eligible", 7)

	// Base mandatory rows survive untouched for domestic applicants
	assert.Equal(t, []string{"Academic Transcript", "SPM Certificate"}, itemNames(cl.Mandatory))
	for _, item := range cl.Mandatory {
		assert.Equal(t, "program_requirement", item.Source)
		assert.Equal(t, "pending", item.Status)
	}

	// Malaysia identity documents land in country_specific, not mandatory
	assert.Equal(t, []string{"Identity Card (MyKad)", "Birth Certificate"}, itemNames(cl.CountrySpecific))
	assert.NotContains(t, itemNames(cl.Mandatory), "Identity Card (MyKad)")

	// Bachelor programs get the UPU reference as an optional extra
	assert.Equal(t, []string{"Co-curricular Certificates", "UPU Application Reference Number"}, itemNames(cl.Optional))

	// No visa paperwork for domestic applicants
	assert.Zero(t, countBySource(cl.CountrySpecific, "emgs_requirement"))
	assert.Empty(t, cl.ProgramSpecific)

	require.NotNil(t, cl.Summary)
	assert.Equal(t, 4, cl.Summary.TotalMandatory)
	assert.Equal(t, 2, cl.Summary.TotalOptional)
	assert.Equal(t, 6, cl.Summary.TotalDocuments)
	assert.Equal(t, uint(7), cl.Summary.ProgramID)
	assert.Equal(t, "Malaysia", cl.Summary.Country)
}

func TestBuild_InternationalReplacesMandatory(t *testing.T) {
	cl := Build(baseDocs(), "Master of Engineering", "Faculty of Engineering", "Indonesia", "eligible", 3)

	// Mandatory bucket is replaced wholesale by the international set
	assert.Len(t, cl.Mandatory, 9)
	assert.NotContains(t, itemNames(cl.Mandatory), "Academic Transcript")
	for _, item := range cl.Mandatory {
		assert.Equal(t, "international_requirement", item.Source)
		assert.True(t, item.Mandatory)
	}

	// Base optional rows survive; no UPU entry for international applicants
	assert.Equal(t, []string{"Co-curricular Certificates"}, itemNames(cl.Optional))

	// Nationality identity document plus its additional requirement
	names := itemNames(cl.CountrySpecific)
	assert.Contains(t, names, "National ID Document (KTP (Kartu Tanda Penduduk) or Passport)")
	assert.Contains(t, names, "Academic transcripts with certified English translation")
	assert.NotContains(t, names, "National ID Document or Passport")

	// Exactly one EMGS entry, carrying the portal link
	assert.Equal(t, 1, countBySource(cl.CountrySpecific, "emgs_requirement"))
	for _, item := range cl.CountrySpecific {
		if item.Source == "emgs_requirement" {
			assert.Equal(t, "https://educationmalaysia.gov.my/", item.Link)
		}
	}

	// Engineering category matched once even though it appears in both names
	assert.Equal(t, []string{"Engineering Drawing Portfolio (if applicable)"}, itemNames(cl.ProgramSpecific))

	require.NotNil(t, cl.Summary)
	assert.Equal(t, 13, cl.Summary.TotalMandatory)
	assert.Equal(t, 6, cl.Summary.TotalOptional)
	assert.Equal(t, 19, cl.Summary.TotalDocuments)
}

func TestBuild_UnknownNationalityFallback(t *testing.T) {
	cl := Build(nil, "Master of Science", "Faculty of Science", "Germany", "eligible", 1)

	names := itemNames(cl.CountrySpecific)
	assert.Contains(t, names, "National ID Document or Passport")
	assert.Equal(t, 1, countBySource(cl.CountrySpecific, "nationality_requirement"))
}

func TestBuild_ConditionalStatusAddsSupportingDocuments(t *testing.T) {
	cl := Build(nil, "Diploma in Business", "Faculty of Business", "Thailand", "conditional", 2)

	supporting := 0
	for _, item := range cl.Optional {
		if item.Name == "Additional Supporting Documents" {
			supporting++
			assert.False(t, item.Mandatory)
			assert.Equal(t, "eligibility_recommendation", item.Source)
		}
	}
	assert.Equal(t, 1, supporting)

	// Thai identity document carried through exact nationality match
	assert.Contains(t, itemNames(cl.CountrySpecific), "National ID Document (Thai National ID Card or Passport)")

	// Business category matched from both program and faculty names, added once
	assert.Equal(t, []string{"Business Plan (for Entrepreneurship programs)"}, itemNames(cl.ProgramSpecific))
}

func TestBuild_MedicineAddsTwoDocuments(t *testing.T) {
	cl := Build(nil, "Bachelor of Medicine", "Faculty of Medicine and Health Sciences", "Malaysia", "eligible", 4)

	assert.Equal(t, []string{"Medical Fitness Certificate", "Criminal Record Check"}, itemNames(cl.ProgramSpecific))
	for _, item := range cl.ProgramSpecific {
		assert.Equal(t, "program_specific", item.Source)
		assert.True(t, item.Mandatory)
	}
}
