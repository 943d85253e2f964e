package admissionValidator

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checklistTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/document-checklist", DocumentChecklist(), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals("validatedChecklist"))
	})
	return app
}

func TestDocumentChecklistRejectsMissingOrNegativeProgramID(t *testing.T) {
	app := checklistTestApp()

	for _, query := range []string{"", "program_id=0", "program_id=-5", "program_id=abc"} {
		req := httptest.NewRequest(fiber.MethodGet, "/document-checklist?"+query, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "query: %q", query)
	}
}

func TestDocumentChecklistDefaults(t *testing.T) {
	app := checklistTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/document-checklist?program_id=3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed struct {
		ProgramID         uint   `json:"program_id"`
		Country           string `json:"country"`
		EligibilityStatus string `json:"eligibility_status"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))

	assert.Equal(t, uint(3), parsed.ProgramID)
	assert.Equal(t, "Malaysia", parsed.Country)
	assert.Equal(t, "eligible", parsed.EligibilityStatus)
}
