package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mindchat/mindchat_backend/internal/repo"
	"github.com/mindchat/mindchat_backend/internal/service/directory"
)

type stubDirectoryService struct {
	directory.Service

	profiles []directory.PsychologistProfile
}

func (s *stubDirectoryService) VisiblePsychologists(ctx context.Context) ([]directory.PsychologistProfile, error) {
	return s.profiles, nil
}

func TestListPsychologistsOptionalFields(t *testing.T) {
	university := "UNAM"
	year := 2015

	svc := &stubDirectoryService{profiles: []directory.PsychologistProfile{
		{
			Psychologist: &repo.Psychologist{
				ID:                  uuid.New(),
				ProfessionalLicense: "PSY-001",
				University:          &university,
				GraduationYear:      &year,
			},
			FullName: "Laura Ruiz",
			Tags:     []string{"Ansiedad"},
		},
		{
			Psychologist: &repo.Psychologist{
				ID:                  uuid.New(),
				ProfessionalLicense: "PSY-002",
			},
			FullName: "Marco Díaz",
		},
	}}

	app := fiber.New()
	app.Get("/psychologists", NewDirectoryHandler(svc).ListPsychologists)

	resp, err := app.Test(httptest.NewRequest("GET", "/psychologists", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	for _, want := range []string{
		`"university":"UNAM"`,
		`"graduation_year":2015`,
		`"university":null`,
		`"graduation_year":null`,
		`"bio":null`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("body %s does not contain %s", body, want)
		}
	}
}
