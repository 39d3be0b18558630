package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/healthdash/internal/client/models"
	"github.com/dmitrijs2005/healthdash/internal/common"
)

// ShowProfile fetches and prints the current user's health profile. A
// missing profile is not an error from the user's point of view; they are
// nudged towards the edit command instead.
func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profile.Fetch(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No profile yet. Use 'edit' to create one.")
			return nil
		}
		printlnFn("Failed to load profile:", err.Error())
		return err
	}

	printProfile(p)
	return nil
}

// EditProfile walks the user through the profile form. Existing values are
// offered as defaults so only changed fields need retyping; a brand-new
// profile starts from blank fields. The saved copy returned by the backend
// is printed at the end.
func (a *App) EditProfile(ctx context.Context) error {
	current, err := a.profile.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			printlnFn("Failed to load profile:", err.Error())
			return err
		}
		current = &models.HealthProfile{}
	}

	form := *current

	if form.Name, err = getTextWithDefault(a.reader, "Full name", current.Name, os.Stdout); err != nil {
		return err
	}
	if form.BloodGroup, err = getTextWithDefault(a.reader, "Blood group (A+, A-, B+, B-, AB+, AB-, O+, O-)", current.BloodGroup, os.Stdout); err != nil {
		return err
	}
	if form.InsuranceProvider, err = getTextWithDefault(a.reader, "Insurance provider", current.InsuranceProvider, os.Stdout); err != nil {
		return err
	}
	if form.InsuranceNumber, err = getTextWithDefault(a.reader, "Insurance number", current.InsuranceNumber, os.Stdout); err != nil {
		return err
	}

	saved, err := a.profile.Save(ctx, &form)
	if err != nil {
		printlnFn("Failed to save profile:", err.Error())
		return err
	}

	printlnFn("Profile saved")
	printProfile(saved)
	return nil
}

// Upload prompts for a file path, uploads the document and prints the
// refreshed profile so the new document reference is visible immediately.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path to document (PDF, JPEG or PNG, up to 10 MB)", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.profile.UploadDocument(ctx, path)
	if err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}

	printlnFn("Document uploaded")
	printProfile(p)
	return nil
}

// Health probes the backend and reports the result.
func (a *App) Health(ctx context.Context) error {
	if err := a.profile.Health(ctx); err != nil {
		printlnFn("Backend is unavailable:", err.Error())
		return err
	}
	printlnFn("Backend is up")
	return nil
}

func printProfile(p *models.HealthProfile) {
	printlnFn("Name:              ", p.Name)
	printlnFn("Blood group:       ", p.BloodGroup)
	printlnFn("Insurance provider:", p.InsuranceProvider)
	printlnFn("Insurance number:  ", p.InsuranceNumber)
	if p.PDFURL != "" {
		printlnFn("Document:          ", p.PDFURL)
	}
}
