// Package services contains application services for the HealthDash client.
// This file defines the profile service: fetching, creating/updating the
// per-user health record, and document upload.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/healthdash/internal/client/models"
	"github.com/dmitrijs2005/healthdash/internal/common"
	"github.com/dmitrijs2005/healthdash/internal/logging"
	"github.com/dmitrijs2005/healthdash/internal/validation"
)

// Endpoints of the backend REST surface.
const (
	profileEndpoint = "/profile"
	uploadEndpoint  = "/upload"
	healthEndpoint  = "/health"
)

// API is the slice of the api.Client used by the profile service.
type API interface {
	Get(ctx context.Context, endpoint string) *models.Response
	Post(ctx context.Context, endpoint string, data any) *models.Response
	Put(ctx context.Context, endpoint string, data any) *models.Response
	UploadFile(ctx context.Context, endpoint, fileName string, r io.Reader, fieldName string) *models.Response
}

// ProfileService drives the health-profile flows over the API client. The
// in-memory copy of the profile is always replaced wholesale with the
// backend's response; there is no partial patching.
type ProfileService struct {
	api API
	log logging.Logger
}

// NewProfileService constructs a ProfileService bound to the given API client.
func NewProfileService(api API, log logging.Logger) *ProfileService {
	return &ProfileService{api: api, log: log.With("component", "profile")}
}

// Fetch loads the current user's profile. A backend failure (including "no
// profile yet") is returned as an error wrapping the envelope's message.
func (s *ProfileService) Fetch(ctx context.Context) (*models.HealthProfile, error) {
	resp := s.api.Get(ctx, profileEndpoint)
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", common.ErrorNotFound, resp.Error)
	}

	p, err := models.DecodeData[models.HealthProfile](resp)
	if err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &p, nil
}

// Save validates the record and submits it: a record with no id is created
// (POST), an existing one is fully replaced (PUT). The backend's copy is
// returned and supersedes whatever the caller held.
func (s *ProfileService) Save(ctx context.Context, p *models.HealthProfile) (*models.HealthProfile, error) {
	if res := validation.ValidateProfileForm(p); !res.Valid {
		return nil, fmt.Errorf("%w: %s", common.ErrorValidation, res.Error)
	}

	var resp *models.Response
	if p.ID == "" {
		resp = s.api.Post(ctx, profileEndpoint, p)
	} else {
		resp = s.api.Put(ctx, profileEndpoint, p)
	}
	if !resp.Success {
		return nil, errors.New(saveError(resp))
	}

	saved, err := models.DecodeData[models.HealthProfile](resp)
	if err != nil {
		return nil, fmt.Errorf("failed to decode saved profile: %w", err)
	}

	s.log.Info(ctx, "profile saved", "id", saved.ID)
	return &saved, nil
}

// UploadDocument validates and uploads the file at path as the profile
// document, then re-fetches the profile so the caller sees the new document
// reference without a full restart.
func (s *ProfileService) UploadDocument(ctx context.Context, path string) (*models.HealthProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat document: %w", err)
	}
	if !validation.IsValidFileSize(info.Size(), validation.DefaultMaxFileSizeMB) {
		return nil, fmt.Errorf("%w: file exceeds %d MB", common.ErrorValidation, validation.DefaultMaxFileSizeMB)
	}
	if !validation.IsValidFileType(mimeTypeByName(path), validation.DefaultAllowedFileTypes) {
		return nil, fmt.Errorf("%w: unsupported file type", common.ErrorValidation)
	}

	resp := s.api.UploadFile(ctx, uploadEndpoint, filepath.Base(path), f, "document")
	if !resp.Success {
		return nil, errors.New(saveError(resp))
	}

	s.log.Info(ctx, "document uploaded", "file", filepath.Base(path))
	return s.Fetch(ctx)
}

// Health probes backend liveness. It tolerates anonymous access: the probe
// goes through the normal client, but nothing in the response is decoded
// beyond the envelope.
func (s *ProfileService) Health(ctx context.Context) error {
	resp := s.api.Get(ctx, healthEndpoint)
	if !resp.Success {
		return fmt.Errorf("%w: %s", common.ErrUnavailable, resp.Error)
	}
	return nil
}

func saveError(resp *models.Response) string {
	if resp.Error != "" {
		return resp.Error
	}
	if resp.Message != "" {
		return resp.Message
	}
	return "request failed"
}

// mimeTypeByName maps a file name to its MIME type by extension, with any
// parameters stripped.
func mimeTypeByName(name string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if i := strings.Index(t, ";"); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}
