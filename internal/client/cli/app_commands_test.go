package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/healthdash/internal/client/auth"
	"github.com/dmitrijs2005/healthdash/internal/client/models"
	"github.com/dmitrijs2005/healthdash/internal/common"
)

// ---------- stubs ----------

type stubAuth struct {
	signupRes  auth.Result
	confirmRes auth.Result
	loginRes   auth.LoginResult

	gotEmail    string
	gotPassword string
	gotCode     string
}

func (s *stubAuth) Signup(ctx context.Context, email, password string) auth.Result {
	s.gotEmail, s.gotPassword = email, password
	return s.signupRes
}

func (s *stubAuth) ConfirmSignup(ctx context.Context, email, code string) auth.Result {
	s.gotEmail, s.gotCode = email, code
	return s.confirmRes
}

func (s *stubAuth) Login(ctx context.Context, email, password string) auth.LoginResult {
	s.gotEmail, s.gotPassword = email, password
	return s.loginRes
}

type stubProfile struct {
	fetched   *models.HealthProfile
	fetchErr  error
	saved     *models.HealthProfile
	saveErr   error
	uploaded  *models.HealthProfile
	uploadErr error
	healthErr error

	gotSave   *models.HealthProfile
	gotUpload string
}

func (s *stubProfile) Fetch(ctx context.Context) (*models.HealthProfile, error) {
	return s.fetched, s.fetchErr
}

func (s *stubProfile) Save(ctx context.Context, p *models.HealthProfile) (*models.HealthProfile, error) {
	s.gotSave = p
	return s.saved, s.saveErr
}

func (s *stubProfile) UploadDocument(ctx context.Context, path string) (*models.HealthProfile, error) {
	s.gotUpload = path
	return s.uploaded, s.uploadErr
}

func (s *stubProfile) Health(ctx context.Context) error { return s.healthErr }

type stubSession struct {
	user    *models.AuthUser
	cleared bool
}

func (s *stubSession) Current(ctx context.Context) *models.AuthUser { return s.user }
func (s *stubSession) Clear(ctx context.Context)                    { s.cleared = true; s.user = nil }
func (s *stubSession) IsAuthenticated(ctx context.Context) bool     { return s.user != nil }

// ---------- seam helpers ----------

// captureOutput swaps printlnFn for a collector and restores it on cleanup.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// stubInputs replaces the interactive input seams with canned answers.
func stubInputs(t *testing.T, texts []string, password string) {
	t.Helper()
	origText, origDefault, origPw := getSimpleText, getTextWithDefault, getPassword
	t.Cleanup(func() {
		getSimpleText, getTextWithDefault, getPassword = origText, origDefault, origPw
	})

	i := 0
	next := func() string {
		if i >= len(texts) {
			return ""
		}
		s := texts[i]
		i++
		return s
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return next(), nil
	}
	getTextWithDefault = func(_ *bufio.Reader, _ string, current string, _ io.Writer) (string, error) {
		if s := next(); s != "" {
			return s, nil
		}
		return current, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func outputContains(lines *[]string, substr string) bool {
	for _, l := range *lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// ---------- auth commands ----------

func TestSignup_Success(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"user@example.com"}, "Passw0rd")

	ag := &stubAuth{signupRes: auth.Result{Success: true, Message: "Signup successful. Please check your email for verification code."}}
	a := &App{auth: ag}

	err := a.Signup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", ag.gotEmail)
	assert.Equal(t, "Passw0rd", ag.gotPassword)
	assert.True(t, outputContains(out, "Signup successful"))
}

func TestSignup_InvalidEmail(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"not-an-email"}, "Passw0rd")

	ag := &stubAuth{}
	a := &App{auth: ag}

	err := a.Signup(context.Background())
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Empty(t, ag.gotEmail, "provider must not be called")
	assert.True(t, outputContains(out, "valid email"))
}

func TestSignup_WeakPassword(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"user@example.com"}, "short")

	ag := &stubAuth{}
	a := &App{auth: ag}

	err := a.Signup(context.Background())
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Empty(t, ag.gotEmail)
	assert.True(t, outputContains(out, "at least 8 characters"))
}

func TestConfirm_Success(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"user@example.com", "123456"}, "")

	ag := &stubAuth{confirmRes: auth.Result{Success: true, Message: "Email confirmed successfully"}}
	a := &App{auth: ag}

	err := a.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123456", ag.gotCode)
	assert.True(t, outputContains(out, "Email confirmed successfully"))
}

func TestLogin_Failure(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"user@example.com"}, "Passw0rd")

	ag := &stubAuth{loginRes: auth.LoginResult{
		Result: auth.Result{Success: false, Message: "Login failed - no access token received"},
	}}
	a := &App{auth: ag}

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.True(t, outputContains(out, "no access token received"))
}

func TestLogout_ClearsSession(t *testing.T) {
	out := captureOutput(t)

	sess := &stubSession{user: &models.AuthUser{Email: "user@example.com"}}
	a := &App{session: sess}

	err := a.Logout(context.Background())
	require.NoError(t, err)
	assert.True(t, sess.cleared)
	assert.True(t, outputContains(out, "Logged out"))
}

func TestWhoAmI(t *testing.T) {
	out := captureOutput(t)

	a := &App{session: &stubSession{}}
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.True(t, outputContains(out, "Not logged in"))

	a.session = &stubSession{user: &models.AuthUser{ID: "u-1", Email: "user@example.com"}}
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.True(t, outputContains(out, "user@example.com"))
}

// ---------- profile commands ----------

func TestShowProfile_NoProfileYet(t *testing.T) {
	out := captureOutput(t)

	ps := &stubProfile{fetchErr: fmt.Errorf("%w: Profile not found", common.ErrorNotFound)}
	a := &App{profile: ps}

	err := a.ShowProfile(context.Background())
	require.NoError(t, err)
	assert.True(t, outputContains(out, "No profile yet"))
}

func TestShowProfile_PrintsFields(t *testing.T) {
	out := captureOutput(t)

	ps := &stubProfile{fetched: &models.HealthProfile{
		Name:              "Jane Doe",
		BloodGroup:        "O+",
		InsuranceProvider: "Acme Health",
		InsuranceNumber:   "INS-42",
		PDFURL:            "https://files.example.com/doc.pdf",
	}}
	a := &App{profile: ps}

	require.NoError(t, a.ShowProfile(context.Background()))
	assert.True(t, outputContains(out, "Jane Doe"))
	assert.True(t, outputContains(out, "O+"))
	assert.True(t, outputContains(out, "doc.pdf"))
}

func TestEditProfile_CreatesFromBlank(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"Jane Doe", "O+", "Acme Health", "INS-42"}, "")

	ps := &stubProfile{
		fetchErr: fmt.Errorf("%w: Profile not found", common.ErrorNotFound),
		saved: &models.HealthProfile{
			ID: "p-1", Name: "Jane Doe", BloodGroup: "O+",
			InsuranceProvider: "Acme Health", InsuranceNumber: "INS-42",
		},
	}
	a := &App{profile: ps}

	err := a.EditProfile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ps.gotSave)
	assert.Empty(t, ps.gotSave.ID)
	assert.Equal(t, "Jane Doe", ps.gotSave.Name)
	assert.Equal(t, "O+", ps.gotSave.BloodGroup)
	assert.True(t, outputContains(out, "Profile saved"))
}

func TestEditProfile_KeepsExistingValues(t *testing.T) {
	captureOutput(t)
	// only the blood group is changed; empty answers keep current values
	stubInputs(t, []string{"", "AB-", "", ""}, "")

	ps := &stubProfile{
		fetched: &models.HealthProfile{
			ID: "p-1", Name: "Jane Doe", BloodGroup: "O+",
			InsuranceProvider: "Acme Health", InsuranceNumber: "INS-42",
		},
	}
	ps.saved = ps.fetched
	a := &App{profile: ps}

	require.NoError(t, a.EditProfile(context.Background()))
	require.NotNil(t, ps.gotSave)
	assert.Equal(t, "p-1", ps.gotSave.ID)
	assert.Equal(t, "Jane Doe", ps.gotSave.Name)
	assert.Equal(t, "AB-", ps.gotSave.BloodGroup)
	assert.Equal(t, "INS-42", ps.gotSave.InsuranceNumber)
}

func TestEditProfile_SaveError(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"J", "O+", "Acme", "INS-42"}, "")

	ps := &stubProfile{
		fetchErr: fmt.Errorf("%w: Profile not found", common.ErrorNotFound),
		saveErr:  fmt.Errorf("%w: Name must be at least 2 characters", common.ErrorValidation),
	}
	a := &App{profile: ps}

	err := a.EditProfile(context.Background())
	require.Error(t, err)
	assert.True(t, outputContains(out, "Failed to save profile"))
}

func TestUpload_Success(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"/tmp/report.pdf"}, "")

	ps := &stubProfile{uploaded: &models.HealthProfile{
		Name: "Jane Doe", PDFURL: "https://files.example.com/report.pdf",
	}}
	a := &App{profile: ps}

	err := a.Upload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/report.pdf", ps.gotUpload)
	assert.True(t, outputContains(out, "Document uploaded"))
	assert.True(t, outputContains(out, "report.pdf"))
}

func TestUpload_Failure(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"/tmp/huge.pdf"}, "")

	ps := &stubProfile{uploadErr: fmt.Errorf("%w: file exceeds 10 MB", common.ErrorValidation)}
	a := &App{profile: ps}

	err := a.Upload(context.Background())
	require.Error(t, err)
	assert.True(t, outputContains(out, "Upload failed"))
}

func TestHealth(t *testing.T) {
	out := captureOutput(t)

	a := &App{profile: &stubProfile{}}
	require.NoError(t, a.Health(context.Background()))
	assert.True(t, outputContains(out, "Backend is up"))

	a.profile = &stubProfile{healthErr: errors.New("server unavailable: boom")}
	require.Error(t, a.Health(context.Background()))
	assert.True(t, outputContains(out, "Backend is unavailable"))
}

// ---------- status ----------

func TestGetStatus(t *testing.T) {
	a := &App{session: &stubSession{}}
	assert.Equal(t, "", a.getStatus(context.Background()))

	a.session = &stubSession{user: &models.AuthUser{Email: "user@example.com"}}
	assert.Equal(t, "(user@example.com)", a.getStatus(context.Background()))
}
