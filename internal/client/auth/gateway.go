// Package auth wraps the managed identity provider (AWS Cognito) behind
// uniform result values: signup, email confirmation and login. On successful
// login the gateway populates the session manager before returning, so any
// API call issued afterwards observes the new credential.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrijs2005/healthdash/internal/client/models"
	"github.com/dmitrijs2005/healthdash/internal/logging"
)

// User-facing outcome messages. The no-token login failure is a deliberate
// contract: a provider response lacking a token cannot establish a session,
// even though the transport call succeeded.
const (
	msgSignupOK       = "Signup successful. Please check your email for verification code."
	msgConfirmOK      = "Email confirmed successfully"
	msgLoginOK        = "Login successful"
	msgNoAccessToken  = "Login failed - no access token received"
	msgConfigNotFound = "Cognito configuration not found"
)

// errConfigNotFound is the fatal configuration failure reported inline when
// region or client id is missing at call time.
var errConfigNotFound = errors.New("cognito configuration not found")

// Result is the uniform outcome of every gateway operation.
type Result struct {
	Success bool
	Message string
}

// LoginResult extends Result with the established user on success.
type LoginResult struct {
	Result
	User *models.AuthUser
}

// cognitoAPI is the subset of the Cognito client the gateway calls.
// Tests provide a fake; production uses *cognitoidentityprovider.Client.
type cognitoAPI interface {
	SignUp(ctx context.Context, in *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, in *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	InitiateAuth(ctx context.Context, in *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
}

// SessionWriter is the slice of the session manager the gateway needs.
type SessionWriter interface {
	SetCurrent(ctx context.Context, u *models.AuthUser) error
}

// Gateway performs identity-provider operations. The underlying SDK client
// is constructed lazily on first use and reused afterwards.
type Gateway struct {
	region   string
	clientID string
	session  SessionWriter
	log      logging.Logger

	mu     sync.Mutex
	client cognitoAPI

	// newClient is a construction seam for tests.
	newClient func(ctx context.Context, region string) (cognitoAPI, error)
}

// NewGateway constructs a Gateway for the given provider region and app
// client id. Both are validated at call time, not here: a misconfigured
// gateway reports the failure inline on each operation.
func NewGateway(region, clientID string, session SessionWriter, log logging.Logger) *Gateway {
	return &Gateway{
		region:    region,
		clientID:  clientID,
		session:   session,
		log:       log.With("component", "auth"),
		newClient: newCognitoClient,
	}
}

// newCognitoClient builds the real SDK client. Cognito's public app-client
// operations are unsigned, so anonymous credentials are sufficient.
func newCognitoClient(ctx context.Context, region string) (cognitoAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, err
	}
	return cip.NewFromConfig(cfg), nil
}

// initClient returns the cached provider client, constructing it on first
// use. Missing region or client id is a configuration failure.
func (g *Gateway) initClient(ctx context.Context) (cognitoAPI, error) {
	if g.region == "" || g.clientID == "" {
		return nil, errConfigNotFound
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}

	client, err := g.newClient(ctx, g.region)
	if err != nil {
		return nil, err
	}
	g.client = client
	return g.client, nil
}

// Signup submits the credential pair to the provider. The caller must
// confirm the email before login succeeds. Provider rejections (weak
// password, duplicate account) surface their message verbatim.
func (g *Gateway) Signup(ctx context.Context, email, password string) Result {
	client, err := g.initClient(ctx)
	if err != nil {
		return g.failure(ctx, "signup", err, "Signup failed")
	}

	_, err = client.SignUp(ctx, &cip.SignUpInput{
		ClientId: aws.String(g.clientID),
		Username: aws.String(email),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		return g.failure(ctx, "signup", err, "Signup failed")
	}

	return Result{Success: true, Message: msgSignupOK}
}

// ConfirmSignup submits the emailed confirmation code, unlocking login for
// the account.
func (g *Gateway) ConfirmSignup(ctx context.Context, email, code string) Result {
	client, err := g.initClient(ctx)
	if err != nil {
		return g.failure(ctx, "confirm signup", err, "Confirmation failed")
	}

	_, err = client.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(g.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return g.failure(ctx, "confirm signup", err, "Confirmation failed")
	}

	return Result{Success: true, Message: msgConfirmOK}
}

// Login authenticates with the password flow. On success it decodes the
// access token's claims (no signature verification, display use only),
// stores the user in the session, and returns it.
func (g *Gateway) Login(ctx context.Context, email, password string) LoginResult {
	client, err := g.initClient(ctx)
	if err != nil {
		return LoginResult{Result: g.failure(ctx, "login", err, "Login failed")}
	}

	resp, err := client.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(g.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return LoginResult{Result: g.failure(ctx, "login", err, "Login failed")}
	}

	if resp.AuthenticationResult == nil || aws.ToString(resp.AuthenticationResult.AccessToken) == "" {
		return LoginResult{Result: Result{Success: false, Message: msgNoAccessToken}}
	}
	accessToken := aws.ToString(resp.AuthenticationResult.AccessToken)

	user, err := userFromToken(accessToken, email)
	if err != nil {
		return LoginResult{Result: g.failure(ctx, "login", err, "Login failed")}
	}

	if err := g.session.SetCurrent(ctx, user); err != nil {
		// The in-memory session is established; losing the durable copy
		// only costs persistence across restarts.
		g.log.Warn(ctx, "failed to persist session", "error", err)
	}

	g.log.Info(ctx, "login succeeded", "user", user.ID)
	return LoginResult{Result: Result{Success: true, Message: msgLoginOK}, User: user}
}

// failure logs and converts an operation error to a Result. Configuration
// errors and provider API errors keep their own message; anything else falls
// back to the operation's generic message.
func (g *Gateway) failure(ctx context.Context, op string, err error, fallback string) Result {
	g.log.Error(ctx, op+" failed", "error", err)

	if errors.Is(err, errConfigNotFound) {
		return Result{Success: false, Message: msgConfigNotFound}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return Result{Success: false, Message: apiErr.ErrorMessage()}
	}
	if msg := err.Error(); msg != "" {
		return Result{Success: false, Message: msg}
	}
	return Result{Success: false, Message: fallback}
}
