package authenticator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	"github.com/Azure/private-endpoint-dns/pkg/cloudclient"
	"github.com/Azure/private-endpoint-dns/pkg/env"
	"github.com/Azure/private-endpoint-dns/pkg/util/azureclient"
	mock_azcore "github.com/Azure/private-endpoint-dns/pkg/util/mocks/azureclient/azuresdk/azcore"
	mock_cloudclient "github.com/Azure/private-endpoint-dns/pkg/util/mocks/cloudclient"
	utilerror "github.com/Azure/private-endpoint-dns/test/util/error"
	testlog "github.com/Azure/private-endpoint-dns/test/util/log"
)

const (
	eventSubscription = "11111111-1111-1111-1111-111111111111"
	dnsSubscription   = "22222222-2222-2222-2222-222222222222"
)

func TestCredentialModeFromConfig(t *testing.T) {
	if got := CredentialModeFromConfig(&env.Config{}); got != ManagedIdentity {
		t.Error(got)
	}
	if got := CredentialModeFromConfig(&env.Config{Debug: true}); got != ServicePrincipal {
		t.Error(got)
	}
}

type fakes struct {
	credentials  map[CredentialMode]int
	clients      map[string]int
	credentialFn func(CredentialMode) (azcore.TokenCredential, error)
	clientErr    error
}

func newTestAuthenticator(t *testing.T, controller *gomock.Controller, f *fakes) *authenticator {
	_, log := testlog.NewCapturingLogger()

	a := NewAuthenticator(log, &env.Config{Environment: azureclient.PublicCloud}).(*authenticator)

	a.newCredential = func(mode CredentialMode) (azcore.TokenCredential, error) {
		f.credentials[mode]++
		if f.credentialFn != nil {
			return f.credentialFn(mode)
		}
		return mock_azcore.NewMockTokenCredential(controller), nil
	}
	a.newCloudClient = func(log *logrus.Entry, environment *azureclient.Environment, subscriptionID string, credential azcore.TokenCredential) (cloudclient.Interface, error) {
		f.clients[subscriptionID]++
		if environment.Name != azureclient.PublicCloud.Name {
			t.Errorf("unexpected environment %s", environment.Name)
		}
		if credential == nil {
			t.Error("nil credential")
		}
		if f.clientErr != nil {
			return nil, f.clientErr
		}
		return mock_cloudclient.NewMockInterface(controller), nil
	}

	return a
}

func TestAuthenticateCaches(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	f := &fakes{credentials: map[CredentialMode]int{}, clients: map[string]int{}}
	a := newTestAuthenticator(t, controller, f)

	event1, err := a.Authenticate(ctx, eventSubscription, ManagedIdentity)
	if err != nil {
		t.Fatal(err)
	}
	event2, err := a.Authenticate(ctx, eventSubscription, ManagedIdentity)
	if err != nil {
		t.Fatal(err)
	}
	if event1 != event2 {
		t.Error("expected the cached client for the same subscription and mode")
	}

	dns, err := a.Authenticate(ctx, dnsSubscription, ManagedIdentity)
	if err != nil {
		t.Fatal(err)
	}
	if dns == event1 {
		t.Error("expected a distinct client for a distinct subscription")
	}

	sp, err := a.Authenticate(ctx, eventSubscription, ServicePrincipal)
	if err != nil {
		t.Fatal(err)
	}
	if sp == event1 {
		t.Error("expected a distinct client for a distinct mode")
	}

	if f.credentials[ManagedIdentity] != 1 || f.credentials[ServicePrincipal] != 1 {
		t.Errorf("unexpected credential creations %v", f.credentials)
	}
	if f.clients[eventSubscription] != 2 || f.clients[dnsSubscription] != 1 {
		t.Errorf("unexpected client creations %v", f.clients)
	}
}

func TestAuthenticateConcurrent(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	f := &fakes{credentials: map[CredentialMode]int{}, clients: map[string]int{}}
	a := newTestAuthenticator(t, controller, f)

	var wg sync.WaitGroup
	results := make([]cloudclient.Interface, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = a.Authenticate(ctx, dnsSubscription, ManagedIdentity)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		if r == nil || r != results[0] {
			t.Fatal("expected every caller to receive the same client")
		}
	}
	if f.clients[dnsSubscription] != 1 {
		t.Error(f.clients)
	}
}

func TestAuthenticateErrors(t *testing.T) {
	for _, tt := range []struct {
		name           string
		ctx            func() context.Context
		subscriptionID string
		fakes          *fakes
		wantErr        string
		wantCode       api.Code
	}{
		{
			name: "cancelled",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			subscriptionID: eventSubscription,
			fakes:          &fakes{},
			wantErr:        "context canceled",
		},
		{
			name:     "empty subscription",
			fakes:    &fakes{},
			wantCode: api.CodeAuthError,
		},
		{
			name:           "credential failure",
			subscriptionID: eventSubscription,
			fakes: &fakes{
				credentialFn: func(CredentialMode) (azcore.TokenCredential, error) {
					return nil, errors.New("no identity endpoint")
				},
			},
			wantErr: `AuthError: creating ManagedIdentity credential: no identity endpoint`,
		},
		{
			name:           "client failure",
			subscriptionID: eventSubscription,
			fakes: &fakes{
				clientErr: errors.New("bad options"),
			},
			wantErr: `AuthError: creating client for subscription "11111111-1111-1111-1111-111111111111": bad options`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			tt.fakes.credentials = map[CredentialMode]int{}
			tt.fakes.clients = map[string]int{}
			a := newTestAuthenticator(t, controller, tt.fakes)

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			client, err := a.Authenticate(ctx, tt.subscriptionID, ManagedIdentity)
			if tt.wantCode != "" {
				utilerror.AssertErrorCode(t, err, tt.wantCode)
			} else {
				utilerror.AssertErrorMessage(t, err, tt.wantErr)
			}
			if client != nil {
				t.Error("expected no client")
			}
			if len(a.clients) != 0 {
				t.Error("failed clients must not be cached")
			}
		})
	}
}

func TestCredential(t *testing.T) {
	a := &authenticator{
		config: &env.Config{
			Environment:             azureclient.PublicCloud,
			TenantID:                "contoso.onmicrosoft.com",
			ClientID:                "33333333-3333-3333-3333-333333333333",
			ClientSecret:            "secret",
			ManagedIdentityClientID: "44444444-4444-4444-4444-444444444444",
		},
	}

	for _, mode := range []CredentialMode{ManagedIdentity, ServicePrincipal} {
		credential, err := a.credential(mode)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if credential == nil {
			t.Errorf("%s: nil credential", mode)
		}
	}

	_, err := a.credential("Certificate")
	utilerror.AssertErrorMessage(t, err, `AuthError: credential mode "Certificate" is not supported`)
}

func TestNewAuthenticatorBuildsRealClients(t *testing.T) {
	_, log := testlog.NewCapturingLogger()

	a := NewAuthenticator(log, &env.Config{
		Environment:  azureclient.PublicCloud,
		Debug:        true,
		TenantID:     "contoso.onmicrosoft.com",
		ClientID:     "33333333-3333-3333-3333-333333333333",
		ClientSecret: "secret",
	})

	client, err := a.Authenticate(context.Background(), dnsSubscription, ServicePrincipal)
	if err != nil {
		t.Fatal(err)
	}
	if client == nil {
		t.Fatal("nil client")
	}
}
