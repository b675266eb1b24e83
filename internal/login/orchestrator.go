package login

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/humanitec/humctl-login/internal/browseruse"
	"github.com/humanitec/humctl-login/internal/message"
	"github.com/humanitec/humctl-login/internal/secretserver"
	"github.com/humanitec/humctl-login/internal/utils"
)

type SecretResolver interface {
	GetSecret(ctx context.Context, baseURL string, req secretserver.SecretRequest) (secretserver.Response, error)
}

type TaskDispatcher interface {
	ExecuteTask(ctx context.Context, baseURL string, req browseruse.TaskRequest) (any, error)
}

type Orchestrator struct {
	secrets SecretResolver
	tasks   TaskDispatcher
}

func NewOrchestrator(secrets SecretResolver, tasks TaskDispatcher) *Orchestrator {
	return &Orchestrator{
		secrets: secrets,
		tasks:   tasks,
	}
}

// Run processes items one after the other and returns one Result per item,
// in input order. A failing item never stops the batch.
func (o *Orchestrator) Run(ctx context.Context, items []Item) []Result {
	runId := uuid.New().String()
	message.Debug("Starting login batch %s with %d item(s)", runId, len(items))

	results := make([]Result, 0, len(items))
	for i, item := range items {
		result := o.process(ctx, item)
		if result.Success {
			message.Debug("[%s] item %d: login task submitted for user '%s'", runId, i, item.Username)
		} else {
			message.Debug("[%s] item %d: login failed for user '%s'", runId, i, item.Username)
		}
		results = append(results, result)
	}

	message.Debug("Finished login batch %s: %d failed", runId, CountFailed(results))
	return results
}

func (o *Orchestrator) process(ctx context.Context, item Item) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Failed(fmt.Errorf("unexpected failure: %v", r))
		}
	}()

	loginResult, err := o.Login(ctx, item)
	if err != nil {
		return Failed(err)
	}
	return Succeeded(loginResult)
}

// Login resolves the item's password and submits the browser login task.
// The secret lookup uses the normalized username while the login itself uses
// the last '-' segment of the raw username.
func (o *Orchestrator) Login(ctx context.Context, item Item) (any, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	secretResp, err := o.secrets.GetSecret(ctx, item.SecretBaseURL, secretserver.SecretRequest{
		OrganizationName: item.OrgName,
		Username:         utils.NormalizeUsername(item.Username),
		CloudProvider:    item.CloudProvider,
	})
	if err != nil {
		return nil, err
	}

	password, err := secretserver.Password(secretResp)
	if err != nil {
		return nil, err
	}

	loginUsername := utils.LoginUsername(item.Username)

	return o.tasks.ExecuteTask(ctx, item.BrowserBaseURL, browseruse.TaskRequest{
		SessionId: item.SessionId,
		Task:      browseruse.LoginTask(item.LoginURL, loginUsername, password),
	})
}
