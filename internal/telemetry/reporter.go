package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	datadogapi "github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"

	"poolpay/internal/config"
	"poolpay/internal/logging"
)

// Reporter ships client diagnostic events to Datadog. It is a no-op unless
// API keys are configured; submission failures are logged at debug and never
// surfaced to the user.
type Reporter struct {
	enabled bool
	logsAPI *datadogV2.LogsApi
	authCtx context.Context
	service string
	logger  *logging.Logger
}

// NewReporter creates a reporter from the process environment
func NewReporter(service string) *Reporter {
	logger := logging.NewDefaultLogger("telemetry")

	apiKey := config.Get("DD_API_KEY", "")
	appKey := config.Get("DD_APPLICATION_KEY", "")
	if apiKey == "" {
		return &Reporter{enabled: false, logger: logger}
	}

	baseURL := config.Get("DATADOG_BASE_URL", "https://api.datadoghq.com")

	httpClient := &http.Client{Timeout: 10 * time.Second}
	apiCfg := datadogapi.NewConfiguration()
	apiCfg.HTTPClient = httpClient
	apiCfg.Servers = datadogapi.ServerConfigurations{{URL: baseURL}}
	apiCfg.OperationServers = map[string]datadogapi.ServerConfigurations{
		"LogsApi.SubmitLog": {{URL: baseURL}},
	}

	apiClient := datadogapi.NewAPIClient(apiCfg)

	authCtx := datadogapi.NewDefaultContext(context.Background())
	authCtx = context.WithValue(authCtx, datadogapi.ContextAPIKeys, map[string]datadogapi.APIKey{
		"apiKeyAuth": {Key: apiKey},
		"appKeyAuth": {Key: appKey},
	})

	return &Reporter{
		enabled: true,
		logsAPI: datadogV2.NewLogsApi(apiClient),
		authCtx: authCtx,
		service: service,
		logger:  logger,
	}
}

// Enabled reports whether events will actually be submitted
func (r *Reporter) Enabled() bool {
	return r.enabled
}

// Event submits one diagnostic event. Safe to call on a disabled reporter.
func (r *Reporter) Event(event string, attrs map[string]any) {
	if !r.enabled {
		return
	}

	payload := map[string]any{"event": event}
	for k, v := range attrs {
		payload[k] = v
	}
	message, err := json.Marshal(payload)
	if err != nil {
		r.logger.Debug("failed to encode telemetry event %s: %v", event, err)
		return
	}

	hostname, _ := os.Hostname()
	item := datadogV2.HTTPLogItem{
		Message:  string(message),
		Service:  datadogapi.PtrString(r.service),
		Ddsource: datadogapi.PtrString("poolpay-cli"),
		Hostname: datadogapi.PtrString(hostname),
		Ddtags:   datadogapi.PtrString("env:" + config.GetEnvironment()),
	}

	ctx, cancel := context.WithTimeout(r.authCtx, 10*time.Second)
	defer cancel()
	if _, _, err := r.logsAPI.SubmitLog(ctx, []datadogV2.HTTPLogItem{item}); err != nil {
		r.logger.Debug("telemetry submission failed: %v", err)
	}
}
