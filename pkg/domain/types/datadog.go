package types

import "log/slog"

type (
	DatadogSite   string
	DatadogAPIKey string
	DatadogAppKey string
)

const DefaultDatadogSite DatadogSite = "datadoghq.com"

func (x DatadogAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DatadogAPIKey) String() string {
	return "***********"
}

func (x DatadogAppKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DatadogAppKey) String() string {
	return "***********"
}
