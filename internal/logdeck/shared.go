package logdeck

import (
	"time"

	"github.com/mekvam/logdeck/internal/apiclient"
	"github.com/mekvam/logdeck/internal/apitypes"
	"github.com/mekvam/logdeck/internal/config"
)

const defaultContextTimeout = 30 * time.Second

// newClient resolves the server address and builds an API client, returning
// the loaded client config for callers that need more of it.
func newClient(flags *rootFlags) (*apiclient.Client, *config.ClientConfig, error) {
	var cc *config.ClientConfig
	if path, err := config.DefaultClientConfigPath(); err == nil {
		loaded, err := config.LoadClientConfig(path)
		if err != nil {
			return nil, nil, err
		}
		cc = loaded
	}

	serverURL, err := config.ResolveServerURL(flags.server, cc)
	if err != nil {
		return nil, nil, err
	}

	return apiclient.New(serverURL, cc.RequestTimeout()), cc, nil
}

func streamFromFlags(flags *rootFlags) (apitypes.Stream, error) {
	return apitypes.ParseStream(flags.stream)
}
