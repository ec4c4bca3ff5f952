package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly Duration type, so operators can keep all settings in a
// single checked-in file.
type StructuredJSONConfig struct {
	App struct {
		SessionTTL      Duration `json:"session_ttl"`
		ProviderTimeout Duration `json:"provider_timeout"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	OAuth struct {
		GoogleClientID        string `json:"google_client_id"`
		GoogleClientSecret    string `json:"google_client_secret"`
		MicrosoftClientID     string `json:"microsoft_client_id"`
		MicrosoftClientSecret string `json:"microsoft_client_secret"`
		MicrosoftTenantID     string `json:"microsoft_tenant_id"`
		GitHubClientID        string `json:"github_client_id"`
		GitHubClientSecret    string `json:"github_client_secret"`
		RedirectURI           string `json:"redirect_uri"`
	} `json:"oauth,omitempty"`

	Storage struct {
		DatabaseURL string `json:"database_url"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Catalog struct {
		ManifestPath string `json:"manifest_path"`
		ContentDir   string `json:"content_dir"`
	} `json:"catalog,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionTTL:      time.Duration(jsonCfg.App.SessionTTL),
			ProviderTimeout: time.Duration(jsonCfg.App.ProviderTimeout),
			Version:         jsonCfg.App.Version,
		},
		OAuth: OAuth{
			GoogleClientID:        jsonCfg.OAuth.GoogleClientID,
			GoogleClientSecret:    jsonCfg.OAuth.GoogleClientSecret,
			MicrosoftClientID:     jsonCfg.OAuth.MicrosoftClientID,
			MicrosoftClientSecret: jsonCfg.OAuth.MicrosoftClientSecret,
			MicrosoftTenantID:     jsonCfg.OAuth.MicrosoftTenantID,
			GitHubClientID:        jsonCfg.OAuth.GitHubClientID,
			GitHubClientSecret:    jsonCfg.OAuth.GitHubClientSecret,
			RedirectURI:           jsonCfg.OAuth.RedirectURI,
		},
		Storage: Storage{
			DatabaseURL: jsonCfg.Storage.DatabaseURL,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Catalog: Catalog{
			ManifestPath: jsonCfg.Catalog.ManifestPath,
			ContentDir:   jsonCfg.Catalog.ContentDir,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
