package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version      string          `json:"version"`
		LogLevel     string          `json:"log_level"`
		FeatureFlags map[string]bool `json:"feature_flags,omitempty"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		QuerySchemaFile string   `json:"query_schema_file"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN        string `json:"dsn"`
			MaxRetries int    `json:"max_retries"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string   `json:"address"`
			Password string   `json:"password"`
			TTL      Duration `json:"ttl"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Search struct {
		Address        string   `json:"address"`
		APIKey         string   `json:"api_key"`
		Index          string   `json:"index"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"search,omitempty"`

	Workers struct {
		IndexInterval Duration `json:"index_interval"`
	} `json:"workers,omitempty"`
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
			Version:      jsonCfg.App.Version,
			LogLevel:     jsonCfg.App.LogLevel,
			FeatureFlags: jsonCfg.App.FeatureFlags,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			QuerySchemaFile: jsonCfg.Server.QuerySchemaFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:        jsonCfg.Storage.DB.DSN,
				MaxRetries: jsonCfg.Storage.DB.MaxRetries,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				TTL:      time.Duration(jsonCfg.Storage.Redis.TTL),
			},
		},
		Search: Search{
			Address:        jsonCfg.Search.Address,
			APIKey:         jsonCfg.Search.APIKey,
			Index:          jsonCfg.Search.Index,
			RequestTimeout: time.Duration(jsonCfg.Search.RequestTimeout),
		},
		Workers: Workers{
			IndexInterval: time.Duration(jsonCfg.Workers.IndexInterval),
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
